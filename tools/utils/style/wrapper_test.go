// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package style

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

func TestANSIStyleContext(t *testing.T) {
	var ctx = Context{AllowEscapeCodes: false}
	bold := Style{Bold: true}
	if ctx.Paint(bold, "test") != "test" {
		t.Fatal("AllowEscapeCodes=false not respected")
	}
	ctx.AllowEscapeCodes = true
	if ctx.Paint(bold, "test") != "\x1b[1mtest\x1b[22m" {
		t.Fatal("AllowEscapeCodes=true not respected")
	}
	if ctx.Paint(Style{}, "test") != "test" {
		t.Fatal("plain style added escape codes")
	}
}

func TestANSIStyleEscapeCodes(t *testing.T) {
	var ctx = Context{AllowEscapeCodes: true}

	test := func(spec string, prefix string, suffix string) {
		s, err := ParseStyle(spec)
		if err != nil {
			t.Fatal(err)
		}
		if s.Prefix() != prefix || s.Suffix() != suffix {
			t.Fatalf("Escape codes for spec: %s wrong, expected: %#v %#v actual: %#v %#v", spec, prefix, suffix, s.Prefix(), s.Suffix())
		}
		actual := ctx.Paint(s, "  ")
		expected := prefix + "  " + suffix
		if actual != expected {
			t.Fatalf("Formatting with spec: %s failed expected != actual: %#v != %#v", spec, expected, actual)
		}
	}

	test("bold", "\x1b[1m", "\x1b[22m")
	test("bold fg=red u=curly", "\x1b[1;4:3;31m", "\x1b[22;4:0;39m")
	test("fg=bright-blue bg=200", "\x1b[94;48:5:200m", "\x1b[39;49m")
	test("fg=#102030 uc=green", "\x1b[38:2:16:32:48;58:5:2m", "\x1b[39;59m")
	test("italic reverse s dim", "\x1b[2;3;7;9m", "\x1b[22;23;27;29m")
	test("", "", "")
}

func TestParseStyle(t *testing.T) {
	red := NullableColor{Color: NumberedColor(1), IsSet: true}
	for spec, expected := range map[string]Style{
		"":                          {},
		"bold":                      {Bold: true},
		"b=yes i":                   {Bold: true, Italic: true},
		"bold=no":                   {},
		"fg=red":                    {Foreground: red},
		"fg=1":                      {Foreground: red},
		"fg=none bg=red":            {Background: red},
		"u=double faint":            {Underline: DoubleUnderline, Dim: true},
		"underline":                 {Underline: StraightUnderline},
		"bg=#abc":                   {Background: NullableColor{Color: RGBColor(RGBA{Red: 0xaa, Green: 0xbb, Blue: 0xcc}), IsSet: true}},
		"uc=rgb:10/20/30 reverse":   {UnderlineColor: NullableColor{Color: RGBColor(RGBA{Red: 0x10, Green: 0x20, Blue: 0x30}), IsSet: true}, Reverse: true},
		"  strikethrough   fg=255 ": {Strikethrough: true, Foreground: NullableColor{Color: NumberedColor(255), IsSet: true}},
	} {
		actual, err := ParseStyle(spec)
		if err != nil {
			t.Fatalf("Failed to parse %#v with error: %s", spec, err)
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Fatalf("Parsing %#v failed:\n%s", spec, diff)
		}
	}
	for _, spec := range []string{"fg=notacolor", "bg=256", "wat", "bold=maybe", "u=wiggly", "fg=#12"} {
		if _, err := ParseStyle(spec); err == nil {
			t.Fatalf("Parsing %#v did not fail", spec)
		}
	}
}

func TestStyleRoundTrip(t *testing.T) {
	for _, spec := range []string{
		"", "bold", "bold dim italic reverse strikethrough u=curly fg=red bg=#010203 uc=17",
		"fg=bright-white", "u=dashed bg=black",
	} {
		s, err := ParseStyle(spec)
		if err != nil {
			t.Fatal(err)
		}
		if s.String() != spec {
			t.Fatalf("Canonical spec for %#v is %#v", spec, s.String())
		}
		again, err := ParseStyle(s.String())
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(s, again); diff != "" {
			t.Fatalf("Round trip of %#v failed:\n%s", spec, diff)
		}
	}
	s, _ := ParseStyle("fg=gray bg=hi-cyan")
	if s.String() != "fg=white bg=bright-cyan" {
		t.Fatalf("Unexpected canonical form: %#v", s.String())
	}
}

func TestParseColor(t *testing.T) {
	type tr struct {
		input    string
		expected RGBA
	}
	c := func(t string, r, g, b uint8) tr { return tr{t, RGBA{r, g, b, 0}} }
	for _, x := range []tr{
		c(`#eee`, 0xee, 0xee, 0xee),
		c(`#234567`, 0x23, 0x45, 0x67),
		c(`#abcabcdef`, 0xab, 0xab, 0xde),
		c(`rgb:e/e/e`, 0xee, 0xee, 0xee),
		c(`rgb:23/45/67`, 0x23, 0x45, 0x67),
		c(`RGBI:1/0/0.5`, 0xff, 0, 0x7f),
	} {
		actual, err := ParseColor(x.input)
		if err != nil {
			t.Fatalf("Parsing %#v failed with error: %s", x.input, err)
		}
		if diff := cmp.Diff(x.expected, actual); diff != "" {
			t.Fatalf("Parsing %#v failed:\n%s", x.input, diff)
		}
	}
	for _, bad := range []string{"", "#", "#12345", "rgb:1/2", "rgbi:a/b/c", "red", "oklch(1 2 3)"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("Parsing %#v did not fail", bad)
		}
	}
}
