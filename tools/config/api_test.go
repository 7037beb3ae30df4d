// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

func TestConfigParsing(t *testing.T) {
	tdir := t.TempDir()
	conf_file := filepath.Join(tdir, "a.conf")
	os.Mkdir(filepath.Join(tdir, "sub"), 0o700)
	os.WriteFile(conf_file, []byte(`
# ignore me
a one
#: other
include sub/b.conf
b
include non-existent
globinclude sub/c?.conf
error bad value
=nokey
`), 0o600)
	os.WriteFile(filepath.Join(tdir, "sub/b.conf"), []byte("incb cool\ninclude a.conf"), 0o600)
	os.WriteFile(filepath.Join(tdir, "sub/c1.conf"), []byte("inc1 cool\n  continued\n\\ line"), 0o600)
	os.WriteFile(filepath.Join(tdir, "sub/c2.conf"), []byte("inc2 cool"), 0o600)
	os.WriteFile(filepath.Join(tdir, "sub/c.conf"), []byte("inc notcool"), 0o600)

	var parsed_lines []string
	pl := func(key, val string) error {
		if key == "error" {
			return fmt.Errorf("%s", val)
		}
		parsed_lines = append(parsed_lines, key+" "+val)
		return nil
	}

	p := ConfigParser{LineHandler: pl}
	err := p.ParseFiles(conf_file)
	if err != nil {
		t.Fatal(err)
	}
	diff := cmp.Diff([]string{"a one", "incb cool", "b ", "inc1 cool", "continued line", "inc2 cool"}, parsed_lines)
	if diff != "" {
		t.Fatalf("Unexpected parsed config values:\n%s", diff)
	}
	bad := p.BadLines()
	if len(bad) != 2 || bad[0].Line != "error bad value" || bad[0].Line_number != 9 || bad[1].Line != "=nokey" {
		t.Fatalf("Unexpected bad lines: %#v", bad)
	}
}

func TestLoadConfig(t *testing.T) {
	tdir := t.TempDir()
	t.Setenv("LSICONS_CONFIG_DIRECTORY", tdir)
	os.WriteFile(filepath.Join(tdir, "x.conf"), []byte("color never\nicons always"), 0o600)
	var parsed_lines []string
	p := ConfigParser{LineHandler: func(key, val string) error {
		parsed_lines = append(parsed_lines, key+":"+val)
		return nil
	}}
	if err := p.LoadConfig("x.conf", nil, []string{"color=always", "dir_style=fg=red bold"}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"color:never", "icons:always", "color:always", "dir_style:fg=red bold"}, parsed_lines); diff != "" {
		t.Fatalf("Unexpected parsed config values:\n%s", diff)
	}
	parsed_lines = nil
	if err := p.LoadConfig("x.conf", []string{filepath.Join(tdir, "missing.conf")}, nil); err != nil {
		t.Fatal(err)
	}
	if len(parsed_lines) != 0 {
		t.Fatalf("Unexpected parsed config values: %#v", parsed_lines)
	}
}

func TestParseEnv(t *testing.T) {
	type opts struct {
		Color   string   `env:"T_COLOR"`
		Exclude []string `env:"T_EXCLUDE" envSeparator:":"`
		Long    bool     `env:"T_LONG"`
		Other   string
	}
	o := opts{Color: "auto", Other: "kept"}
	if err := ParseEnvFrom(&o, map[string]string{"T_EXCLUDE": "*.o:target/**", "T_LONG": "true"}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(opts{Color: "auto", Exclude: []string{"*.o", "target/**"}, Long: true, Other: "kept"}, o); diff != "" {
		t.Fatalf("Unexpected options:\n%s", diff)
	}
	if err := ParseEnvFrom(&o, map[string]string{"T_LONG": "maybe"}); err == nil {
		t.Fatal("Invalid boolean accepted")
	}
}
