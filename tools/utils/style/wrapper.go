// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package style

import (
	"fmt"
	"strconv"
	"strings"
)

// color values {{{
type RGBA struct {
	Red, Green, Blue, Inverse_alpha uint8
}

func (self RGBA) AsRGBSharp() string {
	return fmt.Sprintf("#%02x%02x%02x", self.Red, self.Green, self.Blue)
}

func (self *RGBA) parse_rgb_strings(r string, g string, b string) bool {
	var rv, gv, bv uint64
	var err error
	if len(r) == 1 {
		r += r
		g += g
		b += b
	}
	if rv, err = strconv.ParseUint(r[:min(len(r), 2)], 16, 8); err != nil {
		return false
	}
	if gv, err = strconv.ParseUint(g[:min(len(g), 2)], 16, 8); err != nil {
		return false
	}
	if bv, err = strconv.ParseUint(b[:min(len(b), 2)], 16, 8); err != nil {
		return false
	}
	self.Red, self.Green, self.Blue = uint8(rv), uint8(gv), uint8(bv)
	return true
}

func fas_uint8(x float64) uint8 {
	x = max(0, min(x, 1))
	return uint8(x * 255)
}

func (self *RGBA) parse_rgb_intensities(r string, g string, b string) bool {
	var rv, gv, bv float64
	var err error
	if rv, err = strconv.ParseFloat(r, 64); err != nil {
		return false
	}
	if gv, err = strconv.ParseFloat(g, 64); err != nil {
		return false
	}
	if bv, err = strconv.ParseFloat(b, 64); err != nil {
		return false
	}
	self.Red, self.Green, self.Blue = fas_uint8(rv), fas_uint8(gv), fas_uint8(bv)
	return true
}

func parse_sharp(color string) (ans RGBA, err error) {
	if len(color) == 0 || len(color)%3 != 0 {
		return RGBA{}, fmt.Errorf("length not a multiple of 3")
	}
	part_size := len(color) / 3
	r, g, b := color[:part_size], color[part_size:2*part_size], color[part_size*2:part_size*3]
	if !ans.parse_rgb_strings(r, g, b) {
		err = fmt.Errorf("invalid rgb numbers")
	}
	return
}

func split_rgb(color string) (r, g, b string, err error) {
	colors := strings.Split(color, "/")
	if len(colors) != 3 {
		return "", "", "", fmt.Errorf("expected three components separated by /")
	}
	return colors[0], colors[1], colors[2], nil
}

func parse_rgb(color string) (ans RGBA, err error) {
	r, g, b, err := split_rgb(color)
	if err != nil {
		return
	}
	if !ans.parse_rgb_strings(r, g, b) {
		err = fmt.Errorf("invalid rgb numbers")
	}
	return
}

func parse_rgbi(color string) (ans RGBA, err error) {
	r, g, b, err := split_rgb(color)
	if err != nil {
		return
	}
	if !ans.parse_rgb_intensities(r, g, b) {
		err = fmt.Errorf("invalid rgb intensities")
	}
	return
}

// ParseColor parses a 24-bit color in one of the forms #rgb, #rrggbb,
// rgb:rr/gg/bb or rgbi:r/g/b with intensities in [0, 1].
func ParseColor(color string) (ans RGBA, err error) {
	raw := strings.TrimSpace(strings.ToLower(color))
	var parser func(string) (RGBA, error)
	switch {
	case strings.HasPrefix(raw, "#"):
		parser, raw = parse_sharp, raw[1:]
	case strings.HasPrefix(raw, "rgb:"):
		parser, raw = parse_rgb, raw[4:]
	case strings.HasPrefix(raw, "rgbi:"):
		parser, raw = parse_rgbi, raw[5:]
	}
	if parser == nil {
		return RGBA{}, fmt.Errorf("not a valid color: %#v", color)
	}
	if ans, err = parser(raw); err != nil {
		err = fmt.Errorf("not a valid color: %#v %w", color, err)
	}
	return
}

// Color is either an entry in the 256 color palette or a 24-bit color
type Color struct {
	IsNumbered bool
	Number     uint8
	RGB        RGBA
}

var named_colors = map[string]uint8{
	"black": 0, "red": 1, "green": 2, "yellow": 3, "blue": 4, "magenta": 5, "cyan": 6, "gray": 7, "white": 7,

	"hi-black": 8, "hi-red": 9, "hi-green": 10, "hi-yellow": 11, "hi-blue": 12, "hi-magenta": 13, "hi-cyan": 14, "hi-gray": 15, "hi-white": 15,

	"bright-black": 8, "bright-red": 9, "bright-green": 10, "bright-yellow": 11, "bright-blue": 12, "bright-magenta": 13, "bright-cyan": 14, "bright-gray": 15, "bright-white": 15,

	"intense-black": 8, "intense-red": 9, "intense-green": 10, "intense-yellow": 11, "intense-blue": 12, "intense-magenta": 13, "intense-cyan": 14, "intense-gray": 15, "intense-white": 15,
}

var canonical_color_names = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow", "bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

func NumberedColor(n uint8) Color { return Color{IsNumbered: true, Number: n} }
func RGBColor(c RGBA) Color       { return Color{RGB: c} }

func (self Color) String() string {
	if self.IsNumbered {
		if int(self.Number) < len(canonical_color_names) {
			return canonical_color_names[self.Number]
		}
		return strconv.Itoa(int(self.Number))
	}
	return self.RGB.AsRGBSharp()
}

func (self Color) as_sgr(number_base int, prefix, suffix []string) ([]string, []string) {
	suffix = append(suffix, strconv.Itoa(number_base+9))
	if self.IsNumbered {
		num := int(self.Number)
		if num < 16 && number_base < 50 {
			if num > 7 {
				number_base += 60
				num -= 8
			}
			prefix = append(prefix, strconv.Itoa(number_base+num))
		} else {
			prefix = append(prefix, fmt.Sprintf("%d:5:%d", number_base+8, num))
		}
	} else {
		prefix = append(prefix, fmt.Sprintf("%d:2:%d:%d:%d", number_base+8, self.RGB.Red, self.RGB.Green, self.RGB.Blue))
	}
	return prefix, suffix
}

type NullableColor struct {
	Color Color
	IsSet bool
}

func (self NullableColor) as_sgr(number_base int, prefix, suffix []string) ([]string, []string) {
	if self.IsSet {
		prefix, suffix = self.Color.as_sgr(number_base, prefix, suffix)
	}
	return prefix, suffix
}

// ParseColorOrNone accepts a color name, a palette number from 0 to 255,
// anything ParseColor understands or none for an unset color.
func ParseColorOrNone(raw string) (NullableColor, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "none" || raw == "" {
		return NullableColor{}, nil
	}
	if n, ok := named_colors[raw]; ok {
		return NullableColor{Color: NumberedColor(n), IsSet: true}, nil
	}
	if a, err := strconv.Atoi(raw); err == nil {
		if a < 0 || a > 255 {
			return NullableColor{}, fmt.Errorf("color number out of range: %d", a)
		}
		return NullableColor{Color: NumberedColor(uint8(a)), IsSet: true}, nil
	}
	c, err := ParseColor(raw)
	if err != nil {
		return NullableColor{}, err
	}
	return NullableColor{Color: RGBColor(c), IsSet: true}, nil
}

// }}}

// underline values {{{
type UnderlineStyle uint8

const (
	NoUnderline       UnderlineStyle = 0
	StraightUnderline UnderlineStyle = 1
	DoubleUnderline   UnderlineStyle = 2
	CurlyUnderline    UnderlineStyle = 3
	DottedUnderline   UnderlineStyle = 4
	DashedUnderline   UnderlineStyle = 5
)

func parse_underline(val string) (UnderlineStyle, bool) {
	switch val {
	case "true", "yes", "y", "straight", "single":
		return StraightUnderline, true
	case "false", "no", "n", "none":
		return NoUnderline, true
	case "double":
		return DoubleUnderline, true
	case "curly":
		return CurlyUnderline, true
	case "dotted":
		return DottedUnderline, true
	case "dashed":
		return DashedUnderline, true
	}
	return NoUnderline, false
}

func (self UnderlineStyle) String() string {
	switch self {
	case StraightUnderline:
		return "straight"
	case DoubleUnderline:
		return "double"
	case CurlyUnderline:
		return "curly"
	case DottedUnderline:
		return "dotted"
	case DashedUnderline:
		return "dashed"
	}
	return "none"
}

// }}}

// Style is the set of colors and text attributes used to paint some text.
// The zero value is the default, unstyled, style.
type Style struct {
	Foreground, Background, UnderlineColor    NullableColor
	Bold, Dim, Italic, Reverse, Strikethrough bool
	Underline                                 UnderlineStyle
}

func (self Style) IsPlain() bool {
	return self == Style{}
}

func parse_bool(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "y", "yes", "true", "1":
		return true, true
	case "n", "no", "false", "0":
		return false, true
	}
	return false, false
}

// ParseStyle parses a space separated list of key=value pairs such as
// "bold fg=red bg=#203040 u=curly". A key without a value means key=true.
func ParseStyle(spec string) (ans Style, err error) {
	for _, p := range strings.Fields(spec) {
		key, val, found := strings.Cut(p, "=")
		if !found {
			val = "true"
		}
		var perr error
		var flag *bool
		switch key {
		case "fg":
			ans.Foreground, perr = ParseColorOrNone(val)
		case "bg":
			ans.Background, perr = ParseColorOrNone(val)
		case "ucol", "underline_color", "uc":
			ans.UnderlineColor, perr = ParseColorOrNone(val)
		case "bold", "b":
			flag = &ans.Bold
		case "dim", "faint":
			flag = &ans.Dim
		case "italic", "i":
			flag = &ans.Italic
		case "reverse":
			flag = &ans.Reverse
		case "strikethrough", "s":
			flag = &ans.Strikethrough
		case "underline", "u":
			if u, ok := parse_underline(val); ok {
				ans.Underline = u
			} else {
				perr = fmt.Errorf("not a valid underline style: %#v", val)
			}
		default:
			perr = fmt.Errorf("unknown style key")
		}
		if flag != nil {
			if b, ok := parse_bool(val); ok {
				*flag = b
			} else {
				perr = fmt.Errorf("not a valid boolean: %#v", val)
			}
		}
		if perr != nil {
			return Style{}, fmt.Errorf("invalid style specification %#v at %#v: %w", spec, p, perr)
		}
	}
	return
}

// String returns the canonical specification for this style, the one
// ParseStyle would turn back into an identical Style.
func (self Style) String() string {
	parts := make([]string, 0, 8)
	add_bool := func(name string, val bool) {
		if val {
			parts = append(parts, name)
		}
	}
	add_bool("bold", self.Bold)
	add_bool("dim", self.Dim)
	add_bool("italic", self.Italic)
	add_bool("reverse", self.Reverse)
	add_bool("strikethrough", self.Strikethrough)
	if self.Underline != NoUnderline {
		parts = append(parts, "u="+self.Underline.String())
	}
	add_color := func(name string, c NullableColor) {
		if c.IsSet {
			parts = append(parts, name+"="+c.Color.String())
		}
	}
	add_color("fg", self.Foreground)
	add_color("bg", self.Background)
	add_color("uc", self.UnderlineColor)
	return strings.Join(parts, " ")
}

func bool_as_sgr(val bool, start, end string, prefix, suffix []string) ([]string, []string) {
	if val {
		prefix = append(prefix, start)
		suffix = append(suffix, end)
	}
	return prefix, suffix
}

func (self Style) sgr() (string, string) {
	p := make([]string, 0, 1)
	s := make([]string, 0, 1)
	p, s = bool_as_sgr(self.Bold, "1", "22", p, s)
	p, s = bool_as_sgr(self.Dim, "2", "22", p, s)
	p, s = bool_as_sgr(self.Italic, "3", "23", p, s)
	p, s = bool_as_sgr(self.Reverse, "7", "27", p, s)
	p, s = bool_as_sgr(self.Strikethrough, "9", "29", p, s)
	if self.Underline != NoUnderline {
		p = append(p, "4:"+strconv.Itoa(int(self.Underline)))
		s = append(s, "4:0")
	}
	p, s = self.Foreground.as_sgr(30, p, s)
	p, s = self.Background.as_sgr(40, p, s)
	p, s = self.UnderlineColor.as_sgr(50, p, s)
	if len(p) == 0 {
		return "", ""
	}
	return "\x1b[" + strings.Join(p, ";") + "m", "\x1b[" + strings.Join(s, ";") + "m"
}

// Prefix is the SGR escape code that turns this style on
func (self Style) Prefix() string {
	p, _ := self.sgr()
	return p
}

// Suffix is the SGR escape code that turns this style off
func (self Style) Suffix() string {
	_, s := self.sgr()
	return s
}
