// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package style

import (
	"strings"
)

type Context struct {
	AllowEscapeCodes bool
}

// Paint wraps text in the escape codes for s. When escape codes are not
// allowed, or s is plain, text is returned unchanged.
func (self *Context) Paint(s Style, text string) string {
	if !self.AllowEscapeCodes {
		return text
	}
	p := s.Prefix()
	if p == "" {
		return text
	}
	e := s.Suffix()
	b := strings.Builder{}
	b.Grow(len(p) + len(text) + len(e))
	b.WriteString(p)
	b.WriteString(text)
	b.WriteString(e)
	return b.String()
}
