// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package ignorefiles

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var _ = fmt.Print

type GitPattern struct {
	line_number int
	only_dirs   bool
	negated     bool
	pattern     string
	parts       []string
	matcher     func(path string) bool
}

// Gitignore is an ordered list of patterns from one ignore file, later
// patterns taking precedence over earlier ones.
type Gitignore struct {
	patterns           []GitPattern
	line_number_offset int
}

func NewGitignore() *Gitignore { return &Gitignore{} }

func (g *Gitignore) Len() int { return len(g.patterns) }

// IsIgnored checks relpath, which is relative to the directory containing
// the ignore file and uses / as the separator. The last matching pattern
// decides. linenum_of_matching_rule is -1 when no pattern matched, which
// leaves the decision to other ignore files.
func (g *Gitignore) IsIgnored(relpath string, ftype fs.FileMode) (is_ignored bool, linenum_of_matching_rule int, pattern string) {
	for i := len(g.patterns) - 1; i >= 0; i-- {
		if p := &g.patterns[i]; p.Match(relpath, ftype) {
			return !p.negated, p.line_number, p.pattern
		}
	}
	return false, -1, ""
}

func (g *Gitignore) load_line(line string, line_number int) {
	if p, skipped_line := CompileGitIgnoreLine(line); !skipped_line {
		p.line_number = g.line_number_offset + line_number
		g.patterns = append(g.patterns, p)
	}
}

func (g *Gitignore) LoadString(text string) {
	s := bufio.NewScanner(strings.NewReader(text))
	lnum := 0
	for s.Scan() {
		g.load_line(s.Text(), lnum)
		lnum++
	}
	g.line_number_offset += lnum
}

func (g *Gitignore) LoadPath(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	g.LoadString(string(data))
	return nil
}

func (p GitPattern) Match(path string, ftype fs.FileMode) bool {
	if p.only_dirs && ftype&fs.ModeDir == 0 {
		return false
	}
	return p.matcher(path)
}

func segment_match(pattern, name string) (bool, error) {
	return filepath.Match(pattern, name)
}

func anchored_single_match(path string, pattern string) bool {
	name, _, _ := strings.Cut(path, "/")
	matches, err := segment_match(pattern, name)
	return err == nil && matches
}

func unanchored_single_match(path string, pattern string) bool {
	for path != "" {
		var name string
		name, path, _ = strings.Cut(path, "/")
		matches, err := segment_match(pattern, name)
		if err != nil {
			return false
		}
		if matches {
			return true
		}
	}
	return false
}

func anchored_simple_match(path string, parts []string) bool {
	for ; path != "" && len(parts) > 0; parts = parts[1:] {
		var name string
		name, path, _ = strings.Cut(path, "/")
		if matches, err := segment_match(parts[0], name); err != nil || !matches {
			return false
		}
	}
	return path == "" && len(parts) == 0
}

func anchored_full_match(path string, parts []string) bool {
	pos, last := 0, len(parts)-1
	for pos <= last && path != "" {
		var name string
		name, path, _ = strings.Cut(path, "/")
		if parts[pos] != "**" {
			if matches, err := segment_match(parts[pos], name); err != nil || !matches {
				return false
			}
			pos++
			continue
		}
		for pos+1 < len(parts) && parts[pos+1] == "**" {
			pos++
		}
		if pos == last {
			return true
		}
		pos++
		for {
			matches, err := segment_match(parts[pos], name)
			if err != nil {
				return false
			}
			if matches {
				return anchored_full_match(path, parts[pos+1:])
			}
			if path == "" {
				return false
			}
			name, path, _ = strings.Cut(path, "/")
		}
	}
	return path == "" && pos > last
}

// CompileGitIgnoreLine parses a line from a .gitignore file, see man
// gitignore for the syntax.
func CompileGitIgnoreLine(line string) (ans GitPattern, skipped_line bool) {
	if strings.HasPrefix(line, `#`) {
		return ans, true
	}
	line = strings.TrimRight(line, "\r")
	// trailing spaces are dropped unless backslash escaped
	for strings.HasSuffix(line, " ") {
		if strings.HasSuffix(line, `\ `) {
			line = line[:len(line)-2] + " "
			break
		}
		line = line[:len(line)-1]
	}
	if line == "" {
		return ans, true
	}
	ans.pattern = line
	if line[0] == '!' {
		line = line[1:]
		ans.negated = true
	}
	if line == "" {
		return ans, true
	}
	// a leading backslash escapes a leading # or !
	if line[0] == '\\' && len(line) > 1 && (line[1] == '#' || line[1] == '!') {
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		ans.only_dirs = true
		if line = strings.TrimRight(line, "/"); line == "" {
			return ans, true
		}
	}
	starts_with_slash := strings.HasPrefix(line, "/")
	line = strings.TrimLeft(line, "/")
	ans.parts = slices.DeleteFunc(strings.Split(line, "/"), func(x string) bool { return x == "" })
	switch {
	case len(ans.parts) == 0:
		return ans, true
	case len(ans.parts) > 1 && slices.Contains(ans.parts, "**"):
		parts := ans.parts
		ans.matcher = func(path string) bool { return anchored_full_match(path, parts) }
	case len(ans.parts) > 1:
		parts := ans.parts
		ans.matcher = func(path string) bool { return anchored_simple_match(path, parts) }
	case ans.parts[0] == "**":
		ans.matcher = func(string) bool { return true }
	case starts_with_slash:
		pattern := ans.parts[0]
		ans.matcher = func(path string) bool { return anchored_single_match(path, pattern) }
	default:
		pattern := ans.parts[0]
		ans.matcher = func(path string) bool { return unanchored_single_match(path, pattern) }
	}
	return
}

func expanduser(path string) string {
	if rest, found := strings.CutPrefix(path, "~/"); found {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}

// GlobalExcludesFile returns the path of the user's global git ignore file,
// from core.excludesfile in the git config or the XDG default.
func GlobalExcludesFile() (ans string) {
	cfhome := os.Getenv("XDG_CONFIG_HOME")
	if cfhome == "" {
		cfhome = expanduser("~/.config")
	}
	for _, candidate := range []string{"/etc/gitconfig", filepath.Join(cfhome, "git", "config"), expanduser("~/.gitconfig")} {
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		s := bufio.NewScanner(strings.NewReader(string(data)))
		in_core := false
		for s.Scan() {
			line := strings.TrimSpace(s.Text())
			if strings.HasPrefix(line, "[") {
				in_core = strings.ToLower(line) == "[core]"
				continue
			}
			if k, rest, found := strings.Cut(line, "="); in_core && found && strings.ToLower(strings.TrimSpace(k)) == `excludesfile` {
				ans = expanduser(strings.TrimSpace(rest))
				if a, err := filepath.Abs(ans); err == nil {
					ans = a
				}
			}
		}
	}
	if ans == "" {
		ans = filepath.Join(cfhome, "git", "ignore")
	}
	return
}

// RepoRoot returns the closest directory at or above dir that contains .git,
// or the empty string if there is none.
func RepoRoot(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Lstat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

type layer struct {
	base, source string
	rules        *Gitignore
}

// Stack holds the ignore files that apply to the entries of one directory:
// the global excludes file, then every .gitignore from the top directory
// down to the directory itself. Stacks are immutable, Push returns a new one.
type Stack struct {
	layers []layer
}

func load_layer(base, path string) (*layer, error) {
	g := NewGitignore()
	if err := g.LoadPath(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if g.Len() == 0 {
		return nil, nil
	}
	return &layer{base: base, source: path, rules: g}, nil
}

// NewStack returns the Stack for the top directory, top being the root of
// a repository or of a listing. Missing ignore files are not an error.
func NewStack(top, global_excludes_file string) (*Stack, error) {
	top, err := filepath.Abs(top)
	if err != nil {
		return nil, err
	}
	ans := &Stack{}
	if global_excludes_file != "" {
		l, err := load_layer(top, global_excludes_file)
		if err != nil {
			return nil, err
		}
		if l != nil {
			ans.layers = append(ans.layers, *l)
		}
	}
	return ans.Push(top)
}

// Push returns a Stack with dir/.gitignore on top of the layers of self.
// dir must be a child of the directory self was built for. On error self is
// returned along with the error.
func (self *Stack) Push(dir string) (*Stack, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return self, err
	}
	l, err := load_layer(dir, filepath.Join(dir, ".gitignore"))
	if err != nil || l == nil {
		return self, err
	}
	return &Stack{layers: append(slices.Clip(self.layers), *l)}, nil
}

func (self *Stack) Len() int { return len(self.layers) }

// IsIgnored checks path against every layer, deeper ignore files taking
// precedence over shallower ones. source is the ignore file that decided,
// empty when nothing matched.
func (self *Stack) IsIgnored(path string, ftype fs.FileMode) (is_ignored bool, source string, linenum_of_matching_rule int, pattern string) {
	path, err := filepath.Abs(path)
	if err != nil {
		return false, "", -1, ""
	}
	for i := len(self.layers) - 1; i >= 0; i-- {
		l := &self.layers[i]
		rel, err := filepath.Rel(l.base, path)
		if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		if ignored, line, pat := l.rules.IsIgnored(filepath.ToSlash(rel), ftype); line > -1 {
			return ignored, l.source, line, pat
		}
	}
	return false, "", -1, ""
}
