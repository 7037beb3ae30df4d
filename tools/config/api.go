// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

var _ = fmt.Print

func StringToBool(x string) bool {
	x = strings.ToLower(x)
	return x == "y" || x == "yes" || x == "true"
}

type ConfigLine struct {
	Src_file, Line string
	Line_number    int
	Err            error
}

func (self ConfigLine) String() string {
	return fmt.Sprintf("%s:%d: %s", self.Src_file, self.Line_number, self.Err)
}

// ConfigParser parses files made of "key value" lines. Lines starting with
// # are comments. A line starting with a backslash continues the previous
// line. The include and globinclude directives pull in other files, relative
// paths being resolved against the directory of the including file.
type ConfigParser struct {
	LineHandler func(key, val string) error

	bad_lines     []ConfigLine
	seen_includes map[string]bool
}

type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

func (self *ConfigParser) BadLines() []ConfigLine {
	return self.bad_lines
}

var key_pat = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9_-]*)(?:\s+(.*))?$`)
})

func (self *ConfigParser) add_bad_line(name, line string, lnum int, err error) {
	self.bad_lines = append(self.bad_lines, ConfigLine{Src_file: name, Line: line, Line_number: lnum, Err: err})
}

func (self *ConfigParser) parse(scanner Scanner, name, base_path_for_includes string, depth int) error {
	if self.seen_includes[name] { // avoid include loops
		return nil
	}
	self.seen_includes[name] = true

	recurse := func(r io.Reader, nname, base_path_for_includes string) error {
		if depth > 32 {
			return fmt.Errorf("Too many nested include directives while processing config file: %s", name)
		}
		return self.parse(bufio.NewScanner(r), nname, base_path_for_includes, depth+1)
	}

	make_absolute := func(path string) (string, error) {
		if path == "" {
			return "", fmt.Errorf("Empty include paths not allowed")
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(base_path_for_includes, path)
		}
		return path, nil
	}

	lnum := 0
	next_line_num := 0
	next_line := ""
	var line string

	for {
		if next_line != "" {
			line = next_line
		} else {
			if scanner.Scan() {
				line = strings.TrimLeft(scanner.Text(), " \t")
				next_line_num++
			} else {
				break
			}
			if line == "" {
				continue
			}
		}
		lnum = next_line_num
		if scanner.Scan() {
			next_line = strings.TrimLeft(scanner.Text(), " \t")
			next_line_num++

			for strings.HasPrefix(next_line, `\`) {
				line += next_line[1:]
				if scanner.Scan() {
					next_line = strings.TrimLeft(scanner.Text(), " \t")
					next_line_num++
				} else {
					next_line = ""
				}
			}
		} else {
			next_line = ""
		}

		if line[0] == '#' {
			continue
		}
		m := key_pat().FindStringSubmatch(line)
		if m == nil {
			self.add_bad_line(name, line, lnum, fmt.Errorf("Invalid config line: %#v", line))
			continue
		}
		key, val := m[1], strings.TrimSpace(m[2])
		switch key {
		default:
			if err := self.LineHandler(key, val); err != nil {
				self.add_bad_line(name, line, lnum, err)
			}
		case "include", "globinclude":
			aval, err := make_absolute(val)
			if err != nil {
				self.add_bad_line(name, line, lnum, err)
				continue
			}
			includes := []string{aval}
			if key == "globinclude" {
				if includes, err = doublestar.FilepathGlob(aval); err != nil {
					self.add_bad_line(name, line, lnum, err)
					continue
				}
			}
			for _, incpath := range includes {
				raw, err := os.ReadFile(incpath)
				if err == nil {
					if err = recurse(bytes.NewReader(raw), incpath, filepath.Dir(incpath)); err != nil {
						return err
					}
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("Failed to process include %#v with error: %w", incpath, err)
				}
			}
		}
	}
	return scanner.Err()
}

func (self *ConfigParser) ParseFiles(paths ...string) error {
	for _, path := range paths {
		apath, err := filepath.Abs(path)
		if err == nil {
			path = apath
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		self.seen_includes = make(map[string]bool)
		if err = self.parse(bufio.NewScanner(bytes.NewReader(raw)), path, filepath.Dir(path), 0); err != nil {
			return err
		}
	}
	return nil
}

// ConfigDir is the directory searched for configuration files. It is
// $LSICONS_CONFIG_DIRECTORY if set, otherwise lsicons in the XDG config
// directory.
func ConfigDir() string {
	if q := os.Getenv("LSICONS_CONFIG_DIRECTORY"); q != "" {
		return q
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		if home, err := os.UserHomeDir(); err == nil {
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, "lsicons")
}

// LoadConfig parses the named config file from the system and user config
// directories, or from paths when specified, followed by overrides of the
// form key=value. Missing files are not an error.
func (self *ConfigParser) LoadConfig(name string, paths []string, overrides []string) (err error) {
	const SYSTEM_CONF = "/etc/xdg/lsicons"
	add_if_exists := func(q string) {
		err = self.ParseFiles(q)
		if err != nil && errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
	}
	if add_if_exists(filepath.Join(SYSTEM_CONF, name)); err != nil {
		return err
	}
	if len(paths) > 0 {
		for _, path := range paths {
			if add_if_exists(path); err != nil {
				return err
			}
		}
	} else {
		if add_if_exists(filepath.Join(ConfigDir(), name)); err != nil {
			return err
		}
	}
	if len(overrides) > 0 {
		err = self.ParseOverrides(overrides...)
	}
	return
}

type LinesScanner struct {
	lines []string
}

func (self *LinesScanner) Scan() bool {
	return len(self.lines) > 0
}

func (self *LinesScanner) Text() string {
	ans := self.lines[0]
	self.lines = self.lines[1:]
	return ans
}

func (self *LinesScanner) Err() error {
	return nil
}

func (self *ConfigParser) ParseOverrides(overrides ...string) error {
	lines := make([]string, len(overrides))
	for i, x := range overrides {
		lines[i] = strings.Replace(x, "=", " ", 1)
	}
	self.seen_includes = make(map[string]bool)
	return self.parse(&LinesScanner{lines: lines}, "<overrides>", ConfigDir(), 0)
}
