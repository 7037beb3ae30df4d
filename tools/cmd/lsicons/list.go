// License: GPLv3 Copyright: 2026, The lsicons Authors

package lsicons

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/kovidgoyal/go-parallel"
	"go.uber.org/zap"

	"github.com/lsicons/lsicons/tools/icons"
	"github.com/lsicons/lsicons/tools/ignorefiles"
	"github.com/lsicons/lsicons/tools/logging"
	"github.com/lsicons/lsicons/tools/utils/style"
)

var _ = fmt.Print

type entry struct {
	name, path  string
	info        fs.FileInfo
	link_target string
	file        icons.File
}

type lister struct {
	opts            *Options
	styles          name_styles
	ctx             style.Context
	show_icons      bool
	now             time.Time
	global_excludes string
	// the directory argument being listed, the top of ignore rule stacks
	// outside of repositories
	listing_root string
	stacks       map[string]*ignorefiles.Stack
}

func is_hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func (self *lister) is_excluded(name string) bool {
	for _, pat := range self.opts.Exclude {
		if matched, err := doublestar.Match(pat, name); matched && err == nil {
			return true
		}
	}
	return false
}

func is_within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (self *lister) top_for(dir string) string {
	if root := ignorefiles.RepoRoot(dir); root != "" {
		return root
	}
	if self.listing_root != "" && is_within(dir, self.listing_root) {
		return self.listing_root
	}
	return dir
}

// stack_for returns the ignore rules for the entries of dir, built from the
// top directory down and cached per directory.
func (self *lister) stack_for(dir string) *ignorefiles.Stack {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	top := self.top_for(dir)
	key := top + "\x00" + dir
	if ans, found := self.stacks[key]; found {
		return ans
	}
	var ans *ignorefiles.Stack
	var err error
	if top == dir || !is_within(dir, top) {
		if ans, err = ignorefiles.NewStack(dir, self.global_excludes); err != nil {
			ans = &ignorefiles.Stack{}
		}
	} else {
		ans, err = self.stack_for(filepath.Dir(dir)).Push(dir)
	}
	if err != nil {
		logging.L().Warn("could not read ignore rules", zap.String("dir", dir), zap.Error(err))
	}
	if self.stacks == nil {
		self.stacks = make(map[string]*ignorefiles.Stack)
	}
	self.stacks[key] = ans
	return ans
}

func (self *lister) is_ignored(dir, name string, ftype fs.FileMode) bool {
	if !self.opts.GitIgnore {
		return false
	}
	ignored, source, line, pattern := self.stack_for(dir).IsIgnored(filepath.Join(dir, name), ftype)
	if ignored {
		logging.L().Debug("ignored", zap.String("dir", dir), zap.String("name", name), zap.String("source", source), zap.Int("line", line), zap.String("pattern", pattern))
	}
	return ignored
}

// is_visible reports whether the entry name of type ftype in dir is shown
// when listing dir.
func (self *lister) is_visible(dir, name string, ftype fs.FileMode) bool {
	return (self.opts.All || !is_hidden(name)) && !self.is_excluded(name) && !self.is_ignored(dir, name, ftype)
}

// has_visible_entries reports whether the directory at path contains at
// least one entry that would be shown when listing it. Directories that
// cannot be read are reported as non-empty.
func (self *lister) has_visible_entries(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()
	for {
		dirents, err := f.ReadDir(64)
		for _, de := range dirents {
			if self.is_visible(path, de.Name(), de.Type()) {
				return true
			}
		}
		if err != nil {
			return !errors.Is(err, io.EOF)
		}
	}
}

func (self *lister) make_entry(path, name string) (*entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	ans := &entry{name: name, path: path, info: info}
	is_dir := info.IsDir()
	if info.Mode()&fs.ModeSymlink != 0 {
		if ans.link_target, err = os.Readlink(path); err != nil {
			logging.L().Debug("could not read symlink", zap.String("path", path), zap.Error(err))
		}
		if self.opts.FollowSymlinks {
			if st, err := os.Stat(path); err == nil {
				is_dir = st.IsDir()
			} else {
				logging.L().Debug("broken symlink", zap.String("path", path), zap.Error(err))
			}
		}
	}
	ans.file = icons.NewFile(filepath.Base(path), is_dir, is_dir && !self.has_visible_entries(path))
	return ans, nil
}

func (self *lister) entries_in(dir string) ([]*entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	ans := make([]*entry, 0, len(dirents))
	for _, de := range dirents {
		name := de.Name()
		if !self.is_visible(dir, name, de.Type()) {
			continue
		}
		e, err := self.make_entry(filepath.Join(dir, name), name)
		if err != nil {
			logging.L().Warn("skipping entry", zap.String("path", filepath.Join(dir, name)), zap.Error(err))
			continue
		}
		ans = append(ans, e)
	}
	logging.L().Debug("listed directory", zap.String("path", dir), zap.Int("entries", len(ans)))
	return ans, nil
}

// walk_dirs returns every directory below root accepted by keep, depth
// first in name order. keep is never called concurrently. A directory keep
// rejects is not descended into. A panic in keep stops the walk and is
// returned as an error.
func walk_dirs(root string, follow bool, keep func(path string, d fs.DirEntry) bool) (ans []string, err error) {
	var mu sync.Mutex
	conf := fastwalk.Config{Follow: follow}
	clean_root := filepath.Clean(root)
	err = fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) (ret error) {
		defer func() {
			if r := recover(); r != nil {
				ret = parallel.Format_stacktrace_on_panic(r, 1)
			}
		}()
		if err != nil {
			logging.L().Warn("skipping entry", zap.String("path", path), zap.Error(err))
			return nil
		}
		if filepath.Clean(path) == clean_root {
			return nil
		}
		info, err := fastwalk.StatDirEntry(path, d)
		if err != nil || !info.IsDir() {
			return nil
		}
		mu.Lock()
		defer mu.Unlock()
		if !keep(path, d) {
			return fastwalk.SkipDir
		}
		ans = append(ans, path)
		return nil
	})
	sep := string(filepath.Separator)
	slices.SortFunc(ans, func(a, b string) int {
		return slices.Compare(strings.Split(a, sep), strings.Split(b, sep))
	})
	return
}

func (self *lister) subdirectories(root string) ([]string, error) {
	return walk_dirs(root, self.opts.FollowSymlinks, func(path string, d fs.DirEntry) bool {
		return self.is_visible(filepath.Dir(path), d.Name(), fs.ModeDir)
	})
}

func (self *lister) name_style(e *entry) style.Style {
	mode := e.info.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		return self.styles.link
	case e.file.IsDir:
		return self.styles.dir
	case mode.IsRegular() && mode&0o111 != 0:
		return self.styles.exec
	}
	return self.styles.file
}

func (self *lister) age(t time.Time) string {
	d := self.now.Sub(t)
	if d < time.Second {
		return "now"
	}
	return durafmt.Parse(d).LimitFirstN(1).String() + " ago"
}

func (self *lister) render(e *entry) string {
	name_style := self.name_style(e)
	text := self.ctx.Paint(name_style, e.name)
	if self.show_icons {
		glyph := self.ctx.Paint(icons.IconStyle(name_style), icons.IconStringForFile(e.file))
		if self.opts.IconsAfter {
			text = text + " " + glyph
		} else {
			text = glyph + " " + text
		}
	}
	if e.link_target != "" {
		text += " -> " + e.link_target
	}
	if !self.opts.Long {
		return text
	}
	size := "-"
	if !e.file.IsDir && e.info.Mode().IsRegular() {
		size = humanize.IBytes(uint64(e.info.Size()))
	}
	return fmt.Sprintf("%s %9s %16s  %s", e.info.Mode().String(), size, self.age(e.info.ModTime()), text)
}

func (self *lister) write(w io.Writer, entries []*entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, self.render(e)); err != nil {
			return err
		}
	}
	return nil
}
