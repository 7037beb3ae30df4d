// License: GPLv3 Copyright: 2026, The lsicons Authors

package lsicons

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kovidgoyal/go-parallel"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lsicons/lsicons/tools/icons"
	"github.com/lsicons/lsicons/tools/ignorefiles"
	"github.com/lsicons/lsicons/tools/logging"
	"github.com/lsicons/lsicons/tools/tty"
	"github.com/lsicons/lsicons/tools/utils/style"
)

var _ = fmt.Print

type string_list []string

func (self *string_list) String() string {
	return strings.Join(*self, ", ")
}

func (self *string_list) Set(val string) error {
	*self = append(*self, val)
	return nil
}

type invocation struct {
	config_paths, overrides string_list
	table_fingerprint       bool
	debug                   bool
	paths                   []string
	// options given on the command line, applied over config and env
	apply []func(*Options)
}

var ErrUsage = errors.New("usage error")

func parse_args(args []string, stderr io.Writer) (*invocation, error) {
	inv := invocation{}
	fs := flag.NewFlagSet("lsicons", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: lsicons [options] [path ...]")
		fmt.Fprintln(stderr, "List directory contents with file type icons.")
		fs.PrintDefaults()
	}
	fs.Var(&inv.config_paths, "config", "Path to a config file to use instead of lsicons.conf, can be repeated")
	fs.Var(&inv.overrides, "override", "Override a config file setting, as key=value, can be repeated")
	fs.BoolVar(&inv.table_fingerprint, "table-fingerprint", false, "Print the fingerprint of the icon tables and exit")
	fs.BoolVar(&inv.debug, "debug", false, "Log debug messages to stderr")

	bool_opt := func(set func(*Options, bool), usage string, names ...string) {
		for _, name := range names {
			fs.BoolFunc(name, usage, func(val string) error {
				var b bool
				switch strings.ToLower(val) {
				case "true", "yes", "y", "1":
					b = true
				case "false", "no", "n", "0":
				default:
					return fmt.Errorf("not a boolean: %#v", val)
				}
				inv.apply = append(inv.apply, func(o *Options) { set(o, b) })
				return nil
			})
		}
	}
	string_opt := func(set func(*Options, string), usage string, names ...string) {
		for _, name := range names {
			fs.Func(name, usage, func(val string) error {
				inv.apply = append(inv.apply, func(o *Options) { set(o, val) })
				return nil
			})
		}
	}
	bool_opt(func(o *Options, b bool) { o.All = b }, "Show entries whose names start with a dot", "all", "a")
	bool_opt(func(o *Options, b bool) { o.Long = b }, "Show permissions, size and age", "long", "l")
	bool_opt(func(o *Options, b bool) { o.Recurse = b }, "List subdirectories recursively", "recurse", "R")
	bool_opt(func(o *Options, b bool) { o.IconsAfter = b }, "Place icons after the names instead of before them", "icons-after")
	bool_opt(func(o *Options, b bool) { o.FollowSymlinks = b }, "Treat symlinks to directories as directories", "follow-symlinks")
	bool_opt(func(o *Options, b bool) { o.GitIgnore = b }, "Hide entries matched by .gitignore and the global git excludes file", "git-ignore")
	string_opt(func(o *Options, s string) { o.Icons = s }, "When to show icons: auto, always or never", "icons")
	string_opt(func(o *Options, s string) { o.Color = s }, "When to use colors: auto, always or never", "color")
	string_opt(func(o *Options, s string) { o.Exclude = append(o.Exclude, s) }, "Hide entries whose names match this glob, can be repeated", "exclude")
	string_opt(func(o *Options, s string) { o.DirStyle = s }, "Style for directory names, for example: fg=blue bold", "dir-style")
	string_opt(func(o *Options, s string) { o.FileStyle = s }, "Style for file names", "file-style")
	string_opt(func(o *Options, s string) { o.ExecStyle = s }, "Style for executable file names", "exec-style")
	string_opt(func(o *Options, s string) { o.LinkStyle = s }, "Style for symlink names", "link-style")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	inv.paths = fs.Args()
	if len(inv.paths) == 0 {
		inv.paths = []string{"."}
	}
	return &inv, nil
}

type environment struct {
	stdout, stderr io.Writer
	environ        map[string]string
	is_terminal    func() bool
	now            time.Time
}

func main(args []string, env environment) (rc int, err error) {
	defer func() {
		if r := recover(); r != nil {
			rc, err = 1, parallel.Format_stacktrace_on_panic(r, 1)
		}
	}()
	inv, err := parse_args(args, env.stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0, nil
		}
		return 2, err
	}
	if inv.table_fingerprint {
		fmt.Fprintln(env.stdout, icons.TableFingerprintString())
		return 0, nil
	}
	opts, bad_lines, err := LoadOptions(inv.config_paths, inv.overrides, env.environ)
	if err != nil {
		if errors.Is(err, ErrUsage) {
			return 2, err
		}
		return 1, err
	}
	for _, f := range inv.apply {
		f(&opts)
	}
	if err = logging.Init(logging.Config{Level: opts.LogLevel, Format: opts.LogFormat}); err != nil {
		return 2, fmt.Errorf("%w: invalid log level: %w", ErrUsage, err)
	}
	defer func() { _ = logging.Sync() }()
	if inv.debug {
		logging.SetLevel(zapcore.DebugLevel)
	}
	for _, bl := range bad_lines {
		logging.L().Warn("ignoring bad config line", zap.String("file", bl.Src_file), zap.Int("line", bl.Line_number), zap.Error(bl.Err))
	}
	styles, err := opts.Validate()
	if err != nil {
		return 2, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	l := lister{
		opts:       &opts,
		styles:     styles,
		now:        env.now,
		ctx:        style.Context{AllowEscapeCodes: resolve_when(opts.Color, env.is_terminal)},
		show_icons: resolve_when(opts.Icons, env.is_terminal),
	}
	if opts.GitIgnore {
		l.global_excludes = ignorefiles.GlobalExcludesFile()
	}
	logging.L().Debug("listing", zap.Strings("paths", inv.paths), zap.Bool("icons", l.show_icons), zap.Bool("color", l.ctx.AllowEscapeCodes))
	w := bufio.NewWriter(env.stdout)
	defer w.Flush()
	return l.list_paths(w, inv.paths), nil
}

func (self *lister) list_paths(w io.Writer, paths []string) (rc int) {
	var files, dirs []*entry
	for _, path := range paths {
		e, err := self.make_entry(path, path)
		if err != nil {
			logging.L().Error("cannot access", zap.String("path", path), zap.Error(err))
			rc = 1
			continue
		}
		if e.file.IsDir {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	write := func(entries []*entry) bool {
		if err := self.write(w, entries); err != nil {
			logging.L().Error("write failed", zap.Error(err))
			rc = 1
			return false
		}
		return true
	}
	if !write(files) {
		return
	}
	show_headers := len(dirs)+len(files) > 1 || self.opts.Recurse
	printed := len(files) > 0
	for _, d := range dirs {
		self.listing_root = d.path
		if abs, err := filepath.Abs(d.path); err == nil {
			self.listing_root = abs
		}
		dir_paths := []string{d.path}
		if self.opts.Recurse {
			subdirs, err := self.subdirectories(d.path)
			if err != nil {
				logging.L().Error("recursive listing failed", zap.String("path", d.path), zap.Error(err))
				rc = 1
			}
			dir_paths = append(dir_paths, subdirs...)
		}
		for _, path := range dir_paths {
			entries, err := self.entries_in(path)
			if err != nil {
				logging.L().Error("cannot open directory", zap.String("path", path), zap.Error(err))
				rc = 1
				continue
			}
			if show_headers {
				if printed {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s:\n", path)
				printed = true
			}
			if !write(entries) {
				return
			}
		}
	}
	return
}

func Main(args []string) int {
	rc, err := main(args, environment{
		stdout: os.Stdout, stderr: os.Stderr, is_terminal: tty.StdoutIsTerminal, now: time.Now(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "lsicons:", err)
		if rc == 0 {
			rc = 1
		}
	}
	return rc
}
