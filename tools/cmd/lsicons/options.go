// License: GPLv3 Copyright: 2026, The lsicons Authors

package lsicons

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lsicons/lsicons/tools/config"
	"github.com/lsicons/lsicons/tools/utils/style"
)

var _ = fmt.Print

const (
	WhenAuto   = "auto"
	WhenAlways = "always"
	WhenNever  = "never"
)

// Options are read, in increasing order of precedence, from lsicons.conf,
// LSICONS_* environment variables and the command line.
type Options struct {
	All            bool     `env:"LSICONS_ALL"`
	Long           bool     `env:"LSICONS_LONG"`
	Recurse        bool     `env:"LSICONS_RECURSE"`
	Icons          string   `env:"LSICONS_ICONS"`
	Color          string   `env:"LSICONS_COLOR"`
	IconsAfter     bool     `env:"LSICONS_ICONS_AFTER"`
	FollowSymlinks bool     `env:"LSICONS_FOLLOW_SYMLINKS"`
	GitIgnore      bool     `env:"LSICONS_GIT_IGNORE"`
	Exclude        []string `env:"LSICONS_EXCLUDE" envSeparator:":"`
	DirStyle       string   `env:"LSICONS_DIR_STYLE"`
	FileStyle      string   `env:"LSICONS_FILE_STYLE"`
	ExecStyle      string   `env:"LSICONS_EXEC_STYLE"`
	LinkStyle      string   `env:"LSICONS_LINK_STYLE"`
	LogLevel       string   `env:"LSICONS_LOG_LEVEL"`
	LogFormat      string   `env:"LSICONS_LOG_FORMAT"`
}

func DefaultOptions() Options {
	return Options{
		Icons:          WhenAuto,
		Color:          WhenAuto,
		FollowSymlinks: true,
		DirStyle:       "fg=blue bold",
		ExecStyle:      "fg=green bold",
		LinkStyle:      "fg=cyan",
		LogLevel:       "warn",
		LogFormat:      "console",
	}
}

func (self *Options) set(key, val string) error {
	switch key {
	case "all":
		self.All = config.StringToBool(val)
	case "long":
		self.Long = config.StringToBool(val)
	case "recurse":
		self.Recurse = config.StringToBool(val)
	case "icons_after":
		self.IconsAfter = config.StringToBool(val)
	case "follow_symlinks":
		self.FollowSymlinks = config.StringToBool(val)
	case "git_ignore":
		self.GitIgnore = config.StringToBool(val)
	case "icons":
		self.Icons = val
	case "color":
		self.Color = val
	case "exclude":
		self.Exclude = append(self.Exclude, val)
	case "dir_style":
		self.DirStyle = val
	case "file_style":
		self.FileStyle = val
	case "exec_style":
		self.ExecStyle = val
	case "link_style":
		self.LinkStyle = val
	case "log_level":
		self.LogLevel = val
	case "log_format":
		self.LogFormat = val
	default:
		return fmt.Errorf("Unknown option: %s", key)
	}
	return nil
}

// LoadOptions builds Options from the config file(s) and then the
// environment. environ of nil means the process environment. Invalid
// environment values are reported as ErrUsage.
func LoadOptions(config_paths, overrides []string, environ map[string]string) (opts Options, bad_lines []config.ConfigLine, err error) {
	opts = DefaultOptions()
	p := config.ConfigParser{LineHandler: opts.set}
	if err = p.LoadConfig("lsicons.conf", config_paths, overrides); err != nil {
		return
	}
	bad_lines = p.BadLines()
	if environ == nil {
		err = config.ParseEnv(&opts)
	} else {
		err = config.ParseEnvFrom(&opts, environ)
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return
}

func validate_when(name, val string) error {
	switch val {
	case WhenAuto, WhenAlways, WhenNever:
		return nil
	}
	return fmt.Errorf("The value of %s must be one of auto, always or never, not: %#v", name, val)
}

// Validate checks the option values and returns the parsed name styles.
func (self *Options) Validate() (name_styles, error) {
	if err := validate_when("icons", self.Icons); err != nil {
		return name_styles{}, err
	}
	if err := validate_when("color", self.Color); err != nil {
		return name_styles{}, err
	}
	for _, pat := range self.Exclude {
		if !doublestar.ValidatePattern(pat) {
			return name_styles{}, fmt.Errorf("Invalid exclude pattern: %#v", pat)
		}
	}
	return self.styles()
}

type name_styles struct {
	dir, file, exec, link style.Style
}

func (self *Options) styles() (ans name_styles, err error) {
	for _, x := range []struct {
		spec string
		dest *style.Style
	}{{self.DirStyle, &ans.dir}, {self.FileStyle, &ans.file}, {self.ExecStyle, &ans.exec}, {self.LinkStyle, &ans.link}} {
		if *x.dest, err = style.ParseStyle(strings.TrimSpace(x.spec)); err != nil {
			return
		}
	}
	return
}

func resolve_when(val string, is_terminal func() bool) bool {
	switch val {
	case WhenAlways:
		return true
	case WhenNever:
		return false
	}
	return is_terminal()
}
