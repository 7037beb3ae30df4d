// License: GPLv3 Copyright: 2026, The lsicons Authors

package icons

import (
	"fmt"
	"sync"
)

var _ = fmt.Print

// glyphs {{{
const (
	ATOM            rune = 0xe764  // 
	AUDIO           rune = 0xf001  // 
	BINARY          rune = 0xeae8  // 
	BOOK            rune = 0xe28b  // 
	CALENDAR        rune = 0xeab0  // 
	CERTIFICATE     rune = 0xeafa  // 
	CLOCK           rune = 0xf43a  // 
	COMPRESSED      rune = 0xf410  // 
	CONFIG          rune = 0xe615  // 
	CSS3            rune = 0xe749  // 
	DATABASE        rune = 0xf1c0  // 
	DIFF            rune = 0xf440  // 
	DISK_IMAGE      rune = 0xe271  // 
	DOCKER          rune = 0xf308  // 
	DOCUMENT        rune = 0xf1c2  // 
	EMACS           rune = 0xe632  // 
	FILE            rune = 0xf15b  // 
	FILE_OUTLINE    rune = 0xf016  // 
	FOLDER          rune = 0xf07b  // 
	FOLDER_CONFIG   rune = 0xe5fc  // 
	FOLDER_OPEN     rune = 0xf115  // 
	FONT            rune = 0xf031  // 
	GIT             rune = 0xf1d3  // 
	GITHUB          rune = 0xf408  // 
	GRUNT           rune = 0xe611  // 
	GULP            rune = 0xe610  // 
	HTML5           rune = 0xf13b  // 
	IMAGE           rune = 0xf1c5  // 
	INTELLIJ        rune = 0xe7b5  // 
	JSON            rune = 0xe60b  // 
	KEY             rune = 0xeb11  // 
	KEYPASS         rune = 0xf23e  // 
	LANG_ASSEMBLY   rune = 0xe637  // 
	LANG_C          rune = 0xe61e  // 
	LANG_CPP        rune = 0xe61d  // 
	LANG_CSHARP     rune = 0xf031b // 󰌛
	LANG_C_HEADER   rune = 0xf0fd  // 
	LANG_ELIXIR     rune = 0xe62d  // 
	LANG_FSHARP     rune = 0xe7a7  // 
	LANG_GO         rune = 0xe626  // 
	LANG_HASKELL    rune = 0xe777  // 
	LANG_JAVA       rune = 0xe256  // 
	LANG_JAVASCRIPT rune = 0xe74e  // 
	LANG_OCAML      rune = 0xe67a  // 
	LANG_PERL       rune = 0xe769  // 
	LANG_PYTHON     rune = 0xe606  // 
	LANG_R          rune = 0xf25d  // 
	LANG_RUBY       rune = 0xe21e  // 
	LANG_RUBYRAILS  rune = 0xe73b  // 
	LANG_RUST       rune = 0xe7a8  // 
	LANG_STYLUS     rune = 0xe600  // 
	LANG_TEX        rune = 0xe69b  // 
	LANG_TYPESCRIPT rune = 0xe628  // 
	LIBRARY         rune = 0xf121  // 
	LICENSE         rune = 0xf02d  // 
	LOCK            rune = 0xf023  // 
	LOG             rune = 0xf18d  // 
	MARKDOWN        rune = 0xf48a  // 
	MUSTACHE        rune = 0xe60f  // 
	NODEJS          rune = 0xe718  // 
	NOTEBOOK        rune = 0xe678  // 
	NPM             rune = 0xe71e  // 
	OS_ANDROID      rune = 0xe70e  // 
	OS_APPLE        rune = 0xf179  // 
	OS_LINUX        rune = 0xf17c  // 
	OS_WINDOWS      rune = 0xf17a  // 
	OS_WINDOWS_APP  rune = 0xe70f  // 
	OS_WINDOWS_CMD  rune = 0xebc4  // 
	POWERSHELL      rune = 0xebc7  // 
	RAZOR           rune = 0xf1fa  // 
	REACT           rune = 0xe7ba  // 
	SHEET           rune = 0xf1c3  // 
	SHELL_CMD       rune = 0xf489  // 
	SLIDE           rune = 0xf1c4  // 
	SQLITE          rune = 0xe7c4  // 
	TEXT            rune = 0xf15c  // 
	TRASH           rune = 0xf1f8  // 
	UNITY           rune = 0xe721  // 
	VIDEO           rune = 0xf03d  // 
	VIM             rune = 0xe7c5  // 
	VISUAL_STUDIO   rune = 0xe70c  // 
	XML             rune = 0xf05c0 // 󰗀
	YAML            rune = 0xf481  // 
) // }}}

// NameMap maps exact file and directory names, including dotfiles, to their
// icon. Lookups are case-sensitive. The returned map is shared and must not
// be modified.
var NameMap = sync.OnceValue(func() map[string]rune { // {{{
	return map[string]rune{
		".atom":              ATOM,           // 
		".bashprofile":       CONFIG,         // 
		".bashrc":            SHELL_CMD,      // 
		".emacs":             EMACS,          // 
		".git":               GIT,            // 
		".gitattributes":     GIT,            // 
		".gitconfig":         GIT,            // 
		".github":            GITHUB,         // 
		".gitignore":         GIT,            // 
		".gitignore_global":  GIT,            // 
		".gitmodules":        GIT,            // 
		".idea":              INTELLIJ,       // 
		".rvm":               LANG_RUBY,      // 
		".Trash":             TRASH,          // 
		".vimrc":             VIM,            // 
		".vscode":            VISUAL_STUDIO,  // 
		".zshrc":             SHELL_CMD,      // 
		"bin":                FOLDER_CONFIG,  // 
		"Cargo.lock":         LANG_RUST,      // 
		"config":             FOLDER_CONFIG,  // 
		"docker-compose.yml": DOCKER,         // 
		"Dockerfile":         DOCKER,         // 
		"ds_store":           OS_APPLE,       // 
		"Earthfile":          0xf0ac,         // 
		"gitignore_global":   GIT,            // 
		"gitlab-ci.yml":      0xf296,         // 
		"go.mod":             LANG_GO,        // 
		"go.sum":             LANG_GO,        // 
		"gradle":             LANG_JAVA,      // 
		"gruntfile.coffee":   GRUNT,          // 
		"gruntfile.js":       GRUNT,          // 
		"gruntfile.ls":       GRUNT,          // 
		"gulpfile.coffee":    GULP,           // 
		"gulpfile.js":        GULP,           // 
		"gulpfile.ls":        GULP,           // 
		"hidden":             LOCK,           // 
		"include":            FOLDER_CONFIG,  // 
		"lib":                LIBRARY,        // 
		"LICENSE":            LICENSE,        // 
		"localized":          OS_APPLE,       // 
		"Makefile":           SHELL_CMD,      // 
		"node_modules":       NODEJS,         // 
		"npmignore":          NPM,            // 
		"PKGBUILD":           0xf303,         // 
		"rubydoc":            LANG_RUBYRAILS, // 
		"Vagrantfile":        0x2371,         // ⍱
		"yarn.lock":          NODEJS,         // 
	}
}) // }}}

// ExtensionMap maps lowercased file extensions, without the leading dot, to
// their icon. When adding image, video or audio extensions keep the glyphs
// consistent with the existing entries of that kind. The returned map is
// shared and must not be modified.
var ExtensionMap = sync.OnceValue(func() map[string]rune { // {{{
	return map[string]rune{
		"7z":             COMPRESSED,      // 
		"a":              OS_LINUX,        // 
		"acc":            AUDIO,           // 
		"acf":            0xf1b6,          // 
		"ai":             0xe7b4,          // 
		"alac":           AUDIO,           // 
		"android":        OS_ANDROID,      // 
		"ape":            AUDIO,           // 
		"apk":            OS_ANDROID,      // 
		"apple":          OS_APPLE,        // 
		"ar":             COMPRESSED,      // 
		"arw":            IMAGE,           // 
		"asm":            LANG_ASSEMBLY,   // 
		"avi":            VIDEO,           // 
		"avif":           IMAGE,           // 
		"avro":           JSON,            // 
		"awk":            SHELL_CMD,       // 
		"bash":           SHELL_CMD,       // 
		"bashrc":         SHELL_CMD,       // 
		"bash_history":   SHELL_CMD,       // 
		"bash_profile":   SHELL_CMD,       // 
		"bat":            OS_WINDOWS_CMD,  // 
		"bats":           SHELL_CMD,       // 
		"bib":            LANG_TEX,        // 
		"bin":            BINARY,          // 
		"bmp":            IMAGE,           // 
		"bst":            LANG_TEX,        // 
		"bz":             COMPRESSED,      // 
		"bz2":            COMPRESSED,      // 
		"c":              LANG_C,          // 
		"c++":            LANG_CPP,        // 
		"cab":            OS_WINDOWS_APP,  // 
		"cbr":            IMAGE,           // 
		"cbz":            IMAGE,           // 
		"cc":             LANG_CPP,        // 
		"cert":           CERTIFICATE,     // 
		"cfg":            CONFIG,          // 
		"cjs":            LANG_JAVASCRIPT, // 
		"class":          LANG_JAVA,       // 
		"clj":            0xe768,          // 
		"cljs":           0xe76a,          // 
		"cls":            LANG_TEX,        // 
		"cmd":            OS_WINDOWS_APP,  // 
		"coffee":         0xf0f4,          // 
		"conf":           CONFIG,          // 
		"config":         CONFIG,          // 
		"cp":             LANG_CPP,        // 
		"cpio":           COMPRESSED,      // 
		"cpp":            LANG_CPP,        // 
		"cr2":            IMAGE,           // 
		"crt":            CERTIFICATE,     // 
		"cs":             LANG_CSHARP,     // 󰌛
		"csh":            SHELL_CMD,       // 
		"cshtml":         RAZOR,           // 
		"csproj":         LANG_CSHARP,     // 󰌛
		"css":            CSS3,            // 
		"csv":            SHEET,           // 
		"csx":            LANG_CSHARP,     // 󰌛
		"cts":            LANG_TYPESCRIPT, // 
		"cu":             0xe64b,          // 
		"cxx":            LANG_CPP,        // 
		"d":              0xe7af,          // 
		"dart":           0xe798,          // 
		"db":             DATABASE,        // 
		"deb":            0xe77d,          // 
		"desktop":        0xebd1,          // 
		"diff":           DIFF,            // 
		"djvu":           LICENSE,         // 
		"dll":            OS_WINDOWS_APP,  // 
		"dmg":            DISK_IMAGE,      // 
		"doc":            DOCUMENT,        // 
		"docx":           DOCUMENT,        // 
		"drawio":         0xebba,          // 
		"ds_store":       OS_APPLE,        // 
		"dump":           DATABASE,        // 
		"dvi":            IMAGE,           // 
		"ebook":          BOOK,            // 
		"ebuild":         0xf30d,          // 
		"editorconfig":   CONFIG,          // 
		"ejs":            0xe618,          // 
		"el":             EMACS,           // 
		"elm":            0xe62c,          // 
		"eml":            0xf003,          // 
		"env":            0xf462,          // 
		"eot":            FONT,            // 
		"eps":            IMAGE,           // 
		"epub":           0xe28a,          // 
		"erb":            LANG_RUBYRAILS,  // 
		"erl":            0xe7b1,          // 
		"ex":             LANG_ELIXIR,     // 
		"exe":            OS_WINDOWS,      // 
		"exs":            LANG_ELIXIR,     // 
		"fish":           SHELL_CMD,       // 
		"flac":           AUDIO,           // 
		"flv":            VIDEO,           // 
		"font":           FONT,            // 
		"fs":             LANG_FSHARP,     // 
		"fsi":            LANG_FSHARP,     // 
		"fsx":            LANG_FSHARP,     // 
		"gdoc":           DOCUMENT,        // 
		"gem":            LANG_RUBY,       // 
		"gemfile":        LANG_RUBY,       // 
		"gemspec":        LANG_RUBY,       // 
		"gform":          0xf298,          // 
		"gif":            IMAGE,           // 
		"git":            GIT,             // 
		"gitattributes":  GIT,             // 
		"gitignore":      GIT,             // 
		"gitmodules":     GIT,             // 
		"go":             LANG_GO,         // 
		"gpg":            0xe60a,          // 
		"gradle":         LANG_JAVA,       // 
		"groovy":         0xe775,          // 
		"gsheet":         SHEET,           // 
		"gslides":        SLIDE,           // 
		"guardfile":      LANG_RUBY,       // 
		"gz":             COMPRESSED,      // 
		"h":              LANG_C_HEADER,   // 
		"hbs":            MUSTACHE,        // 
		"heic":           VIDEO,           // 
		"heif":           IMAGE,           // 
		"hpp":            LANG_C_HEADER,   // 
		"hs":             LANG_HASKELL,    // 
		"htm":            HTML5,           // 
		"html":           HTML5,           // 
		"hxx":            LANG_C_HEADER,   // 
		"ical":           CALENDAR,        // 
		"icalendar":      CALENDAR,        // 
		"ico":            IMAGE,           // 
		"ics":            CALENDAR,        // 
		"ifb":            CALENDAR,        // 
		"image":          IMAGE,           // 
		"img":            DISK_IMAGE,      // 
		"iml":            INTELLIJ,        // 
		"ini":            OS_WINDOWS,      // 
		"ipynb":          NOTEBOOK,        // 
		"iso":            DISK_IMAGE,      // 
		"j2c":            IMAGE,           // 
		"j2k":            IMAGE,           // 
		"jad":            LANG_JAVA,       // 
		"jar":            LANG_JAVA,       // 
		"java":           LANG_JAVA,       // 
		"jfi":            IMAGE,           // 
		"jfif":           IMAGE,           // 
		"jif":            IMAGE,           // 
		"jl":             0xe624,          // 
		"jmd":            MARKDOWN,        // 
		"jp2":            IMAGE,           // 
		"jpe":            IMAGE,           // 
		"jpeg":           IMAGE,           // 
		"jpf":            IMAGE,           // 
		"jpg":            IMAGE,           // 
		"jpx":            IMAGE,           // 
		"js":             LANG_JAVASCRIPT, // 
		"json":           JSON,            // 
		"jsx":            REACT,           // 
		"jxl":            IMAGE,           // 
		"kdb":            KEYPASS,         // 
		"kdbx":           KEYPASS,         // 
		"key":            KEY,             // 
		"ko":             OS_LINUX,        // 
		"ksh":            SHELL_CMD,       // 
		"latex":          LANG_TEX,        // 
		"less":           0xe758,          // 
		"lhs":            LANG_HASKELL,    // 
		"license":        LICENSE,         // 
		"localized":      OS_APPLE,        // 
		"lock":           LOCK,            // 
		"log":            LOG,             // 
		"lua":            0xe620,          // 
		"lz":             COMPRESSED,      // 
		"lz4":            COMPRESSED,      // 
		"lzh":            COMPRESSED,      // 
		"lzma":           COMPRESSED,      // 
		"lzo":            COMPRESSED,      // 
		"m":              LANG_C,          // 
		"m2ts":           VIDEO,           // 
		"m2v":            VIDEO,           // 
		"m4a":            AUDIO,           // 
		"m4v":            VIDEO,           // 
		"magnet":         0xf076,          // 
		"markdown":       MARKDOWN,        // 
		"md":             MARKDOWN,        // 
		"mjs":            LANG_JAVASCRIPT, // 
		"mk":             SHELL_CMD,       // 
		"mka":            AUDIO,           // 
		"mkd":            MARKDOWN,        // 
		"mkv":            VIDEO,           // 
		"ml":             LANG_OCAML,      // 
		"mli":            LANG_OCAML,      // 
		"mll":            LANG_OCAML,      // 
		"mly":            LANG_OCAML,      // 
		"mm":             LANG_CPP,        // 
		"mobi":           BOOK,            // 
		"mov":            VIDEO,           // 
		"mp2":            AUDIO,           // 
		"mp3":            AUDIO,           // 
		"mp4":            VIDEO,           // 
		"mpeg":           VIDEO,           // 
		"mpg":            VIDEO,           // 
		"msi":            OS_WINDOWS_APP,  // 
		"mts":            LANG_TYPESCRIPT, // 
		"mustache":       MUSTACHE,        // 
		"nef":            IMAGE,           // 
		"ninja":          0xf0774,         // 󰝴
		"nix":            0xf313,          // 
		"node":           0xf0399,         // 󰎙
		"npmignore":      NPM,             // 
		"o":              BINARY,          // 
		"odp":            SLIDE,           // 
		"ods":            SHEET,           // 
		"odt":            DOCUMENT,        // 
		"ogg":            AUDIO,           // 
		"ogm":            VIDEO,           // 
		"ogv":            VIDEO,           // 
		"opus":           AUDIO,           // 
		"orf":            IMAGE,           // 
		"org":            0xe633,          // 
		"otf":            FONT,            // 
		"out":            0xeb2c,          // 
		"par":            COMPRESSED,      // 
		"part":           CLOCK,           // 
		"patch":          DIFF,            // 
		"pbm":            IMAGE,           // 
		"pdf":            0xf1c1,          // 
		"pem":            KEY,             // 
		"pgm":            IMAGE,           // 
		"php":            0xe73d,          // 
		"pl":             LANG_PERL,       // 
		"plx":            LANG_PERL,       // 
		"pm":             LANG_PERL,       // 
		"png":            IMAGE,           // 
		"pnm":            IMAGE,           // 
		"pod":            LANG_PERL,       // 
		"ppm":            IMAGE,           // 
		"ppt":            SLIDE,           // 
		"pptx":           SLIDE,           // 
		"procfile":       LANG_RUBY,       // 
		"properties":     JSON,            // 
		"ps":             IMAGE,           // 
		"ps1":            POWERSHELL,      // 
		"psd":            0xe7b8,          // 
		"psd1":           POWERSHELL,      // 
		"psm1":           POWERSHELL,      // 
		"pxm":            IMAGE,           // 
		"py":             LANG_PYTHON,     // 
		"pyc":            LANG_PYTHON,     // 
		"qcow2":          DISK_IMAGE,      // 
		"r":              LANG_R,          // 
		"rakefile":       LANG_RUBY,       // 
		"rar":            COMPRESSED,      // 
		"raw":            IMAGE,           // 
		"razor":          RAZOR,           // 
		"rb":             LANG_RUBY,       // 
		"rdata":          LANG_R,          // 
		"rdb":            0xe76d,          // 
		"rdoc":           MARKDOWN,        // 
		"rds":            LANG_R,          // 
		"readme":         MARKDOWN,        // 
		"rlib":           LANG_RUST,       // 
		"rmd":            MARKDOWN,        // 
		"rmeta":          LANG_RUST,       // 
		"rpm":            0xe7bb,          // 
		"rs":             LANG_RUST,       // 
		"rspec":          LANG_RUBY,       // 
		"rspec_parallel": LANG_RUBY,       // 
		"rspec_status":   LANG_RUBY,       // 
		"rss":            0xf09e,          // 
		"rst":            TEXT,            // 
		"rtf":            0xf0219,         // 󰈙
		"ru":             LANG_RUBY,       // 
		"rubydoc":        LANG_RUBYRAILS,  // 
		"s":              LANG_ASSEMBLY,   // 
		"sass":           0xe603,          // 
		"scala":          0xe737,          // 
		"scss":           CSS3,            // 
		"service":        0xeba2,          // 
		"sh":             SHELL_CMD,       // 
		"shell":          SHELL_CMD,       // 
		"slim":           LANG_RUBYRAILS,  // 
		"sln":            VISUAL_STUDIO,   // 
		"so":             OS_LINUX,        // 
		"sql":            DATABASE,        // 
		"sqlite3":        SQLITE,          // 
		"stl":            IMAGE,           // 
		"sty":            LANG_TEX,        // 
		"styl":           LANG_STYLUS,     // 
		"stylus":         LANG_STYLUS,     // 
		"svelte":         0xe697,          // 
		"svg":            IMAGE,           // 
		"swift":          0xe755,          // 
		"t":              LANG_PERL,       // 
		"tar":            COMPRESSED,      // 
		"taz":            COMPRESSED,      // 
		"tbz":            COMPRESSED,      // 
		"tbz2":           COMPRESSED,      // 
		"tc":             COMPRESSED,      // 
		"tex":            LANG_TEX,        // 
		"tgz":            COMPRESSED,      // 
		"tif":            IMAGE,           // 
		"tiff":           IMAGE,           // 
		"tlz":            COMPRESSED,      // 
		"toml":           CONFIG,          // 
		"torrent":        0xe275,          // 
		"ts":             LANG_TYPESCRIPT, // 
		"tsv":            SHEET,           // 
		"tsx":            REACT,           // 
		"ttf":            FONT,            // 
		"twig":           0xe61c,          // 
		"txt":            TEXT,            // 
		"txz":            COMPRESSED,      // 
		"tz":             COMPRESSED,      // 
		"tzo":            COMPRESSED,      // 
		"unity":          UNITY,           // 
		"unity3d":        UNITY,           // 
		"vdi":            DISK_IMAGE,      // 
		"vhd":            DISK_IMAGE,      // 
		"video":          VIDEO,           // 
		"vim":            VIM,             // 
		"vmdk":           DISK_IMAGE,      // 
		"vob":            VIDEO,           // 
		"vue":            0xf0844,         // 󰡄
		"war":            LANG_JAVA,       // 
		"wav":            AUDIO,           // 
		"webm":           VIDEO,           // 
		"webp":           IMAGE,           // 
		"windows":        OS_WINDOWS,      // 
		"wma":            AUDIO,           // 
		"wmv":            VIDEO,           // 
		"woff":           FONT,            // 
		"woff2":          FONT,            // 
		"xhtml":          HTML5,           // 
		"xls":            SHEET,           // 
		"xlsm":           SHEET,           // 
		"xlsx":           SHEET,           // 
		"xml":            XML,             // 󰗀
		"xpm":            IMAGE,           // 
		"xul":            XML,             // 󰗀
		"xz":             COMPRESSED,      // 
		"yaml":           YAML,            // 
		"yml":            YAML,            // 
		"z":              COMPRESSED,      // 
		"zig":            0x21af,          // ↯
		"zip":            COMPRESSED,      // 
		"zsh":            SHELL_CMD,       // 
		"zsh-theme":      SHELL_CMD,       // 
		"zshrc":          SHELL_CMD,       // 
		"zst":            COMPRESSED,      // 
	}
}) // }}}
