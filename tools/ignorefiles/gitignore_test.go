// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package ignorefiles

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

func TestGitignore(t *testing.T) {
	for line, expected := range map[string]struct {
		skipped, negated, only_dirs bool
		parts                       []string
	}{
		"":           {skipped: true},
		" ":          {skipped: true},
		"  ":         {skipped: true},
		"/":          {skipped: true},
		"//":         {skipped: true},
		"!":          {skipped: true},
		"# abc":      {skipped: true},
		`\!moose \ `: {parts: []string{`!moose  `}},
		`\#m\oose  `: {parts: []string{`#m\oose`}},
		"!build/":    {negated: true, only_dirs: true, parts: []string{"build"}},
		"a//b":       {parts: []string{"a", "b"}},
	} {
		p, skipped := CompileGitIgnoreLine(line)
		if skipped != expected.skipped {
			t.Fatalf("skipped: %v != %v for line: %s", expected.skipped, skipped, line)
		}
		if !skipped {
			if p.negated != expected.negated {
				t.Fatalf("negated: %v != %v for line: %s", expected.negated, p.negated, line)
			}
			if p.only_dirs != expected.only_dirs {
				t.Fatalf("only_dirs: %v != %v for line: %s", expected.only_dirs, p.only_dirs, line)
			}
			if diff := cmp.Diff(expected.parts, p.parts); diff != "" {
				t.Fatalf("parts not equal for line: %s\n%s", line, diff)
			}
		}
	}
	type ptest struct {
		path     string
		expected bool
	}
	for _, x := range []struct {
		line  string
		tests []ptest
	}{
		{"foo", []ptest{
			{"foo", true}, {"x/foo", true}, {"foo/x", true},
		}},
		{"/foo", []ptest{
			{"foo", true}, {"x/foo", false},
		}},
		{"doc/frotz/", []ptest{
			{"doc/frotz/", true}, {"a/doc/frotz/", false}, {"doc/frotz", false},
		}},
		{"frotz/", []ptest{
			{"frotz/", true}, {"a/doc/frotz/", true}, {"doc/frotz", false},
		}},
		{"foo.*", []ptest{
			{"foo.txt", true}, {"foo", false}, {"a/foo.x", true}, {"foo.", true},
		}},
		{"a/**/b", []ptest{
			{"a/b", true}, {"a/x/y/b", true}, {"a/x/c", false}, {"b", false},
		}},
		{"**", []ptest{
			{"anything", true},
		}},
	} {
		p, skipped := CompileGitIgnoreLine(x.line)
		if skipped {
			t.Fatalf("Unexpectedly failed to compile: %#v", x.line)
		}
		for _, test := range x.tests {
			path := strings.TrimRight(test.path, "/")
			var ftype fs.FileMode
			if len(path) < len(test.path) {
				ftype = fs.ModeDir
			}
			if actual := p.Match(path, ftype); actual != test.expected {
				t.Fatalf("matched: %v != %v for pattern: %#v and path: %#v", test.expected, actual, x.line, test.path)
			}
		}
	}
}

func TestIsIgnored(t *testing.T) {
	g := NewGitignore()
	g.LoadString("# comment\n*.o\ntarget/\n!keep.o\n")
	type result struct {
		Ignored bool
		Line    int
		Pattern string
	}
	for path, expected := range map[string]result{
		"main.o":    {true, 1, "*.o"},
		"keep.o":    {false, 3, "!keep.o"},
		"main.c":    {false, -1, ""},
		"target/":   {true, 2, "target/"},
		"target":    {false, -1, ""},
		"x/target/": {true, 2, "target/"},
	} {
		relpath := strings.TrimRight(path, "/")
		var ftype fs.FileMode
		if relpath != path {
			ftype = fs.ModeDir
		}
		ignored, line, pattern := g.IsIgnored(relpath, ftype)
		if diff := cmp.Diff(expected, result{ignored, line, pattern}); diff != "" {
			t.Fatalf("Unexpected result for %#v:\n%s", path, diff)
		}
	}
}

func TestStack(t *testing.T) {
	tdir := t.TempDir()
	global := filepath.Join(tdir, "global-ignore")
	for name, data := range map[string]string{
		"global-ignore":            "*.swp\n",
		".gitignore":               "build/\n*.rs\n/src/gen/\nsrc/*.tmp\n",
		"src/.gitignore":           "!keep.rs\n",
		"src/deep/.gitignore":      "# only a comment\n",
		"src/deep/more/.gitignore": "**/cache\n",
	} {
		os.MkdirAll(filepath.Dir(filepath.Join(tdir, name)), 0o700)
		os.WriteFile(filepath.Join(tdir, name), []byte(data), 0o600)
	}
	top, err := NewStack(tdir, global)
	if err != nil {
		t.Fatal(err)
	}
	if top.Len() != 2 {
		t.Fatalf("Unexpected number of layers at the top: %d", top.Len())
	}
	src, err := top.Push(filepath.Join(tdir, "src"))
	if err != nil {
		t.Fatal(err)
	}
	deep, err := src.Push(filepath.Join(tdir, "src", "deep"))
	if err != nil || deep != src {
		t.Fatalf("An ignore file without rules added a layer, err: %v", err)
	}
	more, err := deep.Push(filepath.Join(tdir, "src", "deep", "more"))
	if err != nil || more.Len() != 4 || src.Len() != 3 {
		t.Fatalf("Unexpected layers, err: %v", err)
	}
	type result struct {
		Ignored bool
		Source  string
		Line    int
	}
	for _, x := range []struct {
		stack    *Stack
		path     string
		expected result
	}{
		{top, "x.swp", result{true, global, 0}},
		{top, "build/", result{true, filepath.Join(tdir, ".gitignore"), 0}},
		{top, "main.rs", result{true, filepath.Join(tdir, ".gitignore"), 1}},
		{top, "README", result{false, "", -1}},
		{src, "src/main.rs", result{true, filepath.Join(tdir, ".gitignore"), 1}},
		{src, "src/keep.rs", result{false, filepath.Join(tdir, "src", ".gitignore"), 0}},
		{src, "src/gen/", result{true, filepath.Join(tdir, ".gitignore"), 2}},
		{src, "src/a.tmp", result{true, filepath.Join(tdir, ".gitignore"), 3}},
		{more, "src/deep/a.tmp", result{false, "", -1}},
		{more, "src/deep/more/x/cache/", result{true, filepath.Join(tdir, "src", "deep", "more", ".gitignore"), 0}},
		{more, "src/deep/more/gen/", result{false, "", -1}},
	} {
		path := strings.TrimRight(x.path, "/")
		var ftype fs.FileMode
		if path != x.path {
			ftype = fs.ModeDir
		}
		ignored, source, line, _ := x.stack.IsIgnored(filepath.Join(tdir, filepath.FromSlash(path)), ftype)
		if diff := cmp.Diff(x.expected, result{ignored, source, line}); diff != "" {
			t.Fatalf("Unexpected result for %#v:\n%s", x.path, diff)
		}
	}
	if s, err := NewStack(filepath.Join(tdir, "missing"), filepath.Join(tdir, "missing-global")); err != nil || s.Len() != 0 {
		t.Fatalf("Missing ignore files not handled, err: %v", err)
	}
}

func TestRepoRoot(t *testing.T) {
	tdir := t.TempDir()
	os.MkdirAll(filepath.Join(tdir, "repo", ".git"), 0o700)
	os.MkdirAll(filepath.Join(tdir, "repo", "a", "b"), 0o700)
	if q := RepoRoot(filepath.Join(tdir, "repo", "a", "b")); q != filepath.Join(tdir, "repo") {
		t.Fatalf("Unexpected repo root: %#v", q)
	}
	if q := RepoRoot(filepath.Join(tdir, "repo")); q != filepath.Join(tdir, "repo") {
		t.Fatalf("Unexpected repo root: %#v", q)
	}
}

func TestGlobalExcludesFile(t *testing.T) {
	global := filepath.Join(t.TempDir(), "global-ignore")
	cfhome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfhome)
	t.Setenv("HOME", cfhome)
	os.MkdirAll(filepath.Join(cfhome, "git"), 0o700)
	os.WriteFile(filepath.Join(cfhome, "git", "config"), []byte("[user]\nexcludesfile = /wrong\n[core]\n\texcludesfile = "+global+"\n"), 0o600)
	if _, err := os.Stat("/etc/gitconfig"); err == nil {
		t.Skip("system git config present")
	}
	if q := GlobalExcludesFile(); q != global {
		t.Fatalf("Unexpected global excludes file: %#v", q)
	}
}
