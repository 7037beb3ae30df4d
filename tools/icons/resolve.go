// License: GPLv3 Copyright: 2026, The lsicons Authors

package icons

import (
	"fmt"
	"strings"
)

var _ = fmt.Print

// File describes a directory entry for the purposes of choosing its icon.
// Ext must already be lowercased, an extension that is not will simply not
// be found in ExtensionMap.
type File struct {
	Name       string
	Ext        string
	HasExt     bool
	IsDir      bool
	IsEmptyDir bool
}

// ExtensionOf returns the lowercased text following the last dot in name.
// Names starting with a dot have the rest of the name as their extension
// and a trailing dot yields a present but empty extension.
func ExtensionOf(name string) (ext string, found bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return "", false
	}
	return ascii_lower(name[idx+1:]), true
}

func ascii_lower(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			b := []byte(s)
			for ; i < len(b); i++ {
				if 'A' <= b[i] && b[i] <= 'Z' {
					b[i] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

func NewFile(name string, is_dir, is_empty_dir bool) File {
	ans := File{Name: name, IsDir: is_dir, IsEmptyDir: is_dir && is_empty_dir}
	ans.Ext, ans.HasExt = ExtensionOf(name)
	return ans
}

// IconForFile returns the icon for f. Exact names win over everything, then
// directories get a folder icon, then the extension is looked up. Files
// with an unrecognized extension get FILE, files without an extension get
// FILE_OUTLINE.
func IconForFile(f File) rune {
	if ans, found := NameMap()[f.Name]; found {
		return ans
	}
	if f.IsDir {
		if f.IsEmptyDir {
			return FOLDER_OPEN
		}
		return FOLDER
	}
	if !f.HasExt {
		return FILE_OUTLINE
	}
	if ans, found := ExtensionMap()[f.Ext]; found {
		return ans
	}
	return FILE
}

func IconStringForFile(f File) string {
	return string(IconForFile(f))
}
