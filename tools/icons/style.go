// License: GPLv3 Copyright: 2026, The lsicons Authors

package icons

import (
	"github.com/lsicons/lsicons/tools/utils/style"
)

// IconStyle converts the style used to paint a file name into the style
// used to paint its icon: the name's background color if set, otherwise its
// foreground color, as a foreground color. Text attributes are dropped.
func IconStyle(name_style style.Style) style.Style {
	switch {
	case name_style.Background.IsSet:
		return style.Style{Foreground: name_style.Background}
	case name_style.Foreground.IsSet:
		return style.Style{Foreground: name_style.Foreground}
	}
	return style.Style{}
}
