// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package tty

import "golang.org/x/sys/unix"

const ioctl_get_termios = unix.TCGETS
