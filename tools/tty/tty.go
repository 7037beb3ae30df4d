// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package tty

import (
	"os"

	"golang.org/x/sys/unix"
)

func eintr_retry_noret(f func() error) error {
	for {
		qerr := f()
		if qerr == unix.EINTR {
			continue
		}
		return qerr
	}
}

func IsTerminal(fd uintptr) bool {
	return eintr_retry_noret(func() error {
		_, err := unix.IoctlGetTermios(int(fd), ioctl_get_termios)
		return err
	}) == nil
}

// StdoutIsTerminal reports whether standard output is connected to a terminal
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
