//go:build darwin || freebsd || openbsd || netbsd || dragonfly
// +build darwin freebsd openbsd netbsd dragonfly

package tty

import (
	"golang.org/x/sys/unix"
)

const ioctl_get_termios = unix.TIOCGETA
