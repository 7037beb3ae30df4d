// License: GPLv3 Copyright: 2026, The lsicons Authors

package main

import (
	"os"

	"github.com/lsicons/lsicons/tools/cmd/lsicons"
)

func main() {
	os.Exit(lsicons.Main(os.Args[1:]))
}
