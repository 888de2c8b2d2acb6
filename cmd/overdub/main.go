// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"

	"github.com/ik5/overdub/internal/cli"
)

func main() {
	// cobra already printed the error
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
