// Command pulsedemo narrates the reactive kernel's boundary scenarios —
// the same graphs exercised by pulse's test suite — against a terminal,
// so the propagation and settle order is something you can watch rather
// than just assert on.
package main

import (
	"os"

	"github.com/pulsegraph/pulse/cmd/pulsedemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
