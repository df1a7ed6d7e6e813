// Command scaffold generates the county real-estate platform project
// skeleton. It exits with status 1 on any error.
package main

import (
	"os"

	"github.com/county-estate/scaffold/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
