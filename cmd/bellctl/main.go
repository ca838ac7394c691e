// Command bellctl is the Bell's companion inspection CLI: validate a
// configuration file, dry-render a message template, or probe a single
// sink's reachability without running the full daemon. Structured after
// the teacher's cmd/lncli (urfave/cli, a package-level fatal helper).
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[bellctl] %v\n", err)
	os.Exit(1)
}

func main() {
	app := cli.NewApp()
	app.Name = "bellctl"
	app.Usage = "inspect and validate a Bell configuration"
	app.Commands = []cli.Command{
		validateCommand,
		renderCommand,
		probeCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}
