package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/jito-foundation/bell/config"
)

var validateCommand = cli.Command{
	Name:      "validate",
	Usage:     "load and validate a configuration file",
	ArgsUsage: "config.yaml",
	Action:    validateAction,
}

func validateAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return cli.NewExitError("a config file path is required", 1)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	fmt.Printf("config OK: %d programs, %d message templates\n",
		len(cfg.Programs), len(cfg.MessageTemplates))
	return nil
}
