package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/jito-foundation/bell/config"
)

var renderCommand = cli.Command{
	Name:      "render",
	Usage:     "dry-render a message template against sample values",
	ArgsUsage: "config.yaml destination",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "description", Value: "sample alert"},
		cli.Float64Flag{Name: "amount", Value: 123.45},
		cli.StringFlag{Name: "unit", Value: "SOL"},
		cli.StringFlag{Name: "tx-hash", Value: "5sampleSignature111111111111111111111111111111111111111111"},
	},
	Action: renderAction,
}

func renderAction(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) < 2 {
		return cli.NewExitError("usage: bellctl render config.yaml destination", 1)
	}

	cfg, err := config.Load(args[0])
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	dest := config.Destination(args[1])
	tmpl := cfg.Template(dest)

	amount := ctx.Float64("amount")
	replacer := strings.NewReplacer(
		"{{description}}", ctx.String("description"),
		"{{amount}}", strconv.FormatFloat(amount, 'f', 2, 64),
		"{{currency_unit}}", ctx.String("unit"),
		"{{tx_hash}}", ctx.String("tx-hash"),
	)
	fmt.Println(replacer.Replace(tmpl))
	return nil
}
