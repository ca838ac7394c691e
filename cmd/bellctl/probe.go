package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/jito-foundation/bell/config"
	"github.com/jito-foundation/bell/sinks"
)

var probeCommand = cli.Command{
	Name:      "probe",
	Usage:     "send a synthetic test message to a single sink and report the outcome",
	ArgsUsage: "destination",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "telegram-token"},
		cli.StringFlag{Name: "telegram-chat-id"},
		cli.StringFlag{Name: "discord-webhook"},
		cli.StringFlag{Name: "slack-bell-webhook"},
		cli.StringFlag{Name: "slack-stake-pool-webhook"},
		cli.StringFlag{Name: "twitter-consumer-key"},
		cli.StringFlag{Name: "twitter-consumer-secret"},
		cli.StringFlag{Name: "twitter-access-token"},
		cli.StringFlag{Name: "twitter-access-secret"},
	},
	Action: probeAction,
}

func probeAction(ctx *cli.Context) error {
	dest := config.Destination(ctx.Args().First())
	if dest == "" {
		return cli.NewExitError("a destination is required", 1)
	}

	sink, err := buildProbeSink(ctx, dest)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	amount := 123.45
	msg := sinks.Message{
		Description: "bellctl probe",
		Amount:      &amount,
		Unit:        "SOL",
		Signature:   "5sampleSignature111111111111111111111111111111111111111111",
		ExplorerURL: "https://explorer.solana.com",
	}

	probeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	outcome, err := sink.Send(probeCtx, msg)
	switch outcome {
	case sinks.OutcomeSent:
		fmt.Printf("%s: sent\n", dest)
	case sinks.OutcomeSkipped:
		fmt.Printf("%s: skipped (missing credentials or field)\n", dest)
	case sinks.OutcomeFailed:
		fmt.Printf("%s: failed: %v\n", dest, err)
		return cli.NewExitError("probe failed", 1)
	}
	return nil
}

func buildProbeSink(ctx *cli.Context, dest config.Destination) (sinks.Sink, error) {
	switch dest {
	case config.DestTelegram:
		return sinks.NewTelegram(ctx.String("telegram-token"), ctx.String("telegram-chat-id")), nil
	case config.DestDiscord:
		return sinks.NewDiscord(ctx.String("discord-webhook")), nil
	case config.DestSlackBell:
		return sinks.NewSlack(ctx.String("slack-bell-webhook"), sinks.SlackBell), nil
	case config.DestSlackStakePool:
		return sinks.NewSlack(ctx.String("slack-stake-pool-webhook"), sinks.SlackStakePool), nil
	case config.DestTwitter:
		return sinks.NewSocial(
			ctx.String("twitter-consumer-key"), ctx.String("twitter-consumer-secret"),
			ctx.String("twitter-access-token"), ctx.String("twitter-access-secret"),
		), nil
	default:
		return nil, fmt.Errorf("unknown destination %q", dest)
	}
}
