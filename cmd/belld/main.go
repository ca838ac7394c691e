// Command belld is the Bell's daemon entry point: it loads configuration,
// wires every subsystem, opens the upstream subscription, and runs until
// interrupted. Structured the way the teacher's lnd.go splits lndMain from
// main so deferred cleanup still runs when an error forces early exit.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coreos/go-systemd/daemon"

	"github.com/jito-foundation/bell/bell"
	"github.com/jito-foundation/bell/belllog"
	"github.com/jito-foundation/bell/berr"
	"github.com/jito-foundation/bell/config"
	"github.com/jito-foundation/bell/evaluator"
	"github.com/jito-foundation/bell/geyser"
	healthprobe "github.com/jito-foundation/bell/healthcheck"
	"github.com/jito-foundation/bell/metrics"
	"github.com/jito-foundation/bell/oracle"
	"github.com/jito-foundation/bell/sinks"
	"github.com/jito-foundation/bell/solrpc"
)

var log = belllog.NewSubsystemLogger("BELD")

// belldMain is the true entry point; defers created here run even when
// main exits through os.Exit.
func belldMain() error {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = os.Getenv("LOG_FILE_PATH")
	}
	if logFile == "" {
		logFile = belllog.DefaultLogFilename
	}
	if err := belllog.InitLogRotator(logFile); err != nil {
		return berr.New(berr.Io, err)
	}
	belllog.SetLogLevels(belllog.LevelFromString(opts.DebugLevel))

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	rpcClient := solrpc.New(opts.RPCEndpoint)
	oracleClient := oracle.New(opts.OracleBaseURL)
	sinkSet := buildSinks(opts)

	registry := prometheus.NewRegistry()
	exporter := metrics.NewExporter(registry)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	epoch, slotsPerEpoch, err := rpcClient.EpochInfo(ctx)
	if err != nil {
		return err
	}
	tracker := metrics.NewTracker(epoch)

	eval := evaluator.New(cfg, rpcClient, oracleClient, sinkSet, tracker, exporter)

	geyserClient, err := geyser.Dial(opts.GeyserEndpoint, opts.GeyserToken)
	if err != nil {
		return err
	}

	b := bell.New(geyserClient, eval, tracker, exporter, slotsPerEpoch, bell.ProgramIDs(cfg))

	monitor := healthprobe.NewMonitor(healthObservations(rpcClient, oracleClient), func(name string, healthy bool) {
		log.Infof("health %s: healthy=%v", name, healthy)
	})
	monitor.Start(ctx)

	if err := b.Start(ctx); err != nil {
		return err
	}

	addInterruptHandler(func() {
		log.Infof("stopping stream consumer")
		b.Stop()
		geyserClient.Close()
	})
	listenForInterrupt()

	go serveMetrics(opts.MetricsAddr, registry)

	notifySystemdReady()

	<-shutdownChannel
	log.Infof("shutdown complete")
	return nil
}

func buildSinks(opts options) map[config.Destination]sinks.Sink {
	return map[config.Destination]sinks.Sink{
		config.DestTelegram:       sinks.NewTelegram(opts.TelegramToken, opts.TelegramChatID),
		config.DestDiscord:        sinks.NewDiscord(opts.DiscordWebhook),
		config.DestSlackBell:      sinks.NewSlack(opts.SlackBellWebhook, sinks.SlackBell),
		config.DestSlackStakePool: sinks.NewSlack(opts.SlackStakePoolWebhook, sinks.SlackStakePool),
		config.DestTwitter: sinks.NewSocial(
			opts.TwitterConsumerKey, opts.TwitterConsumerSecret,
			opts.TwitterAccessToken, opts.TwitterAccessSecret,
		),
	}
}

const (
	healthcheckInterval = 30 * time.Second
	healthcheckTimeout  = 10 * time.Second
)

func healthObservations(rpcClient *solrpc.Client, oracleClient *oracle.Client) []healthprobe.Observation {
	return []healthprobe.Observation{
		{
			Name:     "solrpc",
			Interval: healthcheckInterval,
			Timeout:  healthcheckTimeout,
			Retries:  2,
			Check: func(ctx context.Context) error {
				_, _, err := rpcClient.EpochInfo(ctx)
				return err
			},
		},
		{
			Name:     "oracle",
			Interval: healthcheckInterval,
			Timeout:  healthcheckTimeout,
			Retries:  2,
			Check: func(ctx context.Context) error {
				_, err := oracleClient.Price(ctx, "solana", "So11111111111111111111111111111111111111112")
				return err
			},
		},
	}
}

func serveMetrics(addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	log.Infof("metrics listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Errorf("metrics server stopped: %v", err)
	}
}

// notifySystemdReady reports readiness to systemd when NOTIFY_SOCKET is
// set, e.g. when running under Type=notify. It is a no-op otherwise.
func notifySystemdReady() {
	sent, err := daemon.SdNotify(false, "READY=1")
	if err != nil {
		log.Debugf("systemd notify failed: %v", err)
		return
	}
	if sent {
		log.Infof("notified systemd readiness")
	}
}

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := belldMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
