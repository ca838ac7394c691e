package main

// options holds every daemon flag, each also settable by its paired
// environment variable via the `env` struct tag (jessevdk/go-flags),
// matching spec.md §6's "also accepted via equivalent environment
// variables" requirement.
type options struct {
	ConfigPath string `long:"config" env:"BELL_CONFIG" description:"path to the YAML configuration file" required:"true"`

	GeyserEndpoint string `long:"geyser-endpoint" env:"BELL_GEYSER_ENDPOINT" description:"host:port of the upstream Geyser-style streaming service" required:"true"`
	GeyserToken    string `long:"geyser-token" env:"BELL_GEYSER_TOKEN" description:"x-token credential for the upstream streaming service"`

	RPCEndpoint   string `long:"rpc-endpoint" env:"BELL_RPC_ENDPOINT" description:"Solana JSON-RPC endpoint" required:"true"`
	OracleBaseURL string `long:"oracle-base-url" env:"BELL_ORACLE_BASE_URL" description:"USD price oracle base URL"`

	MetricsAddr string `long:"metrics-addr" env:"BELL_METRICS_ADDR" description:"address to serve Prometheus metrics on" default:":9090"`

	LogFile    string `long:"log-file" env:"BELL_LOG_FILE" description:"path to the rotating log file"`
	DebugLevel string `long:"debuglevel" env:"BELL_DEBUGLEVEL" description:"log level for every subsystem" default:"info"`

	TelegramToken  string `long:"telegram-token" env:"BELL_TELEGRAM_TOKEN" description:"Telegram bot token"`
	TelegramChatID string `long:"telegram-chat-id" env:"BELL_TELEGRAM_CHAT_ID" description:"Telegram chat id"`

	DiscordWebhook string `long:"discord-webhook" env:"BELL_DISCORD_WEBHOOK" description:"Discord webhook URL"`

	SlackBellWebhook      string `long:"slack-bell-webhook" env:"BELL_SLACK_BELL_WEBHOOK" description:"Slack webhook URL for the bell destination"`
	SlackStakePoolWebhook string `long:"slack-stake-pool-webhook" env:"BELL_SLACK_STAKE_POOL_WEBHOOK" description:"Slack webhook URL for the stake-pool destination"`

	TwitterConsumerKey    string `long:"twitter-consumer-key" env:"BELL_TWITTER_CONSUMER_KEY" description:"Twitter/X OAuth1 consumer key"`
	TwitterConsumerSecret string `long:"twitter-consumer-secret" env:"BELL_TWITTER_CONSUMER_SECRET" description:"Twitter/X OAuth1 consumer secret"`
	TwitterAccessToken    string `long:"twitter-access-token" env:"BELL_TWITTER_ACCESS_TOKEN" description:"Twitter/X OAuth1 access token"`
	TwitterAccessSecret   string `long:"twitter-access-secret" env:"BELL_TWITTER_ACCESS_SECRET" description:"Twitter/X OAuth1 access secret"`
}
