// Package config defines the Bell's declarative configuration model and
// loads it from a YAML document. The shape matches the nested,
// address-keyed instruction-rule form only; the legacy flat
// pool_mint/threshold shape seen in early revisions of the upstream project
// is deliberately rejected rather than migrated.
package config

// ProgramKind names one of the four programs the Bell understands.
type ProgramKind string

const (
	ProgramSplStakePool ProgramKind = "spl_stake_pool"
	ProgramJitoVault    ProgramKind = "jito_vault"
	ProgramToken2022    ProgramKind = "token_2022"
	ProgramJitoSteward  ProgramKind = "jito_steward"
)

// Destination names a chat/social sink. Credentials for each destination
// are supplied by the process environment, never by this config file.
type Destination string

const (
	DestTelegram       Destination = "telegram"
	DestDiscord        Destination = "discord"
	DestTwitter        Destination = "twitter"
	DestSlackBell      Destination = "slack_bell"
	DestSlackStakePool Destination = "slack_stake_pool"
)

// Notification is the payload rendered and sent once a ladder rung matches.
type Notification struct {
	Description  string        `yaml:"description"`
	Destinations []Destination `yaml:"destinations"`
}

// Threshold is one rung of a raw-amount ladder.
type Threshold struct {
	Value        float64      `yaml:"value"`
	Notification Notification `yaml:"notification"`
}

// UsdThreshold is one rung of a USD-equivalent ladder. The value is
// specified as an integer number of whole US dollars.
type UsdThreshold struct {
	Value        int64        `yaml:"value"`
	Notification Notification `yaml:"notification"`
}

// Alerts bundles both independent ladders attached to one address key.
type Alerts struct {
	Thresholds    []Threshold    `yaml:"thresholds"`
	UsdThresholds []UsdThreshold `yaml:"usd_thresholds"`
}

// InstructionRule is the nested, address-keyed rule shape. Exactly one of
// StakePools, Lsts, or Vrts is populated per instruction, depending on
// which positional account family that instruction variant correlates
// against.
type InstructionRule struct {
	StakePools map[string]Alerts `yaml:"stake_pools"`
	Lsts       map[string]Alerts `yaml:"lsts"`
	Vrts       map[string]Alerts `yaml:"vrts"`
}

// EventRule is one of two shapes: a threshold ladder (for events carrying a
// synthesizable amount, e.g. rebalance) or a simple always-fire rule (for
// events with no amount, e.g. state_transition).
type EventRule struct {
	Thresholds   []Threshold   `yaml:"thresholds"`
	Destinations []Destination `yaml:"destinations"`
	Description  string        `yaml:"description"`
}

// HasThresholds reports whether this rule is the threshold-ladder shape
// rather than the simple always-fire shape.
func (r EventRule) HasThresholds() bool {
	return len(r.Thresholds) > 0
}

// Program is the per-program-kind configuration: its on-chain program id
// plus the instruction and event rules keyed by canonical variant name
// (e.g. "deposit_stake", "rebalance").
type Program struct {
	ProgramID    string                     `yaml:"program_id"`
	Instructions map[string]InstructionRule `yaml:"instructions"`
	Events       map[string]EventRule       `yaml:"events"`
}

// Config is the root configuration document.
type Config struct {
	Programs          map[ProgramKind]Program `yaml:"programs"`
	ExplorerURL       string                   `yaml:"explorer_url"`
	MessageTemplates  map[string]string        `yaml:"message_templates"`
}

// Template returns the message template for destination, falling back to
// the mandatory "default" template.
func (c *Config) Template(dest Destination) string {
	if tmpl, ok := c.MessageTemplates[string(dest)]; ok {
		return tmpl
	}
	return c.MessageTemplates["default"]
}
