package config

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/jito-foundation/bell/belllog"
	"github.com/jito-foundation/bell/berr"
)

var log = belllog.NewSubsystemLogger("CONF")

// hardCodedProgramIDs is the authoritative program id for each ProgramKind.
// A config entry whose program_id disagrees is rejected at load time.
var hardCodedProgramIDs = map[ProgramKind]string{
	ProgramSplStakePool: "SPoo1Ku8WFXoNDMHPsrGSTSG1Y47rzgn41SLUNakuHy",
	ProgramJitoVault:    "Vau1t6sLNxnzB7ZDsef8TLbPLfyZMYXH8WTNqUdm9g8",
	ProgramToken2022:    "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb",
	ProgramJitoSteward:  "Stewardf95sJbmtcZsyagb2dg4Mo8eVQho8gpECvLx8",
}

// legacyRule is a raw decode target used only to detect the legacy flat
// instruction-rule shape (single pool_mint/threshold fields) so Load can
// reject it loudly instead of silently ignoring it.
type legacyRule struct {
	PoolMint  *string `yaml:"pool_mint"`
	Threshold *string `yaml:"threshold"`
}

// Load reads and validates a Config document from path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, berr.New(berr.Io, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, berr.New(berr.Config, err)
	}

	if err := rejectLegacyShape(raw); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	logSummary(&cfg)
	return &cfg, nil
}

// rejectLegacyShape decodes the raw document a second time into the legacy
// shape's field names. If any instruction rule carries pool_mint or
// threshold directly (rather than nested under stake_pools/lsts/vrts), the
// document is the unsupported legacy form.
func rejectLegacyShape(raw []byte) error {
	var doc struct {
		Programs map[string]struct {
			Instructions map[string]legacyRule `yaml:"instructions"`
		} `yaml:"programs"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		// Already validated above; a failure here just means the
		// document doesn't even parse against this looser shape,
		// which is fine.
		return nil
	}
	for programName, program := range doc.Programs {
		for ixName, rule := range program.Instructions {
			if rule.PoolMint != nil || rule.Threshold != nil {
				return berr.Newf(berr.Config,
					"program %s instruction %s uses the unsupported legacy flat rule shape (pool_mint/threshold); use stake_pools/lsts/vrts",
					programName, ixName)
			}
		}
	}
	return nil
}

func validate(cfg *Config) error {
	for kind, program := range cfg.Programs {
		wantID, known := hardCodedProgramIDs[kind]
		if !known {
			return berr.Newf(berr.Config, "unknown program kind %q", kind)
		}
		if program.ProgramID == "" {
			return berr.Newf(berr.Config, "program %s missing program_id", kind)
		}
		if program.ProgramID != wantID {
			return berr.Newf(berr.Config,
				"program %s program_id %q does not match expected %q",
				kind, program.ProgramID, wantID)
		}
	}
	if _, ok := cfg.MessageTemplates["default"]; !ok {
		return berr.Newf(berr.Config, "message_templates must include a \"default\" entry")
	}
	return nil
}

// logSummary prints a human-readable startup table of the loaded
// configuration's shape. Sink credentials never appear here; they are not
// part of this document.
func logSummary(cfg *Config) {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Program", "Instructions", "Events"})
	for kind, program := range cfg.Programs {
		t.AppendRow(table.Row{kind, len(program.Instructions), len(program.Events)})
	}
	log.Infof("loaded configuration:\n%s", t.Render())
}
