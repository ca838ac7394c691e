package evaluator

import (
	"fmt"
	"strings"

	"github.com/jito-foundation/bell/config"
)

// renderTemplate substitutes {{description}}, {{amount}}, {{currency_unit}},
// {{tx_hash}} into the destination's template (or the default template).
func renderTemplate(cfg *config.Config, dest config.Destination, description string, amount *float64, unit, signature string) string {
	tmpl := cfg.Template(dest)

	amountStr := ""
	if amount != nil {
		amountStr = fmt.Sprintf("%.2f", *amount)
	}

	replacer := strings.NewReplacer(
		"{{description}}", description,
		"{{amount}}", amountStr,
		"{{currency_unit}}", unit,
		"{{tx_hash}}", signature,
	)
	return replacer.Replace(tmpl)
}
