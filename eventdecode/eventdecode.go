// Package eventdecode implements the Bell's log-event decoder for the
// Jito Steward program: strip a known log-line prefix, base64-decode the
// remainder, match an 8-byte discriminator, and binary-decode the typed
// body. Decode failure at any step yields no event for that line; it never
// aborts processing of the rest of the transaction's log lines.
package eventdecode

import (
	"encoding/base64"
	"strings"
)

const (
	prefixProgramLog  = "Program log: "
	prefixProgramData = "Program data: "
)

// DecodeLogLine attempts to decode one log line into an Event. It returns
// (nil, false) whenever the line isn't a recognized event: wrong prefix,
// invalid base64, too short, unknown discriminator, or a malformed body
// for a matched discriminator.
func DecodeLogLine(line string) (Event, bool) {
	var encoded string
	switch {
	case strings.HasPrefix(line, prefixProgramLog):
		encoded = strings.TrimPrefix(line, prefixProgramLog)
	case strings.HasPrefix(line, prefixProgramData):
		encoded = strings.TrimPrefix(line, prefixProgramData)
	default:
		return nil, false
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) < 8 {
		return nil, false
	}

	var disc [8]byte
	copy(disc[:], raw[:8])
	body := raw[8:]

	switch disc {
	case discRebalance:
		return decodeRebalance(body)
	case discStateTransition:
		return decodeStateTransition(body)
	case discDirectedRebalance:
		return DirectedRebalance{Body: body}, true
	case discAutoAddValidator:
		return AutoAddValidator{Body: body}, true
	case discAutoRemoveValidator:
		return AutoRemoveValidator{Body: body}, true
	case discEpochMaintenance:
		return EpochMaintenance{Body: body}, true
	case discDecreaseComponents:
		return DecreaseComponents{Body: body}, true
	case discScoreComponents:
		return ScoreComponents{Body: body}, true
	case discInstantUnstakeComponents:
		return InstantUnstakeComponents{Body: body}, true
	default:
		return nil, false
	}
}
