package sinks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jito-foundation/bell/berr"
)

const discordEmbedColor = 3447003

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Color       int                 `json:"color"`
	Fields      []discordEmbedField `json:"fields"`
	Timestamp   string              `json:"timestamp"`
}

type discordPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

// Discord posts a JSON embed to a Discord webhook URL.
type Discord struct {
	WebhookURL string
	httpClient *http.Client
	now        func() time.Time
}

// NewDiscord builds a Discord sink. An empty webhook URL makes the sink a
// permanent no-op.
func NewDiscord(webhookURL string) *Discord {
	return &Discord{WebhookURL: webhookURL, httpClient: newHTTPClient(), now: time.Now}
}

func (d *Discord) Send(ctx context.Context, msg Message) (Outcome, error) {
	if d.WebhookURL == "" {
		return OutcomeSkipped, nil
	}
	if msg.Amount == nil {
		return OutcomeSkipped, nil
	}

	payload := discordPayload{Embeds: []discordEmbed{{
		Title:       "Jito Bell Alert",
		Description: msg.Description,
		Color:       discordEmbedColor,
		Fields: []discordEmbedField{
			{Name: "Amount", Value: fmt.Sprintf("%.2f %s", *msg.Amount, msg.Unit), Inline: true},
			{Name: "Transaction", Value: fmt.Sprintf("%s/tx/%s", msg.ExplorerURL, msg.Signature), Inline: true},
		},
		Timestamp: d.now().UTC().Format(time.RFC3339),
	}}}

	body, err := json.Marshal(payload)
	if err != nil {
		return OutcomeFailed, berr.New(berr.SinkHttp, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return OutcomeFailed, berr.New(berr.SinkHttp, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return OutcomeFailed, berr.New(berr.SinkHttp, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return OutcomeFailed, berr.Newf(berr.SinkHttp, "discord returned status %d", resp.StatusCode)
	}
	return OutcomeSent, nil
}
