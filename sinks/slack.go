package sinks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jito-foundation/bell/berr"
)

type slackTextBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type slackBlock struct {
	Type   string           `json:"type"`
	Text   *slackTextBlock  `json:"text,omitempty"`
	Fields []slackTextBlock `json:"fields,omitempty"`
}

type slackPayload struct {
	Blocks []slackBlock `json:"blocks"`
}

// SlackVariant distinguishes the Bell's two independently-configured
// Slack webhooks.
type SlackVariant int

const (
	// SlackBell is the general alert webhook; it includes an amount
	// field and requires one.
	SlackBell SlackVariant = iota
	// SlackStakePool is the stake-pool alerts webhook; it never
	// includes or requires an amount.
	SlackStakePool
)

// Slack posts a Slack Block Kit payload to one of the Bell's two webhooks.
type Slack struct {
	WebhookURL string
	Variant    SlackVariant
	httpClient *http.Client
}

// NewSlack builds a Slack sink for the given variant. An empty webhook URL
// makes the sink a permanent no-op.
func NewSlack(webhookURL string, variant SlackVariant) *Slack {
	return &Slack{WebhookURL: webhookURL, Variant: variant, httpClient: newHTTPClient()}
}

func (s *Slack) Send(ctx context.Context, msg Message) (Outcome, error) {
	if s.WebhookURL == "" {
		return OutcomeSkipped, nil
	}
	if s.Variant == SlackBell && msg.Amount == nil {
		return OutcomeSkipped, nil
	}

	blocks := []slackBlock{
		{Type: "header", Text: &slackTextBlock{Type: "plain_text", Text: "Jito Bell Alert"}},
		{Type: "section", Text: &slackTextBlock{Type: "mrkdwn", Text: msg.Description}},
	}

	fields := []slackTextBlock{
		{Type: "mrkdwn", Text: fmt.Sprintf("*Transaction:*\n%s/tx/%s", msg.ExplorerURL, msg.Signature)},
	}
	if s.Variant == SlackBell {
		fields = append([]slackTextBlock{
			{Type: "mrkdwn", Text: fmt.Sprintf("*Amount:*\n%.2f %s", *msg.Amount, msg.Unit)},
		}, fields...)
	}
	blocks = append(blocks, slackBlock{Type: "section", Fields: fields})

	payload := slackPayload{Blocks: blocks}
	body, err := json.Marshal(payload)
	if err != nil {
		return OutcomeFailed, berr.New(berr.SinkHttp, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return OutcomeFailed, berr.New(berr.SinkHttp, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return OutcomeFailed, berr.New(berr.SinkHttp, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return OutcomeFailed, berr.Newf(berr.SinkHttp, "slack returned status %d", resp.StatusCode)
	}
	return OutcomeSent, nil
}
