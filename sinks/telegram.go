package sinks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jito-foundation/bell/berr"
)

const telegramAPIBase = "https://api.telegram.org"

// Telegram posts a form-encoded sendMessage call to the Telegram Bot API.
type Telegram struct {
	Token      string
	ChatID     string
	httpClient *http.Client
	apiBase    string
}

// NewTelegram builds a Telegram sink. An empty token or chat id makes the
// sink a permanent no-op, matching "absent credentials disable the sink".
func NewTelegram(token, chatID string) *Telegram {
	return &Telegram{Token: token, ChatID: chatID, httpClient: newHTTPClient(), apiBase: telegramAPIBase}
}

func (t *Telegram) Send(ctx context.Context, msg Message) (Outcome, error) {
	if t.Token == "" || t.ChatID == "" {
		return OutcomeSkipped, nil
	}

	form := url.Values{"chat_id": {t.ChatID}, "text": {msg.Description}}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return OutcomeFailed, berr.New(berr.SinkHttp, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return OutcomeFailed, berr.New(berr.SinkHttp, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return OutcomeFailed, berr.Newf(berr.SinkHttp, "telegram returned status %d", resp.StatusCode)
	}
	return OutcomeSent, nil
}
