package sinks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscordSkipsWithoutAmount(t *testing.T) {
	d := NewDiscord("https://example.invalid/webhook")
	outcome, err := d.Send(context.Background(), Message{Description: "no amount here"})
	require.NoError(t, err)
	require.Equal(t, OutcomeSkipped, outcome)
}

func TestDiscordSkipsWithoutWebhook(t *testing.T) {
	amount := 1.0
	d := NewDiscord("")
	outcome, err := d.Send(context.Background(), Message{Description: "x", Amount: &amount})
	require.NoError(t, err)
	require.Equal(t, OutcomeSkipped, outcome)
}

func TestDiscordPostsEmbedWithAmountField(t *testing.T) {
	var payload discordPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	amount := 5.0
	d := NewDiscord(server.URL)
	d.httpClient = server.Client()

	outcome, err := d.Send(context.Background(), Message{
		Description: "deposit_sol: 5.00 SOL (sig123)",
		Amount:      &amount,
		Unit:        "SOL",
		Signature:   "sig123",
		ExplorerURL: "https://explorer.solana.com",
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeSent, outcome)
	require.Len(t, payload.Embeds, 1)
	require.Equal(t, "deposit_sol: 5.00 SOL (sig123)", payload.Embeds[0].Description)
	require.Equal(t, "Amount", payload.Embeds[0].Fields[0].Name)
	require.Equal(t, "5.00 SOL", payload.Embeds[0].Fields[0].Value)
}

func TestDiscordFailsOnNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	amount := 5.0
	d := NewDiscord(server.URL)
	d.httpClient = server.Client()

	outcome, err := d.Send(context.Background(), Message{Description: "x", Amount: &amount})
	require.Error(t, err)
	require.Equal(t, OutcomeFailed, outcome)
}
