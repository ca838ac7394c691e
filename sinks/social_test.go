package sinks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestSocial(server *httptest.Server) *Social {
	s := NewSocial("ck", "cs", "at", "as")
	s.httpClient = server.Client()
	s.now = func() time.Time { return time.Unix(1700000000, 0) }
	s.endpoint = server.URL
	return s
}

func TestSocialSkipsWithoutCredentials(t *testing.T) {
	amount := 1.0
	s := NewSocial("", "cs", "at", "as")
	outcome, err := s.Send(context.Background(), Message{Description: "x", Amount: &amount})
	require.NoError(t, err)
	require.Equal(t, OutcomeSkipped, outcome)
}

func TestSocialSkipsWithoutAmount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not be called")
	}))
	defer server.Close()

	s := newTestSocial(server)
	outcome, err := s.Send(context.Background(), Message{Description: "x"})
	require.NoError(t, err)
	require.Equal(t, OutcomeSkipped, outcome)
}

func TestSocialComposesStatusWithoutDuplicatingAmount(t *testing.T) {
	var status, auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		status = r.Form.Get("status")
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	amount := 5.0
	s := newTestSocial(server)
	outcome, err := s.Send(context.Background(), Message{
		Description: "deposit_sol: 5.00 SOL (sig123)",
		Amount:      &amount,
		Unit:        "SOL",
		Signature:   "sig123",
		ExplorerURL: server.URL,
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeSent, outcome)
	require.Contains(t, status, "deposit_sol: 5.00 SOL (sig123)")
	require.Equal(t, 1, strings.Count(status, "5.00"))
	require.True(t, strings.HasPrefix(auth, "OAuth "))
}

func TestSocialTruncatesOverlongStatus(t *testing.T) {
	amount := 5.0
	msg := Message{
		Description: strings.Repeat("alert ", 60),
		Amount:      &amount,
		Unit:        "SOL",
		Signature:   "5sampleSignature111111111111111111111111111111111111111111",
		ExplorerURL: "https://explorer.solana.com",
	}
	status := renderSocialStatus(msg)
	require.LessOrEqual(t, len(status), socialMaxLength)
	require.Contains(t, status, "5sampleS")
}
