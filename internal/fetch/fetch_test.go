package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv
}

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "secret" {
			http.Error(w, "Puzzle inputs differ by user.  Please log in to get your puzzle input.", http.StatusBadRequest)
			return
		}

		if r.URL.Path != "/2023/day/5/input" {
			http.NotFound(w, r)
			return
		}

		w.Write([]byte("seeds: 79 14 55 13\n"))
	})

	c, err := New(srv.URL+"/", 2023, "secret", WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/2023/day/5/input", c.URL(5))

	body, err := c.Fetch(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "seeds: 79 14 55 13\n", body)
}

func TestClient_FetchStatusError(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`<html><head><title>x</title><style>p{}</style></head>
<body><main><p>Please don't repeatedly request
this endpoint before it unlocks!</p></main></body></html>`))
	})

	c, err := New(srv.URL, 2023, "secret", WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), 25)

	var status *StatusError
	require.True(t, errors.As(err, &status))
	assert.Equal(t, http.StatusNotFound, status.Code)
	assert.Equal(t, "Please don't repeatedly request this endpoint before it unlocks!", status.Message)
	assert.Contains(t, err.Error(), "HTTP 404 Not Found")
}

func TestClient_FetchCanceled(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("late"))
	})

	c, err := New(srv.URL, 2023, "secret")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Fetch(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNew_NoSession(t *testing.T) {
	t.Parallel()

	_, err := New("https://adventofcode.com", 2023, "")
	require.ErrorIs(t, err, ErrNoSession)
}

func TestMessage_Truncates(t *testing.T) {
	t.Parallel()

	long := make([]byte, 500)
	for i := range long {
		long[i] = 'a'
	}

	got := message("text/plain", long)
	assert.Len(t, got, maxMessageLen+3)
}
