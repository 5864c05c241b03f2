package telegram

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBotSender_TimesOutOnStalledAPI(t *testing.T) {
	release := make(chan struct{})
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer api.Close()
	defer close(release)

	start := time.Now()
	_, err := newBotSender("token", api.URL+"/bot%s/%s", 100*time.Millisecond)

	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewBotSender_ConnectsThroughEndpoint(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottoken/getMe", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"kitchen","username":"kitchen_bot"}}`))
	}))
	defer api.Close()

	bot, err := newBotSender("token", api.URL+"/bot%s/%s", time.Second)

	require.NoError(t, err)
	assert.Equal(t, "kitchen_bot", bot.Self.UserName)
}
