//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slotbook/internal/infra/gateway"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zoomServer struct {
	*httptest.Server
	tokenCalls     int
	tokenExpiresIn int
	meetingStatus  int
	lastMeeting    map[string]any
}

func newZoomServer(t *testing.T) *zoomServer {
	t.Helper()
	zs := &zoomServer{meetingStatus: http.StatusCreated, tokenExpiresIn: 3600}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		zs.tokenCalls++
		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "token request must carry basic auth")
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "account_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "acct-1", r.PostForm.Get("account_id"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"token_type":   "bearer",
			"expires_in":   zs.tokenExpiresIn,
		})
	})
	mux.HandleFunc("/users/me/meetings", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&zs.lastMeeting))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(zs.meetingStatus)
		if zs.meetingStatus >= 300 {
			_ = json.NewEncoder(w).Encode(map[string]any{"code": 429, "message": "too many requests"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":         85123456789,
			"topic":      zs.lastMeeting["topic"],
			"start_time": "2026-09-07T10:00:00Z",
			"duration":   30,
			"join_url":   "https://zoom.example/j/85123456789",
		})
	})

	zs.Server = httptest.NewServer(mux)
	t.Cleanup(zs.Close)
	return zs
}

func zoomTestConfig(srv *zoomServer) config.ZoomConfig {
	return config.ZoomConfig{
		AccountID:    "acct-1",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		APIBaseURL:   srv.URL,
		TokenURL:     srv.URL + "/oauth/token",
		UserID:       "me",
	}
}

func TestZoomProvider_CreateResource(t *testing.T) {
	srv := newZoomServer(t)
	provider := gateway.NewZoomProvider(zoomTestConfig(srv))

	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	snap, err := provider.CreateResource(context.Background(), "Quarterly planning", start, 30*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, "85123456789", snap.ID)
	assert.Equal(t, "https://zoom.example/j/85123456789", snap.JoinURL)
	assert.True(t, snap.Start.Equal(start))
	assert.Equal(t, 30*time.Minute, snap.Duration)

	assert.Equal(t, "Quarterly planning", srv.lastMeeting["topic"])
	assert.Equal(t, float64(2), srv.lastMeeting["type"], "must request a scheduled meeting")
	assert.Equal(t, "2026-09-07T10:00:00Z", srv.lastMeeting["start_time"])
	assert.Equal(t, float64(30), srv.lastMeeting["duration"])
}

func TestZoomProvider_TokenIsReused(t *testing.T) {
	srv := newZoomServer(t)
	provider := gateway.NewZoomProvider(zoomTestConfig(srv))

	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	for range 3 {
		_, err := provider.CreateResource(context.Background(), "Standup", start, 15*time.Minute)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, srv.tokenCalls, "token must be fetched once and cached")
}

func TestZoomProvider_ShortLivedTokenIsStillCached(t *testing.T) {
	srv := newZoomServer(t)
	srv.tokenExpiresIn = 45
	provider := gateway.NewZoomProvider(zoomTestConfig(srv))

	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	for range 3 {
		_, err := provider.CreateResource(context.Background(), "Standup", start, 15*time.Minute)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, srv.tokenCalls, "early-expiry margin must not push a fresh token into the past")
}

func TestZoomProvider_CreateResourceUpstreamError(t *testing.T) {
	srv := newZoomServer(t)
	srv.meetingStatus = http.StatusTooManyRequests
	provider := gateway.NewZoomProvider(zoomTestConfig(srv))

	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	_, err := provider.CreateResource(context.Background(), "Standup", start, 15*time.Minute)

	require.Error(t, err)
	assert.True(t, errs.Is(err, gateway.ErrResourceCreation))
	assert.Contains(t, err.Error(), "429")
}
