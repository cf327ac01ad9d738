package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"

	"golang.org/x/oauth2"
)

var ErrResourceCreation = errs.New("resource creation failed")

// ZoomProvider creates scheduled Zoom meetings through the server-to-server
// OAuth flow (account_credentials grant). Token caching and refresh are
// delegated to oauth2.ReuseTokenSource.
type ZoomProvider struct {
	httpClient *http.Client
	baseURL    string
	userID     string
}

func NewZoomProvider(cfg config.ZoomConfig) *ZoomProvider {
	ts := oauth2.ReuseTokenSource(nil, &zoomTokenSource{cfg: cfg, client: http.DefaultClient})
	return &ZoomProvider{
		httpClient: oauth2.NewClient(context.Background(), ts),
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		userID:     cfg.UserID,
	}
}

type meetingRequest struct {
	Topic     string          `json:"topic"`
	Type      int             `json:"type"`
	StartTime string          `json:"start_time"`
	Duration  int             `json:"duration"`
	Timezone  string          `json:"timezone,omitempty"`
	Settings  meetingSettings `json:"settings"`
}

type meetingSettings struct {
	HostVideo        bool `json:"host_video"`
	ParticipantVideo bool `json:"participant_video"`
	JoinBeforeHost   bool `json:"join_before_host"`
	MuteUponEntry    bool `json:"mute_upon_entry"`
	WaitingRoom      bool `json:"waiting_room"`
}

type meetingResponse struct {
	ID        int64  `json:"id"`
	Topic     string `json:"topic"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	JoinURL   string `json:"join_url"`
}

const meetingTypeScheduled = 2

func (p *ZoomProvider) CreateResource(ctx context.Context, topic string, start time.Time, duration time.Duration) (*commands.ResourceSnapshot, error) {
	reqBody := meetingRequest{
		Topic:     topic,
		Type:      meetingTypeScheduled,
		StartTime: start.UTC().Format("2006-01-02T15:04:05Z"),
		Duration:  int(duration.Minutes()),
		Timezone:  "UTC",
		Settings: meetingSettings{
			HostVideo:        true,
			ParticipantVideo: true,
			WaitingRoom:      true,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errs.Mark(err, ErrResourceCreation)
	}

	endpoint := fmt.Sprintf("%s/users/%s/meetings", p.baseURL, p.userID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Mark(err, ErrResourceCreation)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Mark(err, ErrResourceCreation)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errs.Mark(
			fmt.Errorf("zoom create meeting returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))),
			ErrResourceCreation,
		)
	}

	var body meetingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Mark(err, ErrResourceCreation)
	}

	confirmedStart := start
	if parsed, parseErr := time.Parse(time.RFC3339, body.StartTime); parseErr == nil {
		confirmedStart = parsed.In(start.Location())
	}
	confirmedDuration := duration
	if body.Duration > 0 {
		confirmedDuration = time.Duration(body.Duration) * time.Minute
	}

	return &commands.ResourceSnapshot{
		ID:       strconv.FormatInt(body.ID, 10),
		JoinURL:  body.JoinURL,
		Start:    confirmedStart,
		Duration: confirmedDuration,
	}, nil
}

// zoomTokenSource implements the account_credentials grant, which the stock
// clientcredentials config cannot express (it refuses grant_type overrides).
type zoomTokenSource struct {
	cfg    config.ZoomConfig
	client *http.Client
}

func (s *zoomTokenSource) Token() (*oauth2.Token, error) {
	form := url.Values{
		"grant_type": {"account_credentials"},
		"account_id": {s.cfg.AccountID},
	}

	req, err := http.NewRequest(http.MethodPost, s.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(s.cfg.ClientID, s.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("zoom token endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, err
	}

	// Expire a minute early so an in-flight request never carries a stale
	// token. Tokens too short-lived to afford the margin keep their full
	// lifetime instead of being treated as already expired.
	lifetime := time.Duration(tokenResp.ExpiresIn) * time.Second
	margin := time.Minute
	if lifetime <= margin {
		margin = 0
	}
	return &oauth2.Token{
		AccessToken: tokenResp.AccessToken,
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(lifetime - margin),
	}, nil
}
