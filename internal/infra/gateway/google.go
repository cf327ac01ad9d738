package gateway

import (
	"context"

	"slotbook/internal/pkg/config"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	gmail "google.golang.org/api/gmail/v1"
)

// googleTokenSource exchanges the long-lived refresh token for access tokens.
// Acquisition of the refresh token itself (consent flow) happens outside this
// service.
func googleTokenSource(ctx context.Context, cfg config.GoogleConfig) oauth2.TokenSource {
	oc := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: cfg.TokenURL,
		},
		Scopes: []string{calendar.CalendarScope, gmail.GmailSendScope},
	}
	return oc.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
}
