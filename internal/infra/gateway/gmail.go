package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"

	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

var ErrNotificationSend = errs.New("notification send failed")

// GmailNotifier sends the confirmation message from the authenticated
// mailbox ("me" in Gmail API terms).
type GmailNotifier struct {
	svc *gmail.Service
}

func NewGmailNotifier(ctx context.Context, cfg config.GoogleConfig, opts ...option.ClientOption) (*GmailNotifier, error) {
	clientOpts := append(
		[]option.ClientOption{option.WithTokenSource(googleTokenSource(ctx, cfg))},
		opts...,
	)
	svc, err := gmail.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build gmail service")
	}
	return &GmailNotifier{svc: svc}, nil
}

func (n *GmailNotifier) Notify(ctx context.Context, recipient, subject, body string) error {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "To: %s\r\n", recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	raw := base64.URLEncoding.EncodeToString(msg.Bytes())
	_, err := n.svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return errs.Mark(err, ErrNotificationSend)
	}
	return nil
}
