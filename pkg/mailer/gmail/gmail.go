// Package gmail provides a mailer.Mailer backed by the Gmail API.
package gmail

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/mailer"
	"arbeit/pkg/serrors"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Options configures the Gmail sender.
type Options struct {
	// CredentialsJSON is the OAuth client secret file downloaded from the
	// Google console.
	CredentialsJSON []byte
	// RefreshToken is a long-lived token granted for the gmail.send scope.
	RefreshToken string
	// From is the sender address. It must belong to the authorized account.
	From string
}

// Client sends messages through users.messages.send.
type Client struct {
	service *gmail.Service
	from    string
}

var _ mailer.Mailer = (*Client)(nil)

// New builds a Client authorized with the stored refresh token.
func New(ctx context.Context, options Options) (*Client, error) {
	cfg, err := google.ConfigFromJSON(options.CredentialsJSON, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("could not parse gmail credentials: %w", err)
	}

	httpClient := cfg.Client(ctx, &oauth2.Token{RefreshToken: options.RefreshToken})

	return NewWithHTTPClient(ctx, httpClient, options.From)
}

// NewWithHTTPClient builds a Client on top of an already authorized client.
// Extra options such as a custom endpoint are passed to the Gmail service.
func NewWithHTTPClient(ctx context.Context,
	httpClient *http.Client,
	from string,
	opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)

	service, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create gmail service: %w", err)
	}

	return &Client{service: service, from: from}, nil
}

// Send delivers a plain text message.
func (c *Client) Send(ctx context.Context, email domain.Email) error {
	if strings.TrimSpace(email.To) == "" {
		return serrors.With(serrors.ErrBadRequest, "email recipient is required")
	}

	raw := base64.URLEncoding.EncodeToString([]byte(buildMessage(c.from, email)))
	_, err := c.service.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return serrors.Wrap(serrors.ErrRateLimited, err, "gmail rate limited")
		case apiErr.Code == http.StatusBadRequest:
			return serrors.Wrap(serrors.ErrBadRequest, err, "gmail rejected message")
		}
	}

	return fmt.Errorf("could not send email: %w", err)
}

// buildMessage renders an RFC 5322 message with a UTF-8 plain text body.
func buildMessage(from string, email domain.Email) string {
	var b strings.Builder
	if from != "" {
		b.WriteString("From: " + from + "\r\n")
	}
	b.WriteString("To: " + email.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", email.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(email.Body)

	return b.String()
}
