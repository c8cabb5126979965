package gmail_test

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/mailer/gmail"
	"arbeit/pkg/serrors"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *gmail.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := gmail.NewWithHTTPClient(context.Background(), srv.Client(), "noreply@arbeit.test",
		option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	return c
}

func TestClient_Send_success(t *testing.T) {
	var raw string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.True(t, strings.HasSuffix(r.URL.Path, "/users/me/messages/send"), r.URL.Path)

		var msg struct {
			Raw string `json:"raw"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		raw = msg.Raw

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"m-1"}`))
	})

	err := c.Send(context.Background(), domain.Email{
		To:      "hr@acme.test",
		Subject: "Your verification code",
		Body:    "Code: 123456",
	})
	require.NoError(t, err)

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	require.Contains(t, string(decoded), "From: noreply@arbeit.test\r\n")
	require.Contains(t, string(decoded), "To: hr@acme.test\r\n")
	require.True(t, strings.HasSuffix(string(decoded), "\r\n\r\nCode: 123456"))
}

func TestClient_Send_errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   serrors.Kind
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, kind: serrors.ErrRateLimited},
		{name: "bad request", status: http.StatusBadRequest, kind: serrors.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = fmt.Fprintf(w, `{"error":{"code":%d,"message":"nope"}}`, tt.status)
			})

			err := c.Send(context.Background(), domain.Email{To: "a@b.test", Subject: "s", Body: "b"})
			require.ErrorIs(t, err, tt.kind)
		})
	}

	t.Run("missing recipient", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			t.Fatal("must not call the api")
		})

		err := c.Send(context.Background(), domain.Email{Subject: "s"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}
