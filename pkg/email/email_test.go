package email

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContactTemplatesOmitEmptyOptionals(t *testing.T) {
	view := ContactView{Name: "Ada", Email: "ada@example.com", Message: "Need help"}

	user, err := RenderContactUser(view)
	require.NoError(t, err)
	assert.Contains(t, user, "Thank you for contacting us, Ada!")
	assert.NotContains(t, user, "Service Interest")

	admin, err := RenderContactAdmin(view)
	require.NoError(t, err)
	assert.Contains(t, admin, "<strong>Email:</strong> ada@example.com")
	assert.NotContains(t, admin, "Phone:")
	assert.NotContains(t, admin, "Company:")
}

func TestRenderDoesNotReescape(t *testing.T) {
	view := ContactView{Name: "A &amp; B", Message: "&lt;b&gt;"}
	body, err := RenderContactAdmin(view)
	require.NoError(t, err)
	assert.Contains(t, body, "A &amp; B")
	assert.Contains(t, body, "&lt;b&gt;")
	assert.NotContains(t, body, "&amp;amp;")
}

func TestRenderBookingTemplates(t *testing.T) {
	view := BookingView{Name: "Ada", Email: "ada@example.com", PreferredDate: "Not specified", Company: "Acme"}

	user, err := RenderBookingUser(view)
	require.NoError(t, err)
	assert.Contains(t, user, "<strong>Preferred Date:</strong> Not specified")
	assert.Contains(t, user, "<strong>Company:</strong> Acme")
	assert.NotContains(t, user, "Additional Notes")

	admin, err := RenderBookingAdmin(view)
	require.NoError(t, err)
	assert.Contains(t, admin, "<strong>Preferred Date:</strong> Not specified")
}

func TestRenderWelcome(t *testing.T) {
	body, err := RenderWelcome()
	require.NoError(t, err)
	assert.Contains(t, body, "Welcome to Episolve!")
}

func TestNoopSenderReturnsID(t *testing.T) {
	s := NewNoopSender(slog.New(slog.NewTextHandler(io.Discard, nil)))
	res, err := s.Send(context.Background(), Message{To: []string{"a@example.com"}, Subject: "hi"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.MessageID, "noop-"))
}

func TestNoopSenderMasksRecipients(t *testing.T) {
	var buf strings.Builder
	s := NewNoopSender(slog.New(slog.NewJSONHandler(&buf, nil)))

	_, err := s.Send(context.Background(), Message{To: []string{"ada@example.com"}, Subject: "hi"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "a***@example.com")
	assert.NotContains(t, buf.String(), "ada@example.com")
}

func TestResendSenderPostsEmail(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/emails"))
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer srv.Close()

	sender, err := NewResendSender("re_test", 5*time.Second).WithBaseURL(srv.URL + "/")
	require.NoError(t, err)

	res, err := sender.Send(context.Background(), Message{
		From:    "Episolve <onboarding@resend.dev>",
		To:      []string{"ada@example.com"},
		Subject: "Hello",
		HTML:    "<p>Hi</p>",
		ReplyTo: "reply@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg_123", res.MessageID)
	assert.Equal(t, "Hello", got["subject"])
	assert.Equal(t, "<p>Hi</p>", got["html"])
}

func TestResendSenderRequiresRecipient(t *testing.T) {
	_, err := NewResendSender("re_test", time.Second).Send(context.Background(), Message{Subject: "x"})
	assert.Error(t, err)
}

func TestResendSenderSurfacesProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid to field"}`))
	}))
	defer srv.Close()

	sender, err := NewResendSender("re_test", 5*time.Second).WithBaseURL(srv.URL + "/")
	require.NoError(t, err)

	_, err = sender.Send(context.Background(), Message{To: []string{"x"}, Subject: "x"})
	assert.Error(t, err)
}
