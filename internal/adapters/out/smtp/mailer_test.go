package smtp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	t.Run("should prefix subject with product name", func(t *testing.T) {
		msg := buildMessage(
			"noreply@wroom.example",
			"jan@example.com",
			"Your account has been blocked",
			"Contact support for details.",
		)

		assert.Contains(t, msg, "Subject: Wroom: Your account has been blocked\r\n")
	})

	t.Run("should separate headers from body with blank line", func(t *testing.T) {
		msg := buildMessage("noreply@wroom.example", "jan@example.com", "Hello", "Body text")

		headers, body, found := strings.Cut(msg, "\r\n\r\n")
		assert.True(t, found)
		assert.Contains(t, headers, "From: noreply@wroom.example")
		assert.Contains(t, headers, "To: jan@example.com")
		assert.Contains(t, headers, `Content-Type: text/plain; charset="utf-8"`)
		assert.Equal(t, "Body text", body)
	})

	t.Run("should use CRLF line endings throughout", func(t *testing.T) {
		msg := buildMessage("noreply@wroom.example", "jan@example.com", "Hello", "Body text")

		assert.NotContains(t, strings.ReplaceAll(msg, "\r\n", ""), "\n")
	})
}

func TestMailerSend_CanceledContext(t *testing.T) {
	mailer := NewMailer("localhost", 2525, "", "", "noreply@wroom.example")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mailer.Send(ctx, "jan@example.com", "Hello", "Body text")
	assert.ErrorIs(t, err, context.Canceled)
}
