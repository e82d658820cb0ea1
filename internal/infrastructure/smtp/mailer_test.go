package smtp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vrentals-api/internal/config"
)

func TestBuildMessage_Headers(t *testing.T) {
	msg := string(buildMessage("noreply@vrentals.app", "a@x.com", "Password Reset OTP - V.Rentals", "Your OTP is 123456"))

	head, body, found := strings.Cut(msg, "\r\n\r\n")
	assert.True(t, found)
	assert.Contains(t, head, "From: noreply@vrentals.app")
	assert.Contains(t, head, "To: a@x.com")
	assert.Contains(t, head, "Subject: Password Reset OTP - V.Rentals")
	assert.Contains(t, head, "Content-Type: text/plain")
	assert.Equal(t, "Your OTP is 123456", body)
}

func TestSendEmail_CancelledContext(t *testing.T) {
	m := NewMailer(&config.Config{SMTPHost: "localhost", SMTPPort: "1"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.SendEmail(ctx, "a@x.com", "s", "b"), context.Canceled)
}
