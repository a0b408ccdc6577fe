package smtp

import (
	"net/smtp"
	"testing"
	"time"

	"github.com/go-api-selfservice/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailer_DisabledWithoutHost(t *testing.T) {
	assert.Nil(t, NewMailer(&config.Config{}))
}

func TestSendEmail_BuildsEnvelope(t *testing.T) {
	m := NewMailer(&config.Config{SMTPHost: "mail.local", SMTPPort: "1025", SMTPFrom: "noreply@example.com"}).(*mailer)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	var gotAuth smtp.Auth
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo, gotMsg = addr, a, from, to, msg
		return nil
	}

	require.NoError(t, m.SendEmail("alice@example.com", "Hello", "body text"))
	assert.Equal(t, "mail.local:1025", gotAddr)
	assert.Nil(t, gotAuth)
	assert.Equal(t, "noreply@example.com", gotFrom)
	assert.Equal(t, []string{"alice@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Hello\r\n")
	assert.Contains(t, string(gotMsg), "\r\n\r\nbody text")
}

func TestSendEmail_UsesAuthWhenConfigured(t *testing.T) {
	m := NewMailer(&config.Config{SMTPHost: "mail.local", SMTPPort: "587", SMTPUsername: "u", SMTPPassword: "p"}).(*mailer)

	var gotAuth smtp.Auth
	m.send = func(_ string, a smtp.Auth, _ string, _ []string, _ []byte) error {
		gotAuth = a
		return nil
	}

	require.NoError(t, m.SendEmail("alice@example.com", "s", "b"))
	assert.NotNil(t, gotAuth)
}

func TestBuildMessage_Headers(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	msg := string(buildMessage("a@x", "b@y", "Subj", "Body", now))

	assert.Contains(t, msg, "From: a@x\r\n")
	assert.Contains(t, msg, "To: b@y\r\n")
	assert.Contains(t, msg, "Date: Fri, 02 Jan 2026 03:04:05 +0000\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8\r\n")
}
