package contact

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageValidate(t *testing.T) {
	tests := []struct {
		name      string
		msg       Message
		wantError bool
	}{
		{name: "valid", msg: Message{Name: "Ana", Email: "ana@example.com", Body: "Hi"}},
		{name: "missing name", msg: Message{Email: "ana@example.com", Body: "Hi"}, wantError: true},
		{name: "bad email", msg: Message{Name: "Ana", Email: "ana", Body: "Hi"}, wantError: true},
		{name: "empty body", msg: Message{Name: "Ana", Email: "ana@example.com", Body: "  "}, wantError: true},
		{name: "header injection", msg: Message{Name: "Ana\r\nBcc: x@example.com", Email: "ana@example.com", Body: "Hi"}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSend(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	m := &SMTPMailer{
		Host: "smtp.example.com",
		Port: "587",
		User: "site@example.com",
		Pass: "secret",
		To:   "owner@example.com",
		SendMail: func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		},
	}

	err := m.Send(context.Background(), Message{Name: "Ana", Email: "ana@example.com", Body: "Let's talk"})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "site@example.com", gotFrom)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
	raw := string(gotMsg)
	assert.True(t, strings.HasPrefix(raw, "To: owner@example.com\r\n"))
	assert.Contains(t, raw, "Subject: Portfolio Contact: Ana\r\n")
	assert.Contains(t, raw, "Reply-To: ana@example.com\r\n")
	assert.Contains(t, raw, "Let's talk")
}

func TestSendDefaultsRecipientToUser(t *testing.T) {
	var gotTo []string
	m := &SMTPMailer{
		Host: "smtp.example.com", Port: "587", User: "site@example.com", Pass: "secret",
		SendMail: func(_ string, _ smtp.Auth, _ string, to []string, _ []byte) error {
			gotTo = to
			return nil
		},
	}
	require.NoError(t, m.Send(context.Background(), Message{Name: "Ana", Email: "ana@example.com", Body: "Hi"}))
	assert.Equal(t, []string{"site@example.com"}, gotTo)
}

func TestSendErrors(t *testing.T) {
	valid := Message{Name: "Ana", Email: "ana@example.com", Body: "Hi"}

	unconfigured := &SMTPMailer{Host: "smtp.example.com", Port: "587"}
	assert.ErrorIs(t, unconfigured.Send(context.Background(), valid), ErrNotConfigured)

	failing := &SMTPMailer{
		Host: "smtp.example.com", Port: "587", User: "u", Pass: "p",
		SendMail: func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("connection refused")
		},
	}
	err := failing.Send(context.Background(), valid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, failing.Send(ctx, valid), context.Canceled)
}
