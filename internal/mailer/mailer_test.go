package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todotask/backend/internal/config"
)

func TestEnabled(t *testing.T) {
	t.Parallel()

	assert.False(t, New(config.Config{}).Enabled())
	assert.False(t, New(config.Config{SMTPFrom: "a@x.com"}).Enabled())
	assert.True(t, New(config.Config{SMTPFrom: "a@x.com", SMTPPass: "secret"}).Enabled())
}

func TestSend_DisabledIsNoop(t *testing.T) {
	t.Parallel()

	m := New(config.Config{})
	require.NoError(t, m.Send("a@x.com", "subject", "body"))
	require.NoError(t, m.SendOTP("a@x.com", "123456"))
}
