package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResetCode_ExpiredAt(t *testing.T) {
	created := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := &ResetCode{CreatedAt: created, ExpiresAt: created.Add(10 * time.Minute)}

	assert.False(t, c.ExpiredAt(created))
	assert.False(t, c.ExpiredAt(created.Add(9*time.Minute+59*time.Second)))
	assert.True(t, c.ExpiredAt(created.Add(10*time.Minute)))
	assert.True(t, c.ExpiredAt(created.Add(time.Hour)))
}
