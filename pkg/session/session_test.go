package session_test

import (
	"testing"
	"time"

	"go-internship-backend/pkg/session"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndParse(t *testing.T) {
	m := session.NewManager("test-secret", time.Hour)

	token, err := m.Issue("user-1", "ava", "intern")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ava", claims.Username)
	assert.Equal(t, "intern", claims.Role)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := session.NewManager("test-secret", -time.Minute)

	token, err := m.Issue("user-1", "ava", "intern")
	assert.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	m := session.NewManager("test-secret", time.Hour)
	other := session.NewManager("another-secret", time.Hour)

	token, err := other.Issue("user-1", "ava", "intern")
	assert.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}
