package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPassword(t *testing.T) {
	p, err := NewPassword("Sequence1")
	require.NoError(t, err)
	assert.Equal(t, "Sequence1", p.String())
}

func TestNewPasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"too short", "Ab1", MsgPasswordTooShort},
		{"no uppercase", "sequence1", MsgPasswordNoUppercase},
		{"no lowercase", "SEQUENCE1", MsgPasswordNoLowercase},
		{"no digit", "SequenceX", MsgPasswordNoDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPassword(tt.password)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestNewPasswordBcryptLimit(t *testing.T) {
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	long[0] = 'A'
	long[1] = '1'

	_, err := NewPassword(string(long))
	require.Error(t, err)
	assert.Equal(t, MsgPasswordTooLong, err.Error())
}

func TestNewEmail(t *testing.T) {
	e, err := NewEmail("  Buyer@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", e.String())
	assert.Equal(t, "example.com", e.Domain())

	_, err = NewEmail("not-an-email")
	assert.Error(t, err)

	_, err = NewEmail("")
	assert.Error(t, err)
}
