package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantMsg string
	}{
		{"valid", "a@b.com", ""},
		{"valid with subdomain", "user@mail.example.org", ""},
		{"empty", "", "Email is required"},
		{"no at sign", "not-an-email", "Invalid email format"},
		{"no dot after at", "user@localhost", "Invalid email format"},
		{"embedded whitespace", "a b@c.com", "Invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantMsg, ve.Message)
			assert.Equal(t, "email", ve.Field)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		valid        bool
		wantMsg      string
		wantStrength int
	}{
		{"valid minimum", "Abcdefg1", true, "", 4},
		{"valid with special", "Abcdefg1!", true, "", 5},
		{"empty", "", false, "Password is required", 0},
		{"too short", "abc", false, "Password must be at least 8 characters", 0},
		{"no uppercase", "alllowercase1", false, "Password must contain uppercase and lowercase letters", 3},
		{"no lowercase", "ALLUPPERCASE1", false, "Password must contain uppercase and lowercase letters", 3},
		{"no digit", "Abcdefghij", false, "Password must contain at least one number", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := ValidatePassword(tt.password)
			assert.Equal(t, tt.valid, check.Valid)
			assert.Equal(t, tt.wantMsg, check.Message)
			assert.Equal(t, tt.wantStrength, check.Strength)
		})
	}
}

func TestValidPasswordStrengthAtLeastFour(t *testing.T) {
	check := ValidatePassword("Abcdefg1")
	require.True(t, check.Valid)
	assert.GreaterOrEqual(t, check.Strength, 4)
}

func TestStrengthLabel(t *testing.T) {
	assert.Equal(t, "", StrengthLabel(0))
	assert.Equal(t, "Weak", StrengthLabel(1))
	assert.Equal(t, "Weak", StrengthLabel(2))
	assert.Equal(t, "Fair", StrengthLabel(3))
	assert.Equal(t, "Good", StrengthLabel(4))
	assert.Equal(t, "Strong", StrengthLabel(5))
}
