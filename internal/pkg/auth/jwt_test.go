package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    exp,
		TokenIssuer: "portal-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	t.Run("user token round trip", func(t *testing.T) {
		token, expiresIn, err := svc.GenerateToken(42, "jdoe", "admin", nil, "")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 3600, expiresIn)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "jdoe", claims.Username)
		assert.Equal(t, "admin", claims.UserType)
		assert.Nil(t, claims.FacultyID)
	})

	t.Run("faculty token carries facultyId and name", func(t *testing.T) {
		facultyID := int64(7)
		token, _, err := svc.GenerateToken(7, "jane@sahyadri.edu.in", "faculty", &facultyID, "Jane Mathew")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "faculty", claims.UserType)
		require.NotNil(t, claims.FacultyID)
		assert.Equal(t, int64(7), *claims.FacultyID)
		assert.Equal(t, "Jane Mathew", claims.Name)
	})

	t.Run("unique token IDs", func(t *testing.T) {
		first, _, err := svc.GenerateToken(1, "a", "student", nil, "")
		require.NoError(t, err)
		second, _, err := svc.GenerateToken(1, "a", "student", nil, "")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestValidateToken_Errors(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	t.Run("expired token is reported as expired, not invalid", func(t *testing.T) {
		expiredSvc := newTestJWTService(-time.Minute)
		token, _, err := expiredSvc.GenerateToken(1, "jdoe", "admin", nil, "")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.NotErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := NewJWTService(JWTConfig{SecretKey: "another-secret", TokenExp: time.Hour})
		token, _, err := other.GenerateToken(1, "jdoe", "admin", nil, "")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer header", header: "Bearer abc123", want: "abc123"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc123", wantErr: true},
		{name: "no scheme", header: "abc123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
