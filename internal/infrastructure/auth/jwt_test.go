package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/megui/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests-only!",
		Expiration: time.Hour,
		Issuer:     "megui-backend",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Run("round-trips user claims", func(t *testing.T) {
		svc := testJWTService()
		userID := uuid.New()

		token, err := svc.GenerateToken(userID, "jperez")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "jperez", claims.Username)
		assert.Equal(t, "megui-backend", claims.Issuer)
		assert.False(t, claims.IsService())

		parsed, err := claims.GetUserUUID()
		require.NoError(t, err)
		assert.Equal(t, userID, parsed)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		svc := testJWTService()
		other := NewJWTService(config.JWTConfig{
			Secret:     "a-completely-different-secret-value!",
			Expiration: time.Hour,
			Issuer:     "megui-backend",
		})

		token, err := other.GenerateToken(uuid.New(), "jperez")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		svc := NewJWTService(config.JWTConfig{
			Secret:     "test-secret-key-for-unit-tests-only!",
			Expiration: -time.Minute,
			Issuer:     "megui-backend",
		})

		token, err := svc.GenerateToken(uuid.New(), "jperez")
		require.NoError(t, err)

		_, err = testJWTService().ValidateToken(token)
		assert.Equal(t, ErrExpiredToken, err)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		_, err := testJWTService().ValidateToken("not.a.token")
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("rejects unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			UserID: uuid.New().String(),
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = testJWTService().ValidateToken(signed)
		assert.Equal(t, ErrInvalidToken, err)
	})
}

func TestJWTService_GenerateServiceToken(t *testing.T) {
	svc := testJWTService()

	token, err := svc.GenerateServiceToken()
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsService())
	assert.Less(t, time.Until(claims.ExpiresAt.Time), 6*time.Minute)
}
