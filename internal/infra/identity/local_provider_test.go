package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signLocalToken(t *testing.T, secret, subject, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	if role != "" {
		claims["role"] = role
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestLocalProvider_VerifyTokenReturnsSubject(t *testing.T) {
	provider, err := NewLocalProvider("test-secret")
	require.NoError(t, err)

	token := signLocalToken(t, "test-secret", "user_1", "")

	userID, err := provider.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", userID)
}

func TestLocalProvider_RejectsWrongSecret(t *testing.T) {
	provider, err := NewLocalProvider("test-secret")
	require.NoError(t, err)

	token := signLocalToken(t, "other-secret", "user_1", "")

	_, err = provider.VerifyToken(context.Background(), token)
	require.Error(t, err)
}

func TestLocalProvider_SellerRoleFromClaim(t *testing.T) {
	provider, err := NewLocalProvider("test-secret")
	require.NoError(t, err)

	sellerToken := signLocalToken(t, "test-secret", "seller_1", "seller")
	buyerToken := signLocalToken(t, "test-secret", "user_1", "")

	_, err = provider.VerifyToken(context.Background(), sellerToken)
	require.NoError(t, err)
	_, err = provider.VerifyToken(context.Background(), buyerToken)
	require.NoError(t, err)

	isSeller, err := provider.IsSeller(context.Background(), "seller_1")
	require.NoError(t, err)
	assert.True(t, isSeller)

	isSeller, err = provider.IsSeller(context.Background(), "user_1")
	require.NoError(t, err)
	assert.False(t, isSeller)
}

func TestLocalProvider_UnknownSubjectIsNotSeller(t *testing.T) {
	provider, err := NewLocalProvider("test-secret")
	require.NoError(t, err)

	isSeller, err := provider.IsSeller(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.False(t, isSeller)
}

func TestNewLocalProvider_RequiresSecret(t *testing.T) {
	_, err := NewLocalProvider("")
	require.Error(t, err)
}
