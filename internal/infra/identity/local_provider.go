package identity

import (
	"context"
	"sync"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// localProvider implements IdentityProvider with locally signed HMAC tokens.
// Development only: it lets the storefront run without a Firebase project.
// There is no account directory behind it, so the role travels inside the
// token as a "role" claim and is remembered per subject after verification.
type localProvider struct {
	secret []byte

	mu    sync.RWMutex
	roles map[string]string
}

// NewLocalProvider creates an HMAC-token identity provider for development.
func NewLocalProvider(secret string) (service.IdentityProvider, error) {
	if secret == "" {
		return nil, errors.New("local identity secret must be provided")
	}

	return &localProvider{
		secret: []byte(secret),
		roles:  make(map[string]string),
	}, nil
}

// VerifyToken validates a locally signed token and returns its subject.
func (p *localProvider) VerifyToken(_ context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return p.secret, nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to parse token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.New("token is missing subject")
	}

	if role, ok := claims["role"].(string); ok {
		p.mu.Lock()
		p.roles[subject] = role
		p.mu.Unlock()
	}

	return subject, nil
}

// IsSeller reports whether the last verified token for this subject carried
// the seller role.
func (p *localProvider) IsSeller(_ context.Context, userID string) (bool, error) {
	p.mu.RLock()
	role := p.roles[userID]
	p.mu.RUnlock()

	return role == constants.SellerRole, nil
}
