package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/volunteer-hub/volunteer-hub-backend/internal/auth/domain"
)

// Authenticator validates a credential pair against a known principal.
type Authenticator interface {
	Authenticate(username, password string) (*domain.Principal, error)
}

// AdminAuthenticator checks credentials against the single configured admin.
// Failures never reveal whether the username or the password was wrong.
type AdminAuthenticator struct {
	username     string
	passwordHash string
}

func NewAdminAuthenticator(username, passwordHash string) *AdminAuthenticator {
	return &AdminAuthenticator{
		username:     username,
		passwordHash: passwordHash,
	}
}

func (a *AdminAuthenticator) Authenticate(username, password string) (*domain.Principal, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passwordOK := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil

	if !usernameOK || !passwordOK {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.Principal{ID: 1, Username: a.username}, nil
}
