package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/peladahub/api-server/pkg/kvstore"
)

// Whitelist key for issued admin tokens. A single shared admin credential,
// multiple browsers allowed.
const sessionKey = "session_tokens"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

type Service struct {
	KV           kvstore.KVStore
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
}

func New(kv kvstore.KVStore, passwordHash string, secret string, ttl time.Duration) *Service {
	return &Service{
		KV:           kv,
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		ttl:          ttl,
	}
}

// TTL is the validity window issued tokens get.
func (a *Service) TTL() time.Duration {
	return a.ttl
}

// Login checks the shared admin password and issues a whitelisted token.
func (a *Service) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := a.GenerateToken()
	if err != nil {
		return "", err
	}
	if err := a.KV.RPush(sessionKey, token); err != nil {
		return "", err
	}
	return token, nil
}

func (a *Service) GenerateToken() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(a.ttl).Unix(),
	})
	return token.SignedString(a.secret)
}

// ValidateToken rejects missing, expired or tampered tokens, and anything
// not currently whitelisted (ie. revoked by logout).
func (a *Service) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	if !a.isWhitelisted(tokenString) {
		return ErrInvalidToken
	}
	return nil
}

func (a *Service) isWhitelisted(tokenString string) bool {
	tokens, err := a.KV.LRange(sessionKey, 0, -1)
	if err != nil {
		return false
	}
	for _, t := range tokens {
		if t == tokenString {
			return true
		}
	}
	return false
}

// RevokeToken drops the token from the whitelist. Even if someone keeps a
// copy it stops working here.
func (a *Service) RevokeToken(tokenString string) error {
	return a.KV.LRem(sessionKey, 1, tokenString)
}
