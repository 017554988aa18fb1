package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/tracktainment/duxmanager/internal/auth/domain"
	apperrors "github.com/tracktainment/duxmanager/internal/errors"
)

// JWTService verifies and issues HS256 tokens whose subject is a digital user id.
type JWTService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// Verify parses rawToken, checks its HMAC signature, expiry and (when configured) issuer.
func (s *JWTService) Verify(rawToken string) (*authDomain.Caller, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, apperrors.Wrap(authDomain.ErrInvalidToken, err.Error())
	}
	if !token.Valid || claims.Subject == "" {
		return nil, authDomain.ErrInvalidToken
	}

	return &authDomain.Caller{Subject: claims.Subject}, nil
}

// Issue signs a token for subject valid for ttl.
func (s *JWTService) Issue(subject string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// NewJWTService creates a JWTService. An empty issuer disables the issuer check.
func NewJWTService(secret, issuer string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}
