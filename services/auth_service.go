package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"immat-api/models"
)

// UserStore looks up accounts by login.
type UserStore interface {
	FindByLogin(ctx context.Context, login string) (*models.User, error)
}

type AuthService struct {
	users     UserStore
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(users UserStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// Claims carried by the session token.
type Claims struct {
	Nom   string `json:"nom"`
	Login string `json:"login"`
	Droit string `json:"droit"`
	jwt.RegisteredClaims
}

// Login checks the password against the stored bcrypt hash and issues a
// signed token. Unknown login and wrong password fail the same way.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, *models.User, error) {
	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			loginAttempts.WithLabelValues("rejected").Inc()
			return "", nil, ErrInvalidCredentials
		}
		loginAttempts.WithLabelValues("error").Inc()
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		loginAttempts.WithLabelValues("rejected").Inc()
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		loginAttempts.WithLabelValues("error").Inc()
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	loginAttempts.WithLabelValues("accepted").Inc()
	return token, user, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := s.now()
	claims := Claims{
		Nom:   user.Nom,
		Login: user.Login,
		Droit: user.Droit,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Nom,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseToken validates signature and expiry and returns the claims.
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}
