package jwt

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access_token"
	TokenTypeRefresh = "refresh_token"
)

var (
	instance *JWT
	once     sync.Once

	ErrJWTNotInitialized = errors.New("jwt: instance not initialized")
	ErrInvalidToken      = errors.New("jwt: invalid token")
	ErrUnexpectedMethod  = errors.New("jwt: unexpected signing method")
)

// Claims carries the caller identity and role level. TokenType keeps refresh tokens out of access checks.
type Claims struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Level     string `json:"level"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type JWT struct {
	appName            string
	secretKey          []byte
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
	now                func() time.Time
}

func New(appName, secretKey string, accessExpiry, refreshExpiry time.Duration) *JWT {
	return &JWT{
		appName:            appName,
		secretKey:          []byte(secretKey),
		accessTokenExpiry:  accessExpiry,
		refreshTokenExpiry: refreshExpiry,
		now:                time.Now,
	}
}

// Initialize sets the process wide instance used by the HTTP middleware. Only the first call wins.
func Initialize(appName, secretKey string, accessExpiry, refreshExpiry time.Duration) *JWT {
	once.Do(func() {
		instance = New(appName, secretKey, accessExpiry, refreshExpiry)
	})

	return instance
}

func GetInstance() (*JWT, error) {
	if instance == nil {
		return nil, ErrJWTNotInitialized
	}

	return instance, nil
}

func (j *JWT) GenerateAccessToken(userID, email, level string) (string, error) {
	return j.generateToken(userID, email, level, j.accessTokenExpiry, TokenTypeAccess)
}

func (j *JWT) GenerateRefreshToken(userID, email, level string) (string, error) {
	return j.generateToken(userID, email, level, j.refreshTokenExpiry, TokenTypeRefresh)
}

// ValidateToken parses tokenString and checks that it is of the expected type.
func (j *JWT) ValidateToken(tokenString, tokenType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS512 {
			return nil, ErrUnexpectedMethod
		}

		return j.secretKey, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithIssuer(j.appName))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != tokenType {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (j *JWT) generateToken(userID, email, level string, expiry time.Duration, tokenType string) (string, error) {
	now := j.now()

	claims := &Claims{
		ID:        userID,
		Email:     email,
		Level:     level,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.appName,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signedString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}

	return signedString, nil
}
