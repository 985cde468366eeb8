package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"golang.org/x/crypto/bcrypt"
)

var (
	_ port.PasswordHasher = BcryptHasher{}
	_ port.TokenIssuer    = (*JWTIssuer)(nil)
)

var ErrEmptySecret = errors.New("jwt secret is empty")

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{cost}
}

func (h BcryptHasher) Hash(password string) (string, error) {
	const op = "BcryptHasher.Hash"

	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(b), nil
}

func (h BcryptHasher) Compare(hash, password string) error {
	const op = "BcryptHasher.Compare"

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// A JWTIssuer signs HS256 tokens carrying the user id and admin flag.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) (JWTIssuer, error) {
	const op = "NewJWTIssuer"

	if secret == "" {
		return JWTIssuer{}, fmt.Errorf("%s: %w", op, ErrEmptySecret)
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (i JWTIssuer) Issue(p domain.Principal) (string, error) {
	const op = "JWTIssuer.Issue"

	now := i.now()
	c := claims{
		Admin: p.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

func (i JWTIssuer) Parse(token string) (domain.Principal, error) {
	const op = "JWTIssuer.Parse"

	var c claims
	_, err := jwt.ParseWithClaims(
		token, &c,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%s: %w", op, err)
	}

	if c.Subject == "" {
		return domain.Principal{}, fmt.Errorf("%s: %w", op, jwt.ErrTokenInvalidSubject)
	}
	return domain.Principal{UserID: c.Subject, Admin: c.Admin}, nil
}
