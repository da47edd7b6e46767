// Package token implements the signed, time-limited identity token used by
// the API. A token binds a subject (username) to its granted authorities for
// a configured lifetime; there is no server-side session or revocation state.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformed = errors.New("token malformed")
var ErrExpired = errors.New("token expired")

// Claims is the decoded content of a valid token.
type Claims struct {
	Subject     string
	Authorities []string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// Codec signs and verifies identity tokens with a process-wide HS256 key.
// The key and TTL are fixed at construction; a token signed with any other
// key decodes as malformed.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

const defaultTTL = 24 * time.Hour

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock overrides the codec's clock. Intended for tests.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	c.now = now
	return c
}

// Issue signs a token for the given subject carrying its authorities.
func (c *Codec) Issue(subject string, authorities []string) (string, error) {
	now := c.now().UTC()
	claims := jwt.MapClaims{
		"sub":         subject,
		"authorities": authorities,
		"iat":         now.Unix(),
		"exp":         now.Add(c.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies the signature and expiry of raw and returns its claims.
// Failures are ErrExpired when the embedded expiry has passed, ErrMalformed
// for everything else (bad signature, wrong algorithm, unparseable token,
// missing subject).
func (c *Codec) Decode(raw string) (*Claims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrMalformed
	}
	if !parsed.Valid {
		return nil, ErrMalformed
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrMalformed
	}

	out := &Claims{Subject: sub}
	if list, ok := claims["authorities"].([]interface{}); ok {
		for _, a := range list {
			if s, ok := a.(string); ok {
				out.Authorities = append(out.Authorities, s)
			}
		}
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
