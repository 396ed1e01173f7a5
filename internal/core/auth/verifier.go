package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "hr-selfservice"

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

type tokenClaims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Verifier は共有鍵による HS256 JWT の発行と検証を行います。
// 状態を持たず、検証結果は (トークン, 鍵, 現在時刻) のみで決まります。
type Verifier struct {
	secret []byte
	ttl    time.Duration
	clock  Clock
}

// NewVerifier は Verifier を生成します。clock が nil の場合は実時刻を使用します。
func NewVerifier(secret string, ttl time.Duration, clock Clock) *Verifier {
	if clock == nil {
		clock = realClock{}
	}
	return &Verifier{secret: []byte(secret), ttl: ttl, clock: clock}
}

// Issue はアカウント ID をサブジェクトとするトークンを発行します。
func (v *Verifier) Issue(accountID int64, username string) (string, error) {
	now := v.clock.Now()
	claims := tokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Verify はトークンを検証し、サブジェクトのアカウント ID を返します。
// 失敗理由は ErrInvalidToken に集約されます。
func (v *Verifier) Verify(tokenString string) (int64, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.clock.Now),
	)
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return 0, ErrInvalidToken
	}

	return accountID, nil
}
