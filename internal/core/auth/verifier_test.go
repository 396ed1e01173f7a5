package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

func newTestVerifier(now time.Time) (*Verifier, *stubClock) {
	clock := &stubClock{now: now}
	return NewVerifier("test-signing-key", 24*time.Hour, clock), clock
}

func TestVerifier_IssueAndVerify(t *testing.T) {
	t.Parallel()

	v, _ := newTestVerifier(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	token, err := v.Issue(42, "jdoe")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	accountID, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}

	if accountID != 42 {
		t.Fatalf("expected subject 42, got %d", accountID)
	}
}

func TestVerifier_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	v, clock := newTestVerifier(issuedAt)

	token, err := v.Issue(42, "jdoe")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	clock.now = issuedAt.Add(25 * time.Hour)

	if _, err := v.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifier_RejectsTamperedToken(t *testing.T) {
	t.Parallel()

	v, _ := newTestVerifier(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	token, err := v.Issue(42, "jdoe")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// ペイロードの 1 文字を変更すると署名が一致しなくなる
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := v.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestVerifier_RejectsWrongKey(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewVerifier("other-signing-key", 24*time.Hour, &stubClock{now: now})
	v, _ := newTestVerifier(now)

	token, err := issuer.Issue(42, "jdoe")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := v.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong key, got %v", err)
	}
}

func TestVerifier_RejectsUnexpectedAlgorithm(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	v, _ := newTestVerifier(now)

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build alg=none token: %v", err)
	}

	if _, err := v.Verify(unsigned); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg=none token, got %v", err)
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("failed to build HS512 token: %v", err)
	}

	if _, err := v.Verify(hs512); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS512 token, got %v", err)
	}
}

func TestVerifier_RejectsNonNumericSubject(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	v, _ := newTestVerifier(now)

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-number",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}

	if _, err := v.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for non-numeric subject, got %v", err)
	}
}

func TestVerifier_RejectsMalformedToken(t *testing.T) {
	t.Parallel()

	v, _ := newTestVerifier(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := v.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}
