package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mstoliarov/authgate/internal/common"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("super-secret"), 24*time.Hour)

	tok, err := codec.Issue(7, "a@b.com", "alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if tok == "" {
		t.Fatalf("empty token")
	}

	identity, err := codec.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	want := SlimUser{ID: 7, Email: "a@b.com", Username: "alice"}
	if *identity != want {
		t.Fatalf("identity mismatch: got %+v want %+v", *identity, want)
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("secret"), -1*time.Second)

	tok, err := codec.Issue(1, "a@b.com", "a")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = codec.Verify(tok)
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized for expired token, got %v", err)
	}
}

func TestTokenCodec_TamperedSignature(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("secret"), time.Hour)

	tok, err := codec.Issue(1, "a@b.com", "a")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// flip the last signature byte
	last := tok[len(tok)-1]
	flipped := byte('A')
	if last == flipped {
		flipped = 'B'
	}
	tampered := tok[:len(tok)-1] + string(flipped)

	_, err = codec.Verify(tampered)
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized for tampered token, got %v", err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenCodec([]byte("right-secret"), time.Hour)
	verifier := NewTokenCodec([]byte("wrong-secret"), time.Hour)

	tok, err := issuer.Issue(2, "b@c.com", "bob")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = verifier.Verify(tok)
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized for foreign signature, got %v", err)
	}
}

func TestTokenCodec_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("k"), time.Hour)

	for _, tok := range []string{"", "not.a.jwt", strings.Repeat("x", 64)} {
		if _, err := codec.Verify(tok); !errors.Is(err, common.ErrorUnauthorized) {
			t.Fatalf("token %q: expected common.ErrorUnauthorized, got %v", tok, err)
		}
	}
}
