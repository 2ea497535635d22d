package httpapi

import (
	"errors"
	"testing"
	"time"

	"github.com/openpitch/pitchside/internal/domain/post"
	"github.com/openpitch/pitchside/internal/usecase"
)

func TestCursorRoundTrip(t *testing.T) {
	original := &post.Cursor{
		CreatedAt: time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC),
		ID:        "post-042",
	}

	token := encodeCursor(original)
	if token == "" {
		t.Fatalf("expected non-empty cursor token")
	}

	decoded, err := decodeCursor(token)
	if err != nil {
		t.Fatalf("decode cursor: %v", err)
	}
	if decoded == nil {
		t.Fatalf("expected decoded cursor")
	}
	if !decoded.CreatedAt.Equal(original.CreatedAt) || decoded.ID != original.ID {
		t.Fatalf("cursor round trip mismatch: got %+v want %+v", decoded, original)
	}
}

func TestDecodeCursor_EmptyToken(t *testing.T) {
	decoded, err := decodeCursor("")
	if err != nil {
		t.Fatalf("decode empty cursor: %v", err)
	}
	if decoded != nil {
		t.Fatalf("expected nil cursor for empty token, got %+v", decoded)
	}
}

func TestDecodeCursor_Malformed(t *testing.T) {
	tokens := []string{"not-base64!!!", "bm90IGpzb24", "e30"}
	for _, token := range tokens {
		if _, err := decodeCursor(token); !errors.Is(err, usecase.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for token %q, got %v", token, err)
		}
	}
}

func TestEncodeCursor_Nil(t *testing.T) {
	if got := encodeCursor(nil); got != "" {
		t.Fatalf("expected empty token for nil cursor, got %q", got)
	}
}
