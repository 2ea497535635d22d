package httpapi

import (
	"encoding/base64"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/openpitch/pitchside/internal/domain/post"
	"github.com/openpitch/pitchside/internal/usecase"
)

// wireCursor is the JSON shape inside the opaque cursor token. Clients
// must treat the token as a black box; the fields exist only so the
// server can round-trip the page boundary.
type wireCursor struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
}

func encodeCursor(c *post.Cursor) string {
	if c == nil {
		return ""
	}

	raw, err := sonic.Marshal(wireCursor{CreatedAt: c.CreatedAt, ID: c.ID})
	if err != nil {
		return ""
	}

	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(token string) (*post.Cursor, error) {
	if token == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed cursor: %v", usecase.ErrInvalidInput, err)
	}

	var wire wireCursor
	if err := sonic.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: malformed cursor: %v", usecase.ErrInvalidInput, err)
	}
	if wire.ID == "" || wire.CreatedAt.IsZero() {
		return nil, fmt.Errorf("%w: incomplete cursor", usecase.ErrInvalidInput)
	}

	return &post.Cursor{CreatedAt: wire.CreatedAt, ID: wire.ID}, nil
}
