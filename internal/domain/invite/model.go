package invite

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusDeclined Status = "DECLINED"
	StatusCanceled Status = "CANCELED"
)

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	switch s {
	case StatusAccepted, StatusDeclined, StatusCanceled:
		return true
	default:
		return false
	}
}

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusAccepted, StatusDeclined, StatusCanceled:
		return Status(raw), nil
	default:
		return "", fmt.Errorf("unknown invite status %q", raw)
	}
}

// Invite is a request for a player to join a team. It starts PENDING and
// moves exactly once to ACCEPTED, DECLINED or CANCELED.
type Invite struct {
	ID        string
	TeamID    string
	PlayerID  string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
