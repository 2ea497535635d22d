package post

import (
	"fmt"
	"time"

	"github.com/openpitch/pitchside/internal/domain/user"
)

type Type string

const (
	TypeSocial     Type = "SOCIAL"
	TypeGameRecap  Type = "GAME_RECAP"
	TypeGameInvite Type = "GAME_INVITE"
)

// Post is a single feed entry. Game recaps denormalize the team
// references and final score so the feed renders without joins against
// the games table; SOCIAL posts carry none of those fields.
type Post struct {
	ID         string
	Content    string
	Type       Type
	UserID     string
	HomeTeamID *string
	AwayTeamID *string
	HomeScore  *int
	AwayScore  *int
	LeagueID   *string
	CreatedAt  time.Time
}

func (p Post) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("post id is required")
	}
	if p.UserID == "" {
		return fmt.Errorf("post author id is required")
	}
	switch p.Type {
	case TypeSocial:
		if p.HomeTeamID != nil || p.AwayTeamID != nil || p.HomeScore != nil || p.AwayScore != nil {
			return fmt.Errorf("social post must not carry game fields")
		}
	case TypeGameRecap:
		if p.HomeTeamID == nil || p.AwayTeamID == nil || p.HomeScore == nil || p.AwayScore == nil {
			return fmt.Errorf("game recap post requires both teams and both scores")
		}
	case TypeGameInvite:
		if p.HomeTeamID == nil || p.AwayTeamID == nil {
			return fmt.Errorf("game invite post requires both teams")
		}
	default:
		return fmt.Errorf("unknown post type %q", p.Type)
	}

	return nil
}

// FeedItem is a post annotated for the current viewer.
type FeedItem struct {
	Post      Post
	Author    user.Summary
	LikeCount int
	LikedByMe bool
}

// Cursor marks the first row of the next page in the strict
// (created_at DESC, id DESC) feed order.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// Page is one feed page. NextCursor is nil at end of stream.
type Page struct {
	Items      []FeedItem
	NextCursor *Cursor
}
