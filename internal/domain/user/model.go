package user

import "time"

// User is a registered account. Profile data comes from the identity
// provider at sign-up; this service only stores the social projection.
type User struct {
	ID        string
	Name      string
	Image     string
	CreatedAt time.Time
}

// Summary is the compact author representation embedded in feed items,
// rosters and invite listings.
type Summary struct {
	ID    string
	Name  string
	Image string
}

// Principal identifies the authenticated viewer as verified by the
// Passport introspection endpoint.
type Principal struct {
	UserID string
	Email  string
}

// Profile is a user together with their follow-graph counters, annotated
// for the current viewer.
type Profile struct {
	User           User
	FollowerCount  int
	FollowingCount int
	FollowedByMe   bool
}

func (u User) Summary() Summary {
	return Summary{ID: u.ID, Name: u.Name, Image: u.Image}
}
