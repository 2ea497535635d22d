package post

// Selector is a composable predicate over the posts table. Leaf selectors
// describe one filter dimension; Union combines per-entity predicates for
// the aggregate feeds. Every selector flows through the same ordering and
// pagination path, so composition never changes cursor semantics.
type Selector interface {
	isSelector()
}

// All matches every post.
type All struct{}

// ByAuthor matches posts authored by one user.
type ByAuthor struct {
	UserID string
}

// ByTeam matches posts authored by a player or the manager of the team,
// or referencing the team as home or away side.
type ByTeam struct {
	TeamID string
}

// ByLeague matches posts carrying the league reference.
type ByLeague struct {
	LeagueID string
}

// ByFollowed matches posts authored by someone the viewer follows.
type ByFollowed struct {
	ViewerID string
}

// Union matches posts satisfying any member selector. An empty union
// matches nothing.
type Union struct {
	Selectors []Selector
}

func (All) isSelector()        {}
func (ByAuthor) isSelector()   {}
func (ByTeam) isSelector()     {}
func (ByLeague) isSelector()   {}
func (ByFollowed) isSelector() {}
func (Union) isSelector()      {}
