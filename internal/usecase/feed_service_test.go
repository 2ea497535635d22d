package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/openpitch/pitchside/internal/domain/post"
	"github.com/openpitch/pitchside/internal/infrastructure/repository/memory"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

type sequenceIDGenerator struct {
	prefix string
	next   int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%03d", g.prefix, g.next), nil
}

type feedFixture struct {
	users   *memory.UserRepository
	teams   *memory.TeamRepository
	leagues *memory.LeagueRepository
	posts   *memory.PostRepository
	service *FeedService
}

func newFeedFixture() feedFixture {
	users := memory.NewUserRepository(memory.SeedUsers())
	teams := memory.NewTeamRepository(users, memory.SeedTeams())
	leagues := memory.NewLeagueRepository(memory.SeedLeagues())
	posts := memory.NewPostRepository(users, teams, nil)

	return feedFixture{
		users:   users,
		teams:   teams,
		leagues: leagues,
		posts:   posts,
		service: NewFeedService(posts, teams, leagues),
	}
}

func socialPost(id, authorID string, createdAt time.Time) post.Post {
	return post.Post{
		ID:        id,
		Content:   "post " + id,
		Type:      post.TypeSocial,
		UserID:    authorID,
		CreatedAt: createdAt,
	}
}

func TestFeedService_Pagination_VisitsEveryPostOnce(t *testing.T) {
	fx := newFeedFixture()
	base := time.Date(2025, time.April, 6, 18, 0, 0, 0, time.UTC)

	// Two pairs share a timestamp so the id tie-breaker is exercised.
	inserted := []post.Post{
		socialPost("p-07", memory.UserIDAlex, base.Add(6*time.Minute)),
		socialPost("p-06", memory.UserIDBillie, base.Add(5*time.Minute)),
		socialPost("p-05", memory.UserIDCasey, base.Add(4*time.Minute)),
		socialPost("p-04", memory.UserIDAlex, base.Add(4*time.Minute)),
		socialPost("p-03", memory.UserIDBillie, base.Add(2*time.Minute)),
		socialPost("p-02", memory.UserIDCasey, base.Add(time.Minute)),
		socialPost("p-01", memory.UserIDAlex, base.Add(time.Minute)),
	}
	for _, p := range inserted {
		if err := fx.posts.Create(t.Context(), p); err != nil {
			t.Fatalf("seed post %s: %v", p.ID, err)
		}
	}

	seen := make(map[string]int)
	var walked []post.FeedItem
	var cursor *post.Cursor
	for pages := 0; ; pages++ {
		if pages > len(inserted) {
			t.Fatalf("pagination did not terminate after %d pages", pages)
		}
		page, err := fx.service.GetFeed(t.Context(), "", false, 3, cursor)
		if err != nil {
			t.Fatalf("get feed page: %v", err)
		}
		for _, item := range page.Items {
			seen[item.Post.ID]++
			walked = append(walked, item)
		}
		if page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}

	if len(walked) != len(inserted) {
		t.Fatalf("expected %d items across pages, got %d", len(inserted), len(walked))
	}
	for _, p := range inserted {
		if seen[p.ID] != 1 {
			t.Fatalf("post %s seen %d times, want exactly once", p.ID, seen[p.ID])
		}
	}
	for i := 1; i < len(walked); i++ {
		prev, cur := walked[i-1].Post, walked[i].Post
		if cur.CreatedAt.After(prev.CreatedAt) {
			t.Fatalf("ordering violated at %s -> %s: createdAt ascending", prev.ID, cur.ID)
		}
		if cur.CreatedAt.Equal(prev.CreatedAt) && cur.ID >= prev.ID {
			t.Fatalf("ordering violated at %s -> %s: id tie-breaker not descending", prev.ID, cur.ID)
		}
	}
}

func TestFeedService_AuthorFeed_SinglePostAnnotations(t *testing.T) {
	fx := newFeedFixture()
	created := socialPost("p-hello", memory.UserIDCasey, time.Date(2025, time.April, 7, 8, 0, 0, 0, time.UTC))
	if err := fx.posts.Create(t.Context(), created); err != nil {
		t.Fatalf("seed post: %v", err)
	}

	page, err := fx.service.GetAuthorFeed(t.Context(), "", memory.UserIDCasey, 1, nil)
	if err != nil {
		t.Fatalf("get author feed: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(page.Items))
	}

	item := page.Items[0]
	if item.Post.ID != created.ID {
		t.Fatalf("expected post %s, got %s", created.ID, item.Post.ID)
	}
	if item.LikeCount != 0 || item.LikedByMe {
		t.Fatalf("expected zero likes and likedByMe=false, got count=%d liked=%v", item.LikeCount, item.LikedByMe)
	}
	if item.Author.ID != memory.UserIDCasey || item.Author.Name == "" {
		t.Fatalf("author summary not resolved: %+v", item.Author)
	}
	if page.NextCursor != nil {
		t.Fatalf("expected no next cursor for single matching post")
	}
}

func TestFeedService_LeagueFeed_OnlyLeaguePosts(t *testing.T) {
	fx := newFeedFixture()
	base := time.Date(2025, time.April, 8, 10, 0, 0, 0, time.UTC)
	leagueID := memory.LeagueIDSunday

	inLeague := socialPost("p-league", memory.UserIDAlex, base)
	inLeague.LeagueID = &leagueID
	unaffiliated := socialPost("p-outsider", memory.UserIDCasey, base.Add(time.Minute))
	for _, p := range []post.Post{inLeague, unaffiliated} {
		if err := fx.posts.Create(t.Context(), p); err != nil {
			t.Fatalf("seed post %s: %v", p.ID, err)
		}
	}

	page, err := fx.service.GetLeagueFeed(t.Context(), "", leagueID, 10, nil)
	if err != nil {
		t.Fatalf("get league feed: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Post.ID != inLeague.ID {
		t.Fatalf("expected only the league post, got %+v", page.Items)
	}
}

func TestFeedService_ViewerScopedSelectorsRequireAuth(t *testing.T) {
	fx := newFeedFixture()

	if _, err := fx.service.GetFeed(t.Context(), "", true, 10, nil); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("following feed without viewer: got %v, want ErrUnauthorized", err)
	}
	if _, err := fx.service.GetMyTeamsFeed(t.Context(), "", 10, nil); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("my-teams feed without viewer: got %v, want ErrUnauthorized", err)
	}
	if _, err := fx.service.GetMyLeaguesFeed(t.Context(), "", 10, nil); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("my-leagues feed without viewer: got %v, want ErrUnauthorized", err)
	}
}

func TestFeedService_MyTeamsFeed_EmptyWithoutMemberships(t *testing.T) {
	fx := newFeedFixture()
	if err := fx.posts.Create(t.Context(), socialPost("p-any", memory.UserIDAlex, time.Now().UTC())); err != nil {
		t.Fatalf("seed post: %v", err)
	}

	// Casey neither manages nor plays for any team.
	page, err := fx.service.GetMyTeamsFeed(t.Context(), memory.UserIDCasey, 10, nil)
	if err != nil {
		t.Fatalf("my-teams feed: %v", err)
	}
	if len(page.Items) != 0 || page.NextCursor != nil {
		t.Fatalf("expected empty page, got %+v", page)
	}
}

func TestFeedService_MyTeamsFeed_UnionsManagedAndPlayedTeams(t *testing.T) {
	fx := newFeedFixture()
	base := time.Date(2025, time.April, 9, 12, 0, 0, 0, time.UTC)

	// Casey plays for the Wanderers; Billie manages them.
	if err := fx.teams.AddPlayer(t.Context(), memory.TeamIDWanderers, memory.UserIDCasey); err != nil {
		t.Fatalf("add player: %v", err)
	}

	byTeammate := socialPost("p-teammate", memory.UserIDBillie, base)
	byStranger := socialPost("p-stranger", memory.UserIDAlex, base.Add(time.Minute))
	for _, p := range []post.Post{byTeammate, byStranger} {
		if err := fx.posts.Create(t.Context(), p); err != nil {
			t.Fatalf("seed post %s: %v", p.ID, err)
		}
	}

	page, err := fx.service.GetMyTeamsFeed(t.Context(), memory.UserIDCasey, 10, nil)
	if err != nil {
		t.Fatalf("my-teams feed: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Post.ID != byTeammate.ID {
		t.Fatalf("expected only the teammate post, got %+v", page.Items)
	}
}

func TestFeedService_FollowingFeed(t *testing.T) {
	fx := newFeedFixture()
	base := time.Date(2025, time.April, 10, 12, 0, 0, 0, time.UTC)

	if err := fx.users.Follow(t.Context(), memory.UserIDCasey, memory.UserIDAlex); err != nil {
		t.Fatalf("follow: %v", err)
	}

	followed := socialPost("p-followed", memory.UserIDAlex, base)
	other := socialPost("p-other", memory.UserIDBillie, base.Add(time.Minute))
	for _, p := range []post.Post{followed, other} {
		if err := fx.posts.Create(t.Context(), p); err != nil {
			t.Fatalf("seed post %s: %v", p.ID, err)
		}
	}

	page, err := fx.service.GetFeed(t.Context(), memory.UserIDCasey, true, 10, nil)
	if err != nil {
		t.Fatalf("following feed: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Post.ID != followed.ID {
		t.Fatalf("expected only followed author's post, got %+v", page.Items)
	}
}
