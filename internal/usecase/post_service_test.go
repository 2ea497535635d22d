package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/openpitch/pitchside/internal/domain/post"
	"github.com/openpitch/pitchside/internal/infrastructure/repository/memory"
)

func TestPostService_ToggleLike_RoundTrip(t *testing.T) {
	users := memory.NewUserRepository(memory.SeedUsers())
	teams := memory.NewTeamRepository(users, memory.SeedTeams())
	games := memory.NewGameRepository(nil)
	posts := memory.NewPostRepository(users, teams, nil)
	service := NewPostService(posts, teams, games, &sequenceIDGenerator{prefix: "post"})

	created, err := service.Create(t.Context(), CreatePostInput{
		ViewerID: memory.UserIDAlex,
		Content:  "first whistle",
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	added, err := service.ToggleLike(t.Context(), memory.UserIDBillie, created.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !added {
		t.Fatalf("first toggle should add a like")
	}

	feed := NewFeedService(posts, teams, memory.NewLeagueRepository(nil))
	page, err := feed.GetAuthorFeed(t.Context(), memory.UserIDBillie, memory.UserIDAlex, 1, nil)
	if err != nil {
		t.Fatalf("author feed: %v", err)
	}
	if page.Items[0].LikeCount != 1 || !page.Items[0].LikedByMe {
		t.Fatalf("expected count=1 likedByMe=true, got count=%d liked=%v", page.Items[0].LikeCount, page.Items[0].LikedByMe)
	}

	added, err = service.ToggleLike(t.Context(), memory.UserIDBillie, created.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if added {
		t.Fatalf("second toggle should remove the like")
	}

	page, err = feed.GetAuthorFeed(t.Context(), memory.UserIDBillie, memory.UserIDAlex, 1, nil)
	if err != nil {
		t.Fatalf("author feed after round trip: %v", err)
	}
	if page.Items[0].LikeCount != 0 || page.Items[0].LikedByMe {
		t.Fatalf("toggle round trip did not restore state: count=%d liked=%v", page.Items[0].LikeCount, page.Items[0].LikedByMe)
	}
}

func TestPostService_ToggleLike_UnknownPost(t *testing.T) {
	users := memory.NewUserRepository(memory.SeedUsers())
	teams := memory.NewTeamRepository(users, memory.SeedTeams())
	posts := memory.NewPostRepository(users, teams, nil)
	service := NewPostService(posts, teams, memory.NewGameRepository(nil), staticIDGenerator{id: "post-001"})

	if _, err := service.ToggleLike(t.Context(), memory.UserIDAlex, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostService_CreateGameRecap_RecordsGameAndLeague(t *testing.T) {
	users := memory.NewUserRepository(memory.SeedUsers())
	teams := memory.NewTeamRepository(users, memory.SeedTeams())
	games := memory.NewGameRepository(nil)
	posts := memory.NewPostRepository(users, teams, nil)
	service := NewPostService(posts, teams, games, &sequenceIDGenerator{prefix: "id"})

	now := time.Date(2025, time.April, 12, 16, 30, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.CreateGameRecap(t.Context(), CreateGameRecapInput{
		ViewerID:   memory.UserIDAlex,
		Content:    "hard fought 3-2",
		HomeTeamID: memory.TeamIDRovers,
		AwayTeamID: memory.TeamIDWanderers,
		HomeScore:  3,
		AwayScore:  2,
	})
	if err != nil {
		t.Fatalf("create game recap: %v", err)
	}

	if created.Type != post.TypeGameRecap {
		t.Fatalf("expected type %s, got %s", post.TypeGameRecap, created.Type)
	}
	if created.HomeScore == nil || *created.HomeScore != 3 || created.AwayScore == nil || *created.AwayScore != 2 {
		t.Fatalf("scores not denormalized onto post: %+v", created)
	}
	// The Rovers play in the sunday league, so the recap inherits it.
	if created.LeagueID == nil || *created.LeagueID != memory.LeagueIDSunday {
		t.Fatalf("league not resolved from home team: %+v", created.LeagueID)
	}

	match, exists, err := games.GetByID(t.Context(), "id-001")
	if err != nil || !exists {
		t.Fatalf("game row not recorded: exists=%v err=%v", exists, err)
	}
	if match.Friendly {
		t.Fatalf("league game should not be friendly")
	}
	if !match.Date.Equal(now) {
		t.Fatalf("expected game date %v, got %v", now, match.Date)
	}
}

func TestPostService_CreateGameRecap_SameTeamRejected(t *testing.T) {
	users := memory.NewUserRepository(memory.SeedUsers())
	teams := memory.NewTeamRepository(users, memory.SeedTeams())
	service := NewPostService(
		memory.NewPostRepository(users, teams, nil),
		teams,
		memory.NewGameRepository(nil),
		staticIDGenerator{id: "id-001"},
	)

	_, err := service.CreateGameRecap(t.Context(), CreateGameRecapInput{
		ViewerID:   memory.UserIDAlex,
		Content:    "impossible fixture",
		HomeTeamID: memory.TeamIDRovers,
		AwayTeamID: memory.TeamIDRovers,
		HomeScore:  1,
		AwayScore:  1,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
