package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/openpitch/pitchside/internal/domain/user"
	"github.com/openpitch/pitchside/internal/infrastructure/repository/memory"
	idgen "github.com/openpitch/pitchside/internal/platform/id"
	"github.com/openpitch/pitchside/internal/usecase"
)

// staticVerifier accepts tokens of the form "token-<userID>" without
// calling Passport.
type staticVerifier struct{}

func (staticVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	userID, ok := strings.CutPrefix(token, "token-")
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return user.Principal{UserID: userID, Email: userID + "@example.com"}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	users := memory.NewUserRepository(memory.SeedUsers())
	teams := memory.NewTeamRepository(users, memory.SeedTeams())
	leagues := memory.NewLeagueRepository(memory.SeedLeagues())
	games := memory.NewGameRepository(nil)
	posts := memory.NewPostRepository(users, teams, nil)
	invites := memory.NewInviteRepository()

	gen := idgen.NewRandomGenerator()
	handler := NewHandler(
		usecase.NewFeedService(posts, teams, leagues),
		usecase.NewPostService(posts, teams, games, gen),
		usecase.NewTeamService(teams, users, gen),
		usecase.NewLeagueService(leagues, teams, gen),
		usecase.NewGameService(games, teams, leagues, gen),
		usecase.NewInviteService(invites, teams, users, gen),
		usecase.NewUserService(users),
		slog.Default(),
	)

	return NewRouter(handler, staticVerifier{}, slog.Default(), []string{"*"})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestRouter_HealthzBypassesAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_FeedIsPubliclyReadable(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/feed", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body["data"])
	}
	if _, ok := data["items"].([]any); !ok {
		t.Fatalf("expected items array, got %v", data["items"])
	}
}

func TestRouter_CreatePostRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/posts", strings.NewReader(`{"content":"hello"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_CreateAndReadPost(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/posts", strings.NewReader(`{"content":"match day"}`))
	req.Header.Set("Authorization", "Bearer token-"+memory.UserIDAlex)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/users/"+memory.UserIDAlex+"/feed", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]any)
	items, _ := data["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 feed item, got %d", len(items))
	}
	item := items[0].(map[string]any)
	postObj := item["post"].(map[string]any)
	if got, _ := postObj["content"].(string); got != "match day" {
		t.Fatalf("unexpected post content %q", got)
	}
	if got, _ := item["likeCount"].(float64); got != 0 {
		t.Fatalf("expected zero likes, got %v", got)
	}
}

func TestRouter_CreatePostRejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/posts", strings.NewReader(`{"content":"hi","extra":1}`))
	req.Header.Set("Authorization", "Bearer token-"+memory.UserIDAlex)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_RespondForeignInviteForbidden(t *testing.T) {
	router := newTestRouter(t)

	payload := fmt.Sprintf(`{"teamId":%q,"playerIds":[%q]}`, memory.TeamIDRovers, memory.UserIDCasey)
	req := httptest.NewRequest(http.MethodPost, "/v1/invites", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer token-"+memory.UserIDAlex)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	created, _ := body["data"].([]any)
	if len(created) != 1 {
		t.Fatalf("expected 1 invite, got %d", len(created))
	}
	inviteID := created[0].(map[string]any)["id"].(string)

	// Billie was not invited and cannot answer for Casey.
	req = httptest.NewRequest(http.MethodPatch, "/v1/invites/"+inviteID, strings.NewReader(`{"status":"ACCEPTED"}`))
	req.Header.Set("Authorization", "Bearer token-"+memory.UserIDBillie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_InviteSecondResponseConflicts(t *testing.T) {
	router := newTestRouter(t)

	payload := fmt.Sprintf(`{"teamId":%q,"playerIds":[%q]}`, memory.TeamIDRovers, memory.UserIDCasey)
	req := httptest.NewRequest(http.MethodPost, "/v1/invites", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer token-"+memory.UserIDAlex)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	body := decodeEnvelope(t, rec)
	created, _ := body["data"].([]any)
	if len(created) != 1 {
		t.Fatalf("expected 1 invite, got %d", len(created))
	}
	inviteID := created[0].(map[string]any)["id"].(string)

	respond := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/v1/invites/"+inviteID, strings.NewReader(`{"status":"ACCEPTED"}`))
		req.Header.Set("Authorization", "Bearer token-"+memory.UserIDCasey)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	if rec := respond(); rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 on first response, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := respond(); rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409 on second response, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_MalformedCursorRejected(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/feed?cursor=%21%21%21", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
