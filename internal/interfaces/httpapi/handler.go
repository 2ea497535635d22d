package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/openpitch/pitchside/internal/domain/post"
	"github.com/openpitch/pitchside/internal/domain/user"
	"github.com/openpitch/pitchside/internal/usecase"
)

type Handler struct {
	feedService   *usecase.FeedService
	postService   *usecase.PostService
	teamService   *usecase.TeamService
	leagueService *usecase.LeagueService
	gameService   *usecase.GameService
	inviteService *usecase.InviteService
	userService   *usecase.UserService
	logger        *slog.Logger
	validator     *validator.Validate
}

func NewHandler(
	feedService *usecase.FeedService,
	postService *usecase.PostService,
	teamService *usecase.TeamService,
	leagueService *usecase.LeagueService,
	gameService *usecase.GameService,
	inviteService *usecase.InviteService,
	userService *usecase.UserService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		feedService:   feedService,
		postService:   postService,
		teamService:   teamService,
		leagueService: leagueService,
		gameService:   gameService,
		inviteService: inviteService,
		userService:   userService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// viewerID returns the authenticated user id, or "" on anonymous
// requests. Feed annotation and public reads accept both.
func viewerID(ctx context.Context) string {
	if principal, ok := principalFromContext(ctx); ok {
		return principal.UserID
	}
	return ""
}

func requirePrincipal(ctx context.Context) (user.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return principal, nil
}

// feedParams reads the shared feed query parameters. Limit stays zero
// when absent so the service applies its default.
func feedParams(r *http.Request) (int, *post.Cursor, error) {
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput)
		}
		limit = parsed
	}

	cursor, err := decodeCursor(strings.TrimSpace(r.URL.Query().Get("cursor")))
	if err != nil {
		return 0, nil, err
	}

	return limit, cursor, nil
}
