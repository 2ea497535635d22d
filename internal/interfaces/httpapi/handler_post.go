package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/openpitch/pitchside/internal/usecase"
)

type createPostRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type createGameRecapRequest struct {
	Content    string `json:"content" validate:"required,max=2000"`
	HomeTeamID string `json:"homeTeamId" validate:"required"`
	AwayTeamID string `json:"awayTeamId" validate:"required"`
	HomeScore  *int   `json:"homeScore" validate:"required,min=0"`
	AwayScore  *int   `json:"awayScore" validate:"required,min=0"`
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePost")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createPostRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.postService.Create(ctx, usecase.CreatePostInput{
		ViewerID: principal.UserID,
		Content:  req.Content,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create post failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, postToDTO(ctx, created))
}

func (h *Handler) CreateGameRecap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGameRecap")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createGameRecapRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.postService.CreateGameRecap(ctx, usecase.CreateGameRecapInput{
		ViewerID:   principal.UserID,
		Content:    req.Content,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		HomeScore:  *req.HomeScore,
		AwayScore:  *req.AwayScore,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create game recap failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, postToDTO(ctx, created))
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleLike")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	postID := r.PathValue("postID")
	added, err := h.postService.ToggleLike(ctx, principal.UserID, postID)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle like failed", "user_id", principal.UserID, "post_id", postID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, likeToggleDTO{AddedLike: added})
}
