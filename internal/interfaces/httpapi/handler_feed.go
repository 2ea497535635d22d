package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFeed")
	defer span.End()

	limit, cursor, err := feedParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	onlyFollowing := strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("onlyFollowing")), "true")

	page, err := h.feedService.GetFeed(ctx, viewerID(ctx), onlyFollowing, limit, cursor)
	if err != nil {
		h.logger.WarnContext(ctx, "get feed failed", "only_following", onlyFollowing, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, feedPageToDTO(ctx, page))
}

func (h *Handler) GetUserFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUserFeed")
	defer span.End()

	limit, cursor, err := feedParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	userID := r.PathValue("userID")
	page, err := h.feedService.GetAuthorFeed(ctx, viewerID(ctx), userID, limit, cursor)
	if err != nil {
		h.logger.WarnContext(ctx, "get user feed failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, feedPageToDTO(ctx, page))
}

func (h *Handler) GetTeamFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamFeed")
	defer span.End()

	limit, cursor, err := feedParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	page, err := h.feedService.GetTeamFeed(ctx, viewerID(ctx), teamID, limit, cursor)
	if err != nil {
		h.logger.WarnContext(ctx, "get team feed failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, feedPageToDTO(ctx, page))
}

func (h *Handler) GetLeagueFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueFeed")
	defer span.End()

	limit, cursor, err := feedParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	page, err := h.feedService.GetLeagueFeed(ctx, viewerID(ctx), leagueID, limit, cursor)
	if err != nil {
		h.logger.WarnContext(ctx, "get league feed failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, feedPageToDTO(ctx, page))
}

func (h *Handler) GetMyTeamsFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyTeamsFeed")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	limit, cursor, err := feedParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.feedService.GetMyTeamsFeed(ctx, principal.UserID, limit, cursor)
	if err != nil {
		h.logger.WarnContext(ctx, "get my teams feed failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, feedPageToDTO(ctx, page))
}

func (h *Handler) GetMyLeaguesFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyLeaguesFeed")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	limit, cursor, err := feedParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.feedService.GetMyLeaguesFeed(ctx, principal.UserID, limit, cursor)
	if err != nil {
		h.logger.WarnContext(ctx, "get my leagues feed failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, feedPageToDTO(ctx, page))
}
