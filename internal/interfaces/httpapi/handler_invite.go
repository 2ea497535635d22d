package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/openpitch/pitchside/internal/domain/invite"
	"github.com/openpitch/pitchside/internal/usecase"
)

type createInvitesRequest struct {
	TeamID    string   `json:"teamId" validate:"required"`
	PlayerIDs []string `json:"playerIds" validate:"required,min=1,dive,required"`
}

type respondInviteRequest struct {
	Status string `json:"status" validate:"required,oneof=ACCEPTED DECLINED"`
}

func (h *Handler) CreateInvites(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateInvites")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createInvitesRequest
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

	invites, err := h.inviteService.Create(ctx, principal.UserID, req.TeamID, req.PlayerIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "create invites failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, invitesToDTO(ctx, invites))
}

func (h *Handler) RespondInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RespondInvite")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req respondInviteRequest
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

	status, err := invite.ParseStatus(req.Status)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	inviteID := r.PathValue("inviteID")
	updated, err := h.inviteService.Respond(ctx, principal.UserID, inviteID, status)
	if err != nil {
		h.logger.WarnContext(ctx, "respond invite failed", "invite_id", inviteID, "status", req.Status, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, inviteToDTO(ctx, updated))
}

func (h *Handler) CancelInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelInvite")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	inviteID := r.PathValue("inviteID")
	updated, err := h.inviteService.Cancel(ctx, principal.UserID, inviteID)
	if err != nil {
		h.logger.WarnContext(ctx, "cancel invite failed", "invite_id", inviteID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, inviteToDTO(ctx, updated))
}

func (h *Handler) ListMyInvites(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyInvites")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	invites, err := h.inviteService.ListByPlayer(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list my invites failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, invitesToDTO(ctx, invites))
}

func (h *Handler) ListTeamInvites(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamInvites")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	invites, err := h.inviteService.ListByTeam(ctx, principal.UserID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team invites failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, invitesToDTO(ctx, invites))
}
