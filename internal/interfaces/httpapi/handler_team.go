package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/openpitch/pitchside/internal/usecase"
)

type createTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Image       string `json:"image" validate:"omitempty,url"`
	Description string `json:"description" validate:"max=1000"`
}

type updateTeamRequest struct {
	Name        string `json:"name" validate:"omitempty,max=100"`
	Image       string `json:"image" validate:"omitempty,url"`
	Description string `json:"description" validate:"max=1000"`
	ManagerID   string `json:"managerId"`
}

type addPlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createTeamRequest
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

	created, err := h.teamService.Create(ctx, usecase.CreateTeamInput{
		ViewerID:    principal.UserID,
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(ctx, created))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	details, err := h.teamService.GetDetails(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamDetailToDTO(ctx, details))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateTeamRequest
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

	teamID := r.PathValue("teamID")
	updated, err := h.teamService.Update(ctx, usecase.UpdateTeamInput{
		ViewerID:    principal.UserID,
		TeamID:      teamID,
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(ctx, updated))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	if err := h.teamService.Delete(ctx, principal.UserID, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": teamID})
}

func (h *Handler) AddTeamPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddTeamPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addPlayerRequest
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

	teamID := r.PathValue("teamID")
	if err := h.teamService.AddPlayer(ctx, principal.UserID, teamID, req.PlayerID); err != nil {
		h.logger.WarnContext(ctx, "add team player failed", "team_id", teamID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	details, err := h.teamService.GetDetails(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamDetailToDTO(ctx, details))
}

func (h *Handler) RemoveTeamPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveTeamPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	playerID := r.PathValue("playerID")
	if err := h.teamService.RemovePlayer(ctx, principal.UserID, teamID, playerID); err != nil {
		h.logger.WarnContext(ctx, "remove team player failed", "team_id", teamID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"teamId": teamID, "playerId": playerID})
}

func (h *Handler) ListUserTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUserTeams")
	defer span.End()

	userID := r.PathValue("userID")
	teams, err := h.teamService.ListByPlayer(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list user teams failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListUserManagedTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUserManagedTeams")
	defer span.End()

	userID := r.PathValue("userID")
	teams, err := h.teamService.ListByManager(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list user managed teams failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
