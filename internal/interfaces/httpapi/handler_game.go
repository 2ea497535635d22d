package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/openpitch/pitchside/internal/usecase"
)

type createGameRequest struct {
	Date       time.Time `json:"date" validate:"required"`
	HomeTeamID string    `json:"homeTeamId" validate:"required"`
	AwayTeamID string    `json:"awayTeamId" validate:"required"`
	HomeScore  *int      `json:"homeScore" validate:"omitempty,min=0"`
	AwayScore  *int      `json:"awayScore" validate:"omitempty,min=0"`
	LeagueID   string    `json:"leagueId"`
	Friendly   bool      `json:"friendly"`
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGame")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createGameRequest
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

	created, err := h.gameService.Create(ctx, usecase.CreateGameInput{
		ViewerID:   principal.UserID,
		Date:       req.Date,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
		LeagueID:   req.LeagueID,
		Friendly:   req.Friendly,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create game failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(ctx, created))
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	gameID := r.PathValue("gameID")
	item, err := h.gameService.GetByID(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(ctx, item))
}

func (h *Handler) ListLeagueGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueGames")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	games, err := h.gameService.ListByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league games failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, g := range games {
		items = append(items, gameToDTO(ctx, g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
