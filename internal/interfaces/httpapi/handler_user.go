package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/openpitch/pitchside/internal/usecase"
)

type registerUserRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Image string `json:"image" validate:"omitempty,url"`
}

// RegisterMe stores the social projection of the authenticated account.
// Called by the frontend after the first Passport sign-in; repeat calls
// are no-ops.
func (h *Handler) RegisterMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterMe")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req registerUserRequest
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

	registered, err := h.userService.Register(ctx, usecase.RegisterUserInput{
		ID:    principal.UserID,
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register user failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userSummaryToDTO(registered.Summary()))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUser")
	defer span.End()

	userID := r.PathValue("userID")
	profile, err := h.userService.GetProfile(ctx, viewerID(ctx), userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get user failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userProfileToDTO(ctx, profile))
}

func (h *Handler) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleFollow")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	userID := r.PathValue("userID")
	following, err := h.userService.ToggleFollow(ctx, principal.UserID, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle follow failed", "user_id", principal.UserID, "target_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, followToggleDTO{Following: following})
}
