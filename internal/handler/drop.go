package handler

import (
	"net/http"

	"github.com/Elite747/ValhallaLootList-sub000/internal/allocation"
)

type DropHandler struct {
	service allocation.Service
}

func NewDropHandler(service allocation.Service) *DropHandler {
	return &DropHandler{service: service}
}

// AwardRequest sets or clears a drop's winner. A null winner_id clears it.
type AwardRequest struct {
	WinnerID  *string `json:"winner_id"`
	AwardedBy string  `json:"awarded_by" validate:"required,max=64"`
}

// HandleGetStandings godoc
// @Summary Get a drop's standings
// @Description Returns every eligible character ordered by priority, highest first
// @Tags drops
// @Produce json
// @Param dropID path string true "Drop ID"
// @Success 200 {array} allocation.Standing
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/drops/{dropID}/standings [get]
func (h *DropHandler) HandleGetStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.service.Standings(r.Context(), pathParam(r, "dropID"))
	if err != nil {
		logServiceError(r, "Failed to compute standings", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, standings)
}

// HandleAward godoc
// @Summary Award or clear a drop
// @Description Sets the drop's winner and records passes for everyone else, or clears an existing award
// @Tags drops
// @Accept json
// @Produce json
// @Param dropID path string true "Drop ID"
// @Param request body AwardRequest true "Winner"
// @Success 200 {object} domain.Drop
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} RejectionResponse
// @Failure 422 {object} RejectionResponse
// @Router /api/v1/drops/{dropID}/winner [put]
func (h *DropHandler) HandleAward(w http.ResponseWriter, r *http.Request) {
	var req AwardRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Award drop"); err != nil {
		return
	}

	drop, err := h.service.Award(r.Context(), pathParam(r, "dropID"), req.WinnerID, req.AwardedBy)
	if err != nil {
		logServiceError(r, "Failed to award drop", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, drop)
}
