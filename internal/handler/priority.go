package handler

import (
	"net/http"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
	"github.com/Elite747/ValhallaLootList-sub000/internal/logger"
	"github.com/Elite747/ValhallaLootList-sub000/internal/priority"
)

type PriorityHandler struct {
	service priority.Service
}

func NewPriorityHandler(service priority.Service) *PriorityHandler {
	return &PriorityHandler{service: service}
}

// HandleGetPriority godoc
// @Summary Get a character's priority for an item
// @Description Returns the bonuses and combined score for the entry holding the item
// @Tags priority
// @Produce json
// @Param characterID path string true "Character ID"
// @Param phase query int true "Content phase"
// @Param size query int true "Raid size of the loot list"
// @Param item query int true "Item ID"
// @Success 200 {object} priority.Report
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/priority [get]
func (h *PriorityHandler) HandleGetPriority(w http.ResponseWriter, r *http.Request) {
	phase, ok := GetQueryInt(r, w, "phase")
	if !ok {
		return
	}
	size, ok := GetQueryInt(r, w, "size")
	if !ok {
		return
	}
	itemID, ok := GetQueryInt(r, w, "item")
	if !ok {
		return
	}

	report, err := h.service.Bonuses(r.Context(), pathParam(r, "characterID"), phase, size, itemID)
	if err != nil {
		logServiceError(r, "Failed to compute priority", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// HandleRecordDonation godoc
// @Summary Record a donation
// @Description Records copper donated by a character during a month
// @Tags priority
// @Accept json
// @Produce json
// @Param request body domain.MonthDonation true "Donation"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} RejectionResponse
// @Router /api/v1/donations [post]
func (h *PriorityHandler) HandleRecordDonation(w http.ResponseWriter, r *http.Request) {
	var req domain.MonthDonation
	if err := DecodeAndValidateRequest(r, w, &req, "Record donation"); err != nil {
		return
	}

	if err := h.service.RecordDonation(r.Context(), req); err != nil {
		logServiceError(r, "Failed to record donation", err)
		respondServiceError(w, err)
		return
	}

	logger.FromContext(r.Context()).Info("Donation recorded",
		"character_id", req.CharacterID, "year", req.Year, "month", int(req.Month), "amount", req.Amount)
	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgDonationRecordedSuccess})
}
