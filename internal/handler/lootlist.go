package handler

import (
	"errors"
	"net/http"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
	"github.com/Elite747/ValhallaLootList-sub000/internal/logger"
	"github.com/Elite747/ValhallaLootList-sub000/internal/lootlist"
)

type LootListHandler struct {
	service lootlist.Service
}

func NewLootListHandler(service lootlist.Service) *LootListHandler {
	return &LootListHandler{service: service}
}

// TransitionRequest carries the caller's concurrency token for a status change
type TransitionRequest struct {
	Timestamp string `json:"timestamp" validate:"required"`
	Actor     string `json:"actor" validate:"max=64"`
}

// HandleGetLootList godoc
// @Summary Get a loot list
// @Description Returns a loot list with its entries and current timestamp
// @Tags lists
// @Produce json
// @Param listID path string true "Loot list ID"
// @Success 200 {object} lootlist.ListView
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/lists/{listID} [get]
func (h *LootListHandler) HandleGetLootList(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetLootList(r.Context(), pathParam(r, "listID"))
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get loot list", "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// HandleTransition godoc
// @Summary Change a loot list's status
// @Description Applies submit, revoke, approve, reject, reopen, lock or unlock
// @Tags lists
// @Accept json
// @Produce json
// @Param listID path string true "Loot list ID"
// @Param action path string true "Status action"
// @Param request body TransitionRequest true "Current timestamp"
// @Success 200 {object} domain.CharacterLootList
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} RejectionResponse
// @Router /api/v1/lists/{listID}/{action} [post]
func (h *LootListHandler) HandleTransition(w http.ResponseWriter, r *http.Request) {
	action, err := lootlist.ParseAction(pathParam(r, "action"))
	if err != nil {
		respondError(w, http.StatusNotFound, ErrMsgUnknownAction)
		return
	}

	var req TransitionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Loot list transition"); err != nil {
		return
	}

	list, err := h.service.Transition(r.Context(), pathParam(r, "listID"), action, req.Timestamp, req.Actor)
	if err != nil {
		logServiceError(r, "Failed to transition loot list", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, list)
}

// HandleSetEntry godoc
// @Summary Set a loot list entry
// @Description Assigns, clears or swaps the item on an entry after validating it against the list's brackets
// @Tags lists
// @Accept json
// @Produce json
// @Param listID path string true "Loot list ID"
// @Param entryID path string true "Entry ID"
// @Param request body lootlist.EntryRequest true "Entry change"
// @Success 200 {object} lootlist.EntryResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} RejectionResponse
// @Router /api/v1/lists/{listID}/entries/{entryID} [put]
func (h *LootListHandler) HandleSetEntry(w http.ResponseWriter, r *http.Request) {
	var req lootlist.EntryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set entry"); err != nil {
		return
	}

	result, err := h.service.SetEntry(r.Context(), pathParam(r, "listID"), pathParam(r, "entryID"), req)
	if err != nil {
		logServiceError(r, "Failed to set loot list entry", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleCheckEntry godoc
// @Summary Check a loot list entry change
// @Description Dry run of set entry; rejections are reported in the body rather than as an error status
// @Tags lists
// @Accept json
// @Produce json
// @Param listID path string true "Loot list ID"
// @Param entryID path string true "Entry ID"
// @Param request body lootlist.EntryRequest true "Entry change"
// @Success 200 {object} lootlist.ValidationResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lists/{listID}/entries/{entryID}/check [post]
func (h *LootListHandler) HandleCheckEntry(w http.ResponseWriter, r *http.Request) {
	var req lootlist.EntryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Check entry"); err != nil {
		return
	}

	result, err := h.service.CheckEntry(r.Context(), pathParam(r, "listID"), pathParam(r, "entryID"), req)
	if err != nil {
		logServiceError(r, "Failed to check loot list entry", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// logServiceError logs rejections at Warn and everything else at Error
func logServiceError(r *http.Request, msg string, err error) {
	log := logger.FromContext(r.Context())
	var rej *domain.Rejection
	if errors.As(err, &rej) || errors.Is(err, domain.ErrConcurrencyConflict) {
		log.Warn(msg, "error", err)
		return
	}
	log.Error(msg, "error", err)
}
