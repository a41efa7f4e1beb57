package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"character", domain.ErrCharacterNotFound, http.StatusNotFound, ErrMsgCharacterNotFoundError},
		{"wrapped list", fmt.Errorf("%w: abc", domain.ErrLootListNotFound), http.StatusNotFound, ErrMsgLootListNotFoundError},
		{"entry", domain.ErrEntryNotFound, http.StatusNotFound, ErrMsgEntryNotFoundError},
		{"item", domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
		{"drop", domain.ErrDropNotFound, http.StatusNotFound, ErrMsgDropNotFoundError},
		{"brackets", domain.ErrBracketsNotFound, http.StatusNotFound, ErrMsgBracketsNotFoundError},
		{"conflict", domain.ErrConcurrencyConflict, http.StatusConflict, ErrMsgConcurrencyConflict},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestSummary},
		{"configuration", &domain.ConfigurationError{Reason: "gap"}, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"unknown", assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondServiceError_Rejections(t *testing.T) {
	t.Run("Validation is unprocessable", func(t *testing.T) {
		w := httptest.NewRecorder()
		respondServiceError(w, fmt.Errorf("set entry: %w", domain.Reject(domain.ReasonWrongPhase)))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"error":"Item is not part of this content phase.","kind":"validation"}`, w.Body.String())
	})

	t.Run("Precondition is conflict", func(t *testing.T) {
		w := httptest.NewRecorder()
		respondServiceError(w, domain.Violate(domain.ReasonListNotEditable))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"kind":"precondition"`)
	})
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}
