package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(lists *MockLootListService, prio *MockPriorityService, drops *MockDropService) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		if lists != nil {
			h := NewLootListHandler(lists)
			r.Get("/lists/{listID}", h.HandleGetLootList)
			r.Post("/lists/{listID}/{action}", h.HandleTransition)
			r.Put("/lists/{listID}/entries/{entryID}", h.HandleSetEntry)
			r.Post("/lists/{listID}/entries/{entryID}/check", h.HandleCheckEntry)
		}
		if prio != nil {
			h := NewPriorityHandler(prio)
			r.Get("/characters/{characterID}/priority", h.HandleGetPriority)
			r.Post("/donations", h.HandleRecordDonation)
		}
		if drops != nil {
			h := NewDropHandler(drops)
			r.Get("/drops/{dropID}/standings", h.HandleGetStandings)
			r.Put("/drops/{dropID}/winner", h.HandleAward)
		}
	})
	return r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
