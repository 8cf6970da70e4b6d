package finance

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/razoraze123/flux/internal/finance"
	"github.com/razoraze123/flux/internal/validation"
)

type Handler struct {
	svc *finance.Service
}

func NewHandler(svc *finance.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.upsert)
	r.Delete("/{id}", h.delete)
	r.Get("/stats", h.stats)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := finance.ListFilter{}

	if s := r.URL.Query().Get("type"); s != "" {
		t := finance.Type(s)
		filter.Type = &t
	}

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if cat := r.URL.Query().Get("category"); cat != "" {
		txs = finance.FilterCategory(txs, cat)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPayloadList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	var req transactionPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	saved, err := h.svc.Upsert(r.Context(), finance.Transaction{
		ID:          req.ID,
		Type:        finance.Type(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
		ClientID:    req.ClientID,
	})
	if err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toPayload(saved)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toStatsPayload(stats)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
