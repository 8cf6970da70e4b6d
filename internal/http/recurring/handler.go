package recurring

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/razoraze123/flux/internal/recurring"
	"github.com/razoraze123/flux/internal/validation"
)

type Handler struct {
	svc *recurring.Service
}

func NewHandler(svc *recurring.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.upsert)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/toggle", h.toggle)
}

type chargePayload struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Amount    int64  `json:"amount"`
	Frequency string `json:"frequency"`
	NextDate  string `json:"next_date"`
	Category  string `json:"category"`
	Active    bool   `json:"active"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	charges, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]chargePayload, len(charges))
	for i, c := range charges {
		out[i] = toPayload(c)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(out); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	var req chargePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	nextDate, err := time.Parse(time.DateOnly, req.NextDate)
	if err != nil {
		http.Error(w, "invalid next_date", http.StatusBadRequest)
		return
	}

	saved, err := h.svc.Upsert(r.Context(), recurring.Charge{
		ID:        req.ID,
		Name:      req.Name,
		Amount:    req.Amount,
		Frequency: recurring.Frequency(req.Frequency),
		NextDate:  nextDate,
		Category:  req.Category,
		Active:    req.Active,
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

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Toggle(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, recurring.ErrNotFound) {
			http.Error(w, "recurring charge not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toPayload(c recurring.Charge) chargePayload {
	return chargePayload{
		ID:        c.ID,
		Name:      c.Name,
		Amount:    c.Amount,
		Frequency: string(c.Frequency),
		NextDate:  c.NextDate.Format(time.DateOnly),
		Category:  c.Category,
		Active:    c.Active,
	}
}
