package debt

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/razoraze123/flux/internal/debt"
	"github.com/razoraze123/flux/internal/validation"
)

type Handler struct {
	svc *debt.Service
}

func NewHandler(svc *debt.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.upsert)
	r.Delete("/{id}", h.delete)
}

type debtPayload struct {
	ID           string `json:"id,omitempty"`
	Type         string `json:"type"`
	Person       string `json:"person"`
	Amount       int64  `json:"amount"`
	DueDate      string `json:"due_date"`
	Phone        string `json:"phone"`
	Reason       string `json:"reason"`
	ReminderLink string `json:"reminder_link,omitempty"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := debt.ListFilter{}

	if s := r.URL.Query().Get("type"); s != "" {
		t := debt.Type(s)
		filter.Type = &t
	}

	debts, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPayloadList(debts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	var req debtPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dueDate, err := time.Parse(time.DateOnly, req.DueDate)
	if err != nil {
		http.Error(w, "invalid due_date", http.StatusBadRequest)
		return
	}

	saved, err := h.svc.Upsert(r.Context(), debt.Debt{
		ID:      req.ID,
		Type:    debt.Type(req.Type),
		Person:  req.Person,
		Amount:  req.Amount,
		DueDate: dueDate,
		Phone:   req.Phone,
		Reason:  req.Reason,
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

func toPayload(d debt.Debt) debtPayload {
	return debtPayload{
		ID:           d.ID,
		Type:         string(d.Type),
		Person:       d.Person,
		Amount:       d.Amount,
		DueDate:      d.DueDate.Format(time.DateOnly),
		Phone:        d.Phone,
		Reason:       d.Reason,
		ReminderLink: debt.ReminderLink(d),
	}
}

func toPayloadList(debts []debt.Debt) []debtPayload {
	out := make([]debtPayload, len(debts))
	for i, d := range debts {
		out[i] = toPayload(d)
	}

	return out
}
