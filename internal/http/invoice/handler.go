package invoice

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/razoraze123/flux/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

type invoiceResponse struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	Type        string `json:"type"`
	Client      string `json:"client"`
	Date        string `json:"date"`
	Amount      int64  `json:"amount"`
	Status      string `json:"status"`
	DocumentURL string `json:"document_url"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := invoice.ListFilter{}

	if s := r.URL.Query().Get("type"); s != "" {
		t := invoice.Type(s)
		filter.Type = &t
	}

	invoices, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		out[i] = invoiceResponse{
			ID:          inv.ID,
			Number:      inv.Number,
			Type:        string(inv.Type),
			Client:      inv.Client,
			Date:        inv.Date.Format(time.DateOnly),
			Amount:      inv.Amount,
			Status:      string(inv.Status),
			DocumentURL: inv.DocumentURL,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(out); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
