package client

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/razoraze123/flux/internal/client"
	"github.com/razoraze123/flux/internal/validation"
)

type Handler struct {
	svc *client.Service
}

func NewHandler(svc *client.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.upsert)
	r.Delete("/{id}", h.delete)
}

type clientPayload struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Status    string `json:"status,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Zip       string `json:"zip,omitempty"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Search narrows the loaded list, it never refetches.
	if q := r.URL.Query().Get("q"); q != "" {
		clients = client.FilterSearch(clients, q)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPayloadList(clients)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	var req clientPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.svc.Upsert(r.Context(), client.Client{
		ID:        req.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Status:    client.Status(req.Status),
		AvatarURL: req.AvatarURL,
		Address:   req.Address,
		City:      req.City,
		Zip:       req.Zip,
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

func toPayload(c client.Client) clientPayload {
	return clientPayload{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Status:    string(c.Status),
		AvatarURL: c.AvatarURL,
		Address:   c.Address,
		City:      c.City,
		Zip:       c.Zip,
	}
}

func toPayloadList(clients []client.Client) []clientPayload {
	out := make([]clientPayload, len(clients))
	for i, c := range clients {
		out[i] = toPayload(c)
	}

	return out
}
