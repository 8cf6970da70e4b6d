package client

import (
	"strings"
	"time"
)

// Status represents the relationship state of a client.
type Status string

const (
	StatusActive   Status = "Active"
	StatusPending  Status = "Pending"
	StatusInactive Status = "Inactive"
)

// Client represents a customer of the merchant.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Company   string
	Status    Status
	AvatarURL string
	Address   string
	City      string
	Zip       string
	CreatedAt time.Time
}

// FilterSearch narrows an already loaded list by a case-insensitive match on
// name or company. It is a pure function over the slice and never refetches.
func FilterSearch(clients []Client, query string) []Client {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clients
	}

	out := make([]Client, 0, len(clients))

	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Company), q) {
			out = append(out, c)
		}
	}

	return out
}
