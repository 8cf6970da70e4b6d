package finance

import (
	"time"

	"github.com/razoraze123/flux/internal/finance"
)

type transactionPayload struct {
	ID          string `json:"id,omitempty"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	ClientID    string `json:"client_id,omitempty"`
}

type segmentResponse struct {
	Category   string `json:"category"`
	Amount     int64  `json:"amount"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

type statsResponse struct {
	TotalBalance   int64                `json:"total_balance"`
	MonthlyIncome  int64                `json:"monthly_income"`
	MonthlyExpense int64                `json:"monthly_expense"`
	Recent         []transactionPayload `json:"recent_transactions"`
	Distribution   []segmentResponse    `json:"expense_distribution"`
	Trend          []int                `json:"trend"`
}

func toPayload(tx finance.Transaction) transactionPayload {
	return transactionPayload{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Description: tx.Description,
		Category:    tx.Category,
		Date:        tx.Date.Format(time.DateOnly),
		ClientID:    tx.ClientID,
	}
}

func toPayloadList(txs []finance.Transaction) []transactionPayload {
	out := make([]transactionPayload, len(txs))
	for i, tx := range txs {
		out[i] = toPayload(tx)
	}

	return out
}

func toStatsPayload(stats finance.Stats) statsResponse {
	segments := make([]segmentResponse, len(stats.Distribution))
	for i, seg := range stats.Distribution {
		segments[i] = segmentResponse{
			Category:   seg.Category,
			Amount:     seg.Amount,
			Percentage: seg.Percentage,
			Color:      seg.Color,
		}
	}

	return statsResponse{
		TotalBalance:   stats.TotalBalance,
		MonthlyIncome:  stats.MonthlyIncome,
		MonthlyExpense: stats.MonthlyExpense,
		Recent:         toPayloadList(stats.Recent),
		Distribution:   segments,
		Trend:          stats.Trend,
	}
}
