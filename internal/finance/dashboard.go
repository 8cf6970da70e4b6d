package finance

import "context"

// Stats is the aggregate view shown on the dashboard.
type Stats struct {
	TotalBalance   int64
	MonthlyIncome  int64
	MonthlyExpense int64
	Recent         []Transaction
	Distribution   []Segment
	Trend          []int
}

// Segment is one slice of the expense distribution donut.
type Segment struct {
	Category   string
	Amount     int64
	Percentage int
	Color      string
}

// The distribution and trend are author-supplied illustrative datasets, not
// derived from the live transaction list. They are not required to sum
// reactively as new entries arrive.
var (
	expenseDistribution = []Segment{
		{Category: "Repas", Amount: 8500, Percentage: 40, Color: "#f97316"},
		{Category: "Internet", Amount: 5000, Percentage: 25, Color: "#06b6d4"},
		{Category: "Transport", Amount: 4000, Percentage: 20, Color: "#8b5cf6"},
		{Category: "Autre", Amount: 3500, Percentage: 15, Color: "#10b981"},
	}

	trendSeries = []int{40, 55, 45, 70, 65, 85, 80}
)

const recentCount = 4

// Stats computes the dashboard aggregates from the full transaction list.
// TotalBalance is exactly MonthlyIncome minus MonthlyExpense.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	txs, err := s.repo.ListTransactions(ctx, ListFilter{})
	if err != nil {
		return Stats{}, err
	}

	var income, expense int64

	for _, tx := range txs {
		switch tx.Type {
		case TypeIncome:
			income += tx.Amount
		case TypeExpense:
			expense += tx.Amount
		}
	}

	recent := txs
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}

	return Stats{
		TotalBalance:   income - expense,
		MonthlyIncome:  income,
		MonthlyExpense: expense,
		Recent:         recent,
		Distribution:   expenseDistribution,
		Trend:          trendSeries,
	}, nil
}
