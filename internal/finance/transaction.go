package finance

import "time"

// Type represents the direction of a transaction.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction represents a single income or expense entry. Amount is whole
// FCFA.
type Transaction struct {
	ID          string
	Type        Type
	Amount      int64
	Description string
	Category    string
	Date        time.Time
	ClientID    string
}

// Category suggestion lists shown by the entry form, fixed per type. The
// field itself stays a free-form label.
var (
	ExpenseCategories = []string{
		"Transport", "Repas", "Logiciel", "Matériel", "Bureau",
		"Marketing", "Salaires", "Voyage", "Internet", "Maintenance",
		"Impôts", "Formation", "Autre",
	}

	IncomeCategories = []string{
		"Prestation", "Vente", "Retainer", "Dividendes", "Autre",
	}
)

// Categories returns the suggestion list for the given type.
func Categories(t Type) []string {
	if t == TypeIncome {
		return IncomeCategories
	}

	return ExpenseCategories
}

// FilterCategory narrows an already loaded list to one category label. It is
// a pure function over the slice and never refetches.
func FilterCategory(txs []Transaction, category string) []Transaction {
	if category == "" {
		return txs
	}

	out := make([]Transaction, 0, len(txs))

	for _, tx := range txs {
		if tx.Category == category {
			out = append(out, tx)
		}
	}

	return out
}
