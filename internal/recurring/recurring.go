package recurring

import "time"

// Frequency is how often a charge recurs.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Charge is a periodic expense. Toggling Active never reschedules NextDate.
type Charge struct {
	ID        string
	Name      string
	Amount    int64
	Frequency Frequency
	NextDate  time.Time
	Category  string
	Active    bool
}
