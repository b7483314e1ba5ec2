package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/umuryango/backend/internal/types"
)

// Spending level thresholds relative to the month's average day total.
// The values come from the product, do not change them without sign-off.
var (
	spendingLowFactor  = decimal.NewFromFloat(0.7)
	spendingHighFactor = decimal.NewFromFloat(1.3)
)

// MonthlyBudget is the budget of one calendar month. The budget is never
// set manually, TotalBudget is derived from the planned days.
type MonthlyBudget struct {
	ID              string          `json:"id"`
	Month           string          `json:"month"` // French display name of the month
	Year            int             `json:"year"`
	MonthNumber     int             `json:"monthNumber"` // 0-11
	TotalBudget     decimal.Decimal `json:"totalBudget"`
	ConsumedBudget  decimal.Decimal `json:"consumedBudget"`
	RemainingBudget decimal.Decimal `json:"remainingBudget"`
	Days            []DayBudget     `json:"days"`
	Contributors    []Contributor   `json:"contributors"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// NewMonthlyBudget returns an empty budget for the given month.
func NewMonthlyBudget(m types.Month, now time.Time) MonthlyBudget {
	return MonthlyBudget{
		ID:              m.ID(),
		Month:           m.DisplayName(),
		Year:            m.Year(),
		MonthNumber:     m.Number(),
		TotalBudget:     decimal.Zero,
		ConsumedBudget:  decimal.Zero,
		RemainingBudget: decimal.Zero,
		Days:            make([]DayBudget, 0),
		Contributors:    make([]Contributor, 0),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// TypesMonth returns the month identity of the budget.
func (b *MonthlyBudget) TypesMonth() types.Month {
	return types.NewMonth(b.Year, time.Month(b.MonthNumber+1))
}

// Day returns the day with the given date or nil if the month has none.
func (b *MonthlyBudget) Day(date types.Date) *DayBudget {
	for i := range b.Days {
		if b.Days[i].Date.Equal(date) {
			return &b.Days[i]
		}
	}

	return nil
}

// UpsertDay replaces the day with the same date or appends the day, then
// recomputes the month.
func (b *MonthlyBudget) UpsertDay(day DayBudget) {
	for i := range b.Days {
		if b.Days[i].Date.Equal(day.Date) {
			b.Days[i] = day
			b.Recalculate()
			return
		}
	}

	b.Days = append(b.Days, day)
	b.Recalculate()
}

// Contributor returns the contributor with the given id or nil.
func (b *MonthlyBudget) Contributor(id string) *Contributor {
	for i := range b.Contributors {
		if b.Contributors[i].ID == id {
			return &b.Contributors[i]
		}
	}

	return nil
}

// Recalculate recomputes the month's totals and reclassifies every day's
// spending level against the new average.
func (b *MonthlyBudget) Recalculate() {
	total := decimal.Zero
	consumed := decimal.Zero
	for _, day := range b.Days {
		total = total.Add(day.Total)
		if day.Validated {
			consumed = consumed.Add(day.Total)
		}
	}

	b.TotalBudget = total
	b.ConsumedBudget = consumed
	b.RemainingBudget = total.Sub(consumed)

	average := decimal.Zero
	if len(b.Days) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(b.Days))))
	}

	for i := range b.Days {
		b.Days[i].SpendingLevel = classifySpending(b.Days[i].Total, average)
	}
}

// classifySpending assigns a spending level to a day total given the
// month's average day total.
func classifySpending(total, average decimal.Decimal) SpendingLevel {
	switch {
	case total.IsZero():
		return SpendingLow
	case total.LessThan(average.Mul(spendingLowFactor)):
		return SpendingLow
	case total.GreaterThan(average.Mul(spendingHighFactor)):
		return SpendingHigh
	default:
		return SpendingMedium
	}
}
