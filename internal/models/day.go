package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/umuryango/backend/internal/types"
)

// DayStatus is the planning state of a day.
type DayStatus string

const (
	StatusPending   DayStatus = "pending"
	StatusPlanned   DayStatus = "planned"
	StatusValidated DayStatus = "validated"
)

// SpendingLevel classifies a day's total relative to the month's average.
type SpendingLevel string

const (
	SpendingLow    SpendingLevel = "low"
	SpendingMedium SpendingLevel = "medium"
	SpendingHigh   SpendingLevel = "high"
)

// DayBudget is one calendar date's meal plan and its validation state.
type DayBudget struct {
	ID            string          `json:"id"`
	Date          types.Date      `json:"date"`
	Meals         []Meal          `json:"meals"`
	Total         decimal.Decimal `json:"total"`
	Status        DayStatus       `json:"status"`
	Validated     bool            `json:"validated"`
	ValidatedAt   *time.Time      `json:"validatedAt,omitempty"`
	SpendingLevel SpendingLevel   `json:"spendingLevel,omitempty"`
}

// NewDayBudget returns a pending day with one empty meal per meal type.
func NewDayBudget(date types.Date) DayBudget {
	meals := make([]Meal, 0, len(MealTypes))
	for _, t := range MealTypes {
		meals = append(meals, NewMeal(t))
	}

	return DayBudget{
		ID:     date.String(),
		Date:   date,
		Meals:  meals,
		Total:  decimal.Zero,
		Status: StatusPending,
	}
}

// Meal returns the meal of the given type or nil if the day does not have
// one. Days created by this backend always have all three.
func (d *DayBudget) Meal(t MealType) *Meal {
	for i := range d.Meals {
		if d.Meals[i].Type == t {
			return &d.Meals[i]
		}
	}

	return nil
}

// HasItems reports whether any meal of the day has at least one item.
func (d *DayBudget) HasItems() bool {
	for _, meal := range d.Meals {
		if len(meal.Items) > 0 {
			return true
		}
	}

	return false
}

// Recalculate recomputes the day total from its meals and derives the
// status. A validated day stays validated, otherwise the day is planned
// as soon as any meal has an item and pending when none has.
func (d *DayBudget) Recalculate() {
	total := decimal.Zero
	for _, meal := range d.Meals {
		total = total.Add(meal.Total)
	}
	d.Total = total

	switch {
	case d.Validated:
		d.Status = StatusValidated
	case d.HasItems():
		d.Status = StatusPlanned
	default:
		d.Status = StatusPending
	}
}

// Validate marks the day as validated. It reports whether the state
// changed, validating an already validated day is a no-op.
func (d *DayBudget) Validate(now time.Time) bool {
	if d.Validated {
		return false
	}

	d.Validated = true
	d.Status = StatusValidated
	d.ValidatedAt = &now
	return true
}
