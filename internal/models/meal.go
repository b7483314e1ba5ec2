// Package models implements the data model of the Umuryango Budget backend.
//
// The model types carry their derived values (meal and day totals, month
// budgets, spending levels) next to the data they are derived from. The
// derived fields are never written directly, they are recomputed by the
// Recalculate methods after every mutation.
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MealType identifies one of the three meals of a day.
type MealType string

const (
	MealMorning MealType = "morning"
	MealNoon    MealType = "noon"
	MealEvening MealType = "evening"
)

// MealTypes lists all meal types in display order.
var MealTypes = []MealType{MealMorning, MealNoon, MealEvening}

// Valid reports whether t is a known meal type.
func (t MealType) Valid() bool {
	return t == MealMorning || t == MealNoon || t == MealEvening
}

// MealItem is a single priced item of a meal.
type MealItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Contributor string          `json:"contributor,omitempty"` // Who paid for this item
}

// Meal is the set of items planned for one meal of a day.
type Meal struct {
	ID    string          `json:"id"`
	Type  MealType        `json:"type"`
	Items []MealItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// NewMeal returns an empty meal of the given type.
func NewMeal(t MealType) Meal {
	return Meal{
		ID:    uuid.NewString(),
		Type:  t,
		Items: make([]MealItem, 0),
		Total: decimal.Zero,
	}
}

// AddItem appends the item with a fresh id and recomputes the total.
// The stored item is returned.
func (m *Meal) AddItem(item MealItem) MealItem {
	item.ID = uuid.NewString()
	m.Items = append(m.Items, item)
	m.Recalculate()
	return item
}

// RemoveItem removes the item with the given id and recomputes the total.
// Removing an id that is not present is a no-op.
func (m *Meal) RemoveItem(id string) {
	items := make([]MealItem, 0, len(m.Items))
	for _, item := range m.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}

	m.Items = items
	m.Recalculate()
}

// ReplaceItems replaces the whole item list. Every item is stored under a
// fresh id so that pasted items never collide with their source day.
func (m *Meal) ReplaceItems(items []MealItem) {
	replaced := make([]MealItem, 0, len(items))
	for _, item := range items {
		item.ID = uuid.NewString()
		replaced = append(replaced, item)
	}

	m.Items = replaced
	m.Recalculate()
}

// Recalculate recomputes the meal total from its items.
func (m *Meal) Recalculate() {
	total := decimal.Zero
	for _, item := range m.Items {
		total = total.Add(item.Price)
	}

	m.Total = total
}
