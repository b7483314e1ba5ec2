package models

import "golang.org/x/exp/slices"

// Clone returns a deep copy of the meal.
func (m Meal) Clone() Meal {
	clone := m
	clone.Items = slices.Clone(m.Items)
	return clone
}

// Clone returns a deep copy of the day.
func (d DayBudget) Clone() DayBudget {
	clone := d

	clone.Meals = make([]Meal, len(d.Meals))
	for i, meal := range d.Meals {
		clone.Meals[i] = meal.Clone()
	}

	if d.ValidatedAt != nil {
		at := *d.ValidatedAt
		clone.ValidatedAt = &at
	}

	return clone
}

// Clone returns a deep copy of the monthly budget. Mutations work on a
// clone and only replace the persisted state once they succeed, so a
// failed operation never leaves a half-mutated month behind.
func (b MonthlyBudget) Clone() MonthlyBudget {
	clone := b

	clone.Days = make([]DayBudget, len(b.Days))
	for i, day := range b.Days {
		clone.Days[i] = day.Clone()
	}

	clone.Contributors = slices.Clone(b.Contributors)

	return clone
}
