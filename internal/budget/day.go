package budget

import (
	"github.com/umuryango/backend/internal/models"
	"github.com/umuryango/backend/internal/types"
)

// GetDay returns the day budget for the date within the currently loaded
// month, or nil when no such day exists yet or the date belongs to a
// different month than is loaded. Callers that need another month must
// select it first.
func (s *Service) GetDay(date types.Date) *models.DayBudget {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || !s.selected.Contains(date) {
		return nil
	}

	day := s.current.Day(date)
	if day == nil {
		return nil
	}

	clone := day.Clone()
	return &clone
}

// CanEditDay reports whether the date can still be edited: validated days
// and days before today are read-only.
func (s *Service) CanEditDay(date types.Date) bool {
	if day := s.GetDay(date); day != nil && day.Validated {
		return false
	}

	return !date.Before(s.Today())
}

// AddMealItem appends an item to the named meal of the date, lazily
// creating the day. The date must be in the selected month.
func (s *Service) AddMealItem(date types.Date, mealType models.MealType, item models.MealItem) (models.DayBudget, error) {
	if !mealType.Valid() {
		return models.DayBudget{}, ErrMealTypeInvalid
	}

	m, err := s.selectedMonthFor(date)
	if err != nil {
		return models.DayBudget{}, err
	}

	if !s.CanEditDay(date) {
		return models.DayBudget{}, ErrDayNotEditable
	}

	return s.mutateDay(m, date, func(day *models.DayBudget) error {
		if day.Validated {
			return ErrDayNotEditable
		}

		day.Meal(mealType).AddItem(item)
		day.Recalculate()
		return nil
	})
}

// RemoveMealItem removes an item from the named meal of the date.
// Removing from a day that does not exist is a no-op.
func (s *Service) RemoveMealItem(date types.Date, mealType models.MealType, itemID string) (models.DayBudget, error) {
	if !mealType.Valid() {
		return models.DayBudget{}, ErrMealTypeInvalid
	}

	m, err := s.selectedMonthFor(date)
	if err != nil {
		return models.DayBudget{}, err
	}

	if !s.CanEditDay(date) {
		return models.DayBudget{}, ErrDayNotEditable
	}

	if s.GetDay(date) == nil {
		return models.DayBudget{}, nil
	}

	return s.mutateDay(m, date, func(day *models.DayBudget) error {
		if day.Validated {
			return ErrDayNotEditable
		}

		day.Meal(mealType).RemoveItem(itemID)
		day.Recalculate()
		return nil
	})
}

// ReplaceMealItems replaces the whole item list of one meal, re-issuing
// fresh ids for every item. This backs the paste flow, which may target a
// day outside the loaded month: the owning month is selected explicitly
// before the replacement. Editability only depends on the date here.
func (s *Service) ReplaceMealItems(date types.Date, mealType models.MealType, items []models.MealItem) (models.DayBudget, error) {
	if !mealType.Valid() {
		return models.DayBudget{}, ErrMealTypeInvalid
	}

	if date.Before(s.Today()) {
		return models.DayBudget{}, ErrDayNotEditable
	}

	if err := s.ensureSelected(date); err != nil {
		return models.DayBudget{}, err
	}

	return s.mutateDay(date.Month(), date, func(day *models.DayBudget) error {
		if day.Validated {
			return ErrDayNotEditable
		}

		day.Meal(mealType).ReplaceItems(items)
		day.Recalculate()
		return nil
	})
}

// DuplicateFullDay replaces the target day's meals with fresh-id copies of
// the source meals. Duplication is authoritative: meal types without
// source items become empty. The owning month is selected when the target
// date is in a different month.
func (s *Service) DuplicateFullDay(target types.Date, source []models.Meal) (models.DayBudget, error) {
	if target.Before(s.Today()) {
		return models.DayBudget{}, ErrDayNotEditable
	}

	if err := s.ensureSelected(target); err != nil {
		return models.DayBudget{}, err
	}

	return s.mutateDay(target.Month(), target, func(day *models.DayBudget) error {
		if day.Validated {
			return ErrDayNotEditable
		}

		for _, t := range models.MealTypes {
			items := make([]models.MealItem, 0)
			for _, meal := range source {
				if meal.Type == t {
					items = meal.Items
					break
				}
			}

			day.Meal(t).ReplaceItems(items)
		}

		day.Recalculate()
		return nil
	})
}

// ValidateDay permanently freezes the day. Validating an absent or already
// validated day is a no-op.
func (s *Service) ValidateDay(date types.Date) (models.DayBudget, error) {
	m, err := s.selectedMonthFor(date)
	if err != nil {
		return models.DayBudget{}, err
	}

	day := s.GetDay(date)
	if day == nil {
		return models.DayBudget{}, nil
	}
	if day.Validated {
		return *day, nil
	}

	return s.mutateDay(m, date, func(day *models.DayBudget) error {
		day.Validate(s.clock.Now().UTC())
		return nil
	})
}

// selectedMonthFor returns the selected month if the date is part of it.
func (s *Service) selectedMonthFor(date types.Date) (types.Month, error) {
	m, ok := s.Selected()
	if !ok {
		return types.Month{}, ErrNoMonthSelected
	}

	if !m.Contains(date) {
		return types.Month{}, ErrDateOutsideMonth
	}

	return m, nil
}

// ensureSelected selects the month owning the date when it is not the
// loaded one. This replaces the source's retry loop that waited for the
// month to appear.
func (s *Service) ensureSelected(date types.Date) error {
	if m, ok := s.Selected(); ok && m.Contains(date) {
		return nil
	}

	_, err := s.SelectMonth(date.Month())
	return err
}

// mutateDay applies fn to the (lazily created) day and persists the month
// with recomputed totals.
func (s *Service) mutateDay(m types.Month, date types.Date, fn func(day *models.DayBudget) error) (models.DayBudget, error) {
	var result models.DayBudget

	_, err := s.withMonth(m, func(b *models.MonthlyBudget) error {
		var day models.DayBudget
		if existing := b.Day(date); existing != nil {
			day = existing.Clone()
		} else {
			day = models.NewDayBudget(date)
		}

		if err := fn(&day); err != nil {
			return err
		}

		b.UpsertDay(day)
		result = *b.Day(date)
		return nil
	})
	if err != nil {
		return models.DayBudget{}, err
	}

	return result, nil
}
