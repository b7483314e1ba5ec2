package budget

import (
	"github.com/umuryango/backend/internal/types"
	"golang.org/x/exp/slices"
)

// MonthSelection describes one selectable month.
type MonthSelection struct {
	ID          string `json:"id"`
	Month       int    `json:"month"` // 0-11
	Year        int    `json:"year"`
	DisplayName string `json:"displayName"`
}

// NewMonthSelection builds the selection entry for a month.
func NewMonthSelection(m types.Month) MonthSelection {
	return MonthSelection{
		ID:          m.ID(),
		Month:       m.Number(),
		Year:        m.Year(),
		DisplayName: m.String(),
	}
}

// AvailableMonths returns the selectable months: the current month plus
// the next 11 as the forward planning window, united with every month in
// the history outside that window. Most recent months come first.
func (s *Service) AvailableMonths() ([]MonthSelection, error) {
	months := make([]MonthSelection, 0, 12)
	seen := make(map[string]bool)

	current := s.CurrentMonth()
	for i := 0; i < 12; i++ {
		m := current.AddDate(0, i)
		months = append(months, NewMonthSelection(m))
		seen[m.ID()] = true
	}

	history, err := s.History()
	if err != nil {
		return nil, err
	}

	for _, b := range history.MonthlyBudgets {
		m := b.TypesMonth()
		if !seen[m.ID()] {
			months = append(months, NewMonthSelection(m))
			seen[m.ID()] = true
		}
	}

	slices.SortFunc(months, func(a, b MonthSelection) int {
		if a.Year != b.Year {
			return b.Year - a.Year
		}
		return b.Month - a.Month
	})

	return months, nil
}

// MonthDates enumerates every calendar date of the month.
func (s *Service) MonthDates(m types.Month) []types.Date {
	return m.Dates()
}

// EditableDates returns the dates of the month that are today or later.
// Validation status plays no role here, it is checked per day.
func (s *Service) EditableDates(m types.Month) []types.Date {
	today := s.Today()

	dates := make([]types.Date, 0)
	for _, d := range m.Dates() {
		if !d.Before(today) {
			dates = append(dates, d)
		}
	}

	return dates
}
