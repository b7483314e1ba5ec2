package budget

import "errors"

var (
	// ErrNoMonthSelected is returned by operations that need a loaded
	// month before any month has been selected.
	ErrNoMonthSelected = errors.New("no month is selected")

	// ErrDateOutsideMonth is returned when a day operation targets a date
	// that is not part of the currently loaded month. Callers must select
	// the owning month first.
	ErrDateOutsideMonth = errors.New("the date is outside the currently loaded month")

	// ErrDayNotEditable is returned for mutations of validated days and
	// days in the past. The day is guaranteed to be unchanged.
	ErrDayNotEditable = errors.New("this day can no longer be edited")

	// ErrMonthHasNoBudget rejects contributors on months without any
	// planned spending.
	ErrMonthHasNoBudget = errors.New("contributors can only be added once the month has a planned budget")

	ErrContributorNotFound = errors.New("there is no contributor with this id")

	ErrMealTypeInvalid = errors.New("the meal type must be morning, noon or evening")
)
