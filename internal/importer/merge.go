package importer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/umuryango/backend/internal/models"
	"github.com/umuryango/backend/internal/storage"
	"golang.org/x/exp/slices"
)

// Parse decodes a foreign document and validates that the required
// top-level fields are present. It never guesses: a parsable file without
// version, budgetHistory or monthlyBudgets is rejected.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if doc.Version == "" || doc.BudgetHistory == nil || doc.MonthlyBudgets == nil {
		return Document{}, ErrInvalidFormat
	}

	return doc, nil
}

// Merge merges a foreign document into the local state and persists the
// result in one store transaction, so a failing import never leaves
// partial writes behind.
//
// Conflict rules per month: foreign days overwrite local days at the same
// date unless the local day is validated and the foreign one is not, in
// which case the local day wins. Days present only locally are kept.
// Contributors are united by name, the foreign side wins on conflict.
func Merge(store storage.Store, doc Document, now time.Time) (Result, error) {
	local := models.NewBudgetHistory()

	value, ok, err := store.Get(storage.HistoryKey)
	if err != nil {
		return Result{}, err
	}
	if ok {
		if err := json.Unmarshal([]byte(value), &local); err != nil {
			return Result{}, fmt.Errorf("history index is corrupt: %w", err)
		}
	}

	merged := make(map[string]models.MonthlyBudget)
	for _, b := range local.MonthlyBudgets {
		merged[b.ID] = b
	}

	// Iterate the foreign months in a stable order so that repeated
	// imports of the same document behave identically.
	foreignIDs := make([]string, 0, len(doc.MonthlyBudgets))
	for id := range doc.MonthlyBudgets {
		foreignIDs = append(foreignIDs, id)
	}
	slices.Sort(foreignIDs)

	conflicts := 0
	for _, id := range foreignIDs {
		foreign := doc.MonthlyBudgets[id]

		existing, ok := merged[id]
		if !ok {
			foreign.UpdatedAt = now
			merged[id] = foreign
			continue
		}

		month, resolved := mergeMonth(existing, foreign)
		month.UpdatedAt = now
		merged[id] = month
		conflicts += resolved
	}

	history := models.NewBudgetHistory()
	for _, b := range merged {
		history.Upsert(b)
	}
	slices.SortFunc(history.MonthlyBudgets, func(a, b models.MonthlyBudget) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	historyJSON, err := json.Marshal(history)
	if err != nil {
		return Result{}, err
	}

	pairs := map[string]string{
		storage.HistoryKey: string(historyJSON),
	}
	for id, b := range merged {
		monthJSON, err := json.Marshal(b)
		if err != nil {
			return Result{}, err
		}
		pairs[storage.MonthKey(id)] = string(monthJSON)
	}

	if err := store.SetAll(pairs); err != nil {
		return Result{}, err
	}

	return Result{
		MonthsImported:    len(doc.MonthlyBudgets),
		ConflictsResolved: conflicts,
		MonthsTotal:       len(merged),
	}, nil
}

// mergeMonth merges one foreign month into its local counterpart. It
// returns the merged month and the number of day conflicts that were
// resolved: a conflict is a foreign day overwriting an existing local day.
func mergeMonth(local, foreign models.MonthlyBudget) (models.MonthlyBudget, int) {
	days := make(map[string]models.DayBudget)
	order := make([]string, 0, len(local.Days))
	for _, day := range local.Days {
		days[day.Date.String()] = day
		order = append(order, day.Date.String())
	}

	conflicts := 0
	for _, day := range foreign.Days {
		key := day.Date.String()
		existing, ok := days[key]

		if ok && existing.Validated && !day.Validated {
			// A validated local day only gives way to a day that is
			// validated as well.
			continue
		}

		if !ok {
			order = append(order, key)
		} else {
			conflicts++
		}
		days[key] = day
	}

	contributors := make(map[string]models.Contributor)
	contributorOrder := make([]string, 0, len(local.Contributors))
	for _, c := range local.Contributors {
		contributors[c.Name] = c
		contributorOrder = append(contributorOrder, c.Name)
	}
	for _, c := range foreign.Contributors {
		if _, ok := contributors[c.Name]; !ok {
			contributorOrder = append(contributorOrder, c.Name)
		}
		contributors[c.Name] = c
	}

	merged := foreign
	merged.Days = make([]models.DayBudget, 0, len(days))
	slices.Sort(order)
	for _, key := range order {
		merged.Days = append(merged.Days, days[key])
	}

	merged.Contributors = make([]models.Contributor, 0, len(contributors))
	for _, name := range contributorOrder {
		merged.Contributors = append(merged.Contributors, contributors[name])
	}

	// The merge can combine days from both sides, so the derived month
	// totals have to be recomputed to keep them consistent.
	merged.Recalculate()

	return merged, conflicts
}
