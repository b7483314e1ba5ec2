package importer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/umuryango/backend/internal/models"
	"github.com/umuryango/backend/internal/storage"
)

// Export collects the history index and every month record into one
// document. The document content is deterministic for the same store
// state.
func Export(store storage.Store, now time.Time) (Document, error) {
	history := models.NewBudgetHistory()

	value, ok, err := store.Get(storage.HistoryKey)
	if err != nil {
		return Document{}, err
	}
	if ok {
		if err := json.Unmarshal([]byte(value), &history); err != nil {
			return Document{}, fmt.Errorf("history index is corrupt: %w", err)
		}
	}

	keys, err := store.Keys()
	if err != nil {
		return Document{}, err
	}

	months := make(map[string]models.MonthlyBudget)
	for _, key := range keys {
		id, isMonth := storage.MonthID(key)
		if !isMonth {
			continue
		}

		value, ok, err := store.Get(key)
		if err != nil {
			return Document{}, err
		}
		if !ok {
			continue
		}

		var b models.MonthlyBudget
		if err := json.Unmarshal([]byte(value), &b); err != nil {
			return Document{}, fmt.Errorf("month record %s is corrupt: %w", id, err)
		}

		months[id] = b
	}

	return Document{
		Version:        DocumentVersion,
		ExportDate:     now,
		BudgetHistory:  &history,
		MonthlyBudgets: months,
	}, nil
}
