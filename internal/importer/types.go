// Package importer implements the portable export document and the
// conflict-resolving merge of foreign documents into the local store.
package importer

import (
	"errors"
	"time"

	"github.com/umuryango/backend/internal/models"
)

// DocumentVersion is the version written into every export document.
const DocumentVersion = "1.0.0"

// Document is the portable representation of the full persisted state:
// the history index plus every individually persisted month record.
// Unknown extra fields in foreign documents are ignored.
type Document struct {
	Version        string                          `json:"version"`
	ExportDate     time.Time                       `json:"exportDate"`
	BudgetHistory  *models.BudgetHistory           `json:"budgetHistory"`
	MonthlyBudgets map[string]models.MonthlyBudget `json:"monthlyBudgets"`
}

// Result reports what an import did.
type Result struct {
	MonthsImported    int `json:"monthsImported"`    // Months contained in the foreign document
	ConflictsResolved int `json:"conflictsResolved"` // Foreign days that overwrote an existing local day
	MonthsTotal       int `json:"monthsTotal"`       // Months on file after the merge
}

var (
	// ErrInvalidJSON is returned for files that do not parse at all.
	ErrInvalidJSON = errors.New("the file is corrupt or not valid JSON")

	// ErrInvalidFormat is returned for JSON files that lack one of the
	// required top-level fields. Nothing is guessed, the import aborts.
	ErrInvalidFormat = errors.New("the file is not a valid budget export")
)
