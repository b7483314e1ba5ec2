// Package storage implements the persistent key-value store that all
// budget records live in. Values are JSON documents serialized by the
// callers, the store only deals in text.
package storage

import (
	"errors"
	"strings"
)

// HistoryKey is the fixed key the budget history index is stored under.
const HistoryKey = "budget_history"

// monthKeyPrefix prefixes the key of every individually persisted month.
const monthKeyPrefix = "budget_data_"

// MonthKey returns the storage key for a month id.
func MonthKey(monthID string) string {
	return monthKeyPrefix + monthID
}

// MonthID extracts the month id from a storage key. The second return
// value reports whether the key is a month record key at all.
func MonthID(key string) (string, bool) {
	id, found := strings.CutPrefix(key, monthKeyPrefix)
	if !found || id == "" {
		return "", false
	}

	return id, true
}

// ErrStore is returned for failures the caller can not do anything about,
// the underlying error is logged where it occurs.
var ErrStore = errors.New("an error occurred accessing the data store")

// Store is the persistent key-value store contract.
//
// Get treats a missing key as a legitimate empty state, not an error: it
// returns ok == false and a nil error. SetAll writes all pairs in a single
// transaction so that a month record and the history index can never be
// persisted half-updated.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	SetAll(pairs map[string]string) error
	Remove(key string) error
	Clear() error
	Keys() ([]string, error)
}
