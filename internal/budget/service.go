// Package budget implements the planning service: one session over the
// persistent store that loads months, mutates days and contributors and
// keeps the budget history index up to date.
//
// All mutations of a month run under a per-month lock, there is at most
// one writer per month id at any time. A month record and the history
// index are always written in a single store transaction.
package budget

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/umuryango/backend/internal/clock"
	"github.com/umuryango/backend/internal/models"
	"github.com/umuryango/backend/internal/storage"
	"github.com/umuryango/backend/internal/types"
)

// Service is the orchestrating session over the store. It holds the
// selected month and its loaded budget so consumers do not pass them
// around.
type Service struct {
	store storage.Store
	clock clock.Clock

	// mu guards the session pointer (selected month and its loaded budget).
	mu       sync.Mutex
	selected types.Month
	current  *models.MonthlyBudget

	// locks serializes writers per month id.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	// historyMu serializes every read-modify-write of the history
	// index. The index is shared across all months, the per-month
	// locks alone cannot protect it.
	historyMu sync.Mutex
}

// NewService returns a Service on top of the given store and clock.
func NewService(store storage.Store, c clock.Clock) *Service {
	return &Service{
		store: store,
		clock: c,
		locks: make(map[string]*sync.Mutex),
	}
}

// lockMonth returns the mutex serializing writes to one month.
func (s *Service) lockMonth(id string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}

	return l
}

// Now returns the current time of the session clock.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// CurrentMonth returns the month "today" is in.
func (s *Service) CurrentMonth() types.Month {
	return types.MonthOf(s.clock.Now())
}

// Today returns today's date at local midnight.
func (s *Service) Today() types.Date {
	return types.DateOf(s.clock.Now())
}

// Selected returns the selected month. ok is false before the first
// SelectMonth call.
func (s *Service) Selected() (types.Month, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selected, !s.selected.IsZero()
}

// SelectMonth makes the month the active one and returns its loaded
// budget. Selecting a month that has never been planned creates and
// persists an empty budget for it.
func (s *Service) SelectMonth(m types.Month) (models.MonthlyBudget, error) {
	lock := s.lockMonth(m.ID())
	lock.Lock()
	defer lock.Unlock()

	b, err := s.loadMonthLocked(m)
	if err != nil {
		return models.MonthlyBudget{}, err
	}

	s.mu.Lock()
	s.selected = m
	s.current = &b
	s.mu.Unlock()

	return b.Clone(), nil
}

// LoadMonth returns the persisted budget for the month, creating it when
// absent. It does not change the selected month.
func (s *Service) LoadMonth(m types.Month) (models.MonthlyBudget, error) {
	lock := s.lockMonth(m.ID())
	lock.Lock()
	defer lock.Unlock()

	b, err := s.loadMonthLocked(m)
	if err != nil {
		return models.MonthlyBudget{}, err
	}

	return b.Clone(), nil
}

// loadMonthLocked reads the month record, creating and persisting a fresh
// budget when there is none so that subsequent loads are plain reads.
// The caller must hold the month lock.
func (s *Service) loadMonthLocked(m types.Month) (models.MonthlyBudget, error) {
	value, ok, err := s.store.Get(storage.MonthKey(m.ID()))
	if err != nil {
		return models.MonthlyBudget{}, err
	}

	if ok {
		var b models.MonthlyBudget
		if err := json.Unmarshal([]byte(value), &b); err != nil {
			return models.MonthlyBudget{}, fmt.Errorf("month record %s is corrupt: %w", m.ID(), err)
		}

		return b, nil
	}

	b := models.NewMonthlyBudget(m, s.clock.Now().UTC())
	if err := s.persistLocked(&b); err != nil {
		return models.MonthlyBudget{}, err
	}

	log.Debug().Str("month", m.ID()).Msg("created new month budget")
	return b, nil
}

// withMonth runs fn on a clone of the month's budget and persists the
// result. The month lock is held for the whole operation.
func (s *Service) withMonth(m types.Month, fn func(b *models.MonthlyBudget) error) (models.MonthlyBudget, error) {
	lock := s.lockMonth(m.ID())
	lock.Lock()
	defer lock.Unlock()

	b, err := s.loadMonthLocked(m)
	if err != nil {
		return models.MonthlyBudget{}, err
	}

	clone := b.Clone()
	if err := fn(&clone); err != nil {
		return models.MonthlyBudget{}, err
	}

	if err := s.persistLocked(&clone); err != nil {
		return models.MonthlyBudget{}, err
	}

	return clone.Clone(), nil
}

// persistLocked writes the month record and the updated history index in
// one store transaction and refreshes the session pointer when the month
// is the selected one. The caller must hold the month lock; the history
// lock is taken here so concurrent writers on different months cannot
// overwrite the index with a stale copy.
func (s *Service) persistLocked(b *models.MonthlyBudget) error {
	b.UpdatedAt = s.clock.Now().UTC()

	monthJSON, err := json.Marshal(b)
	if err != nil {
		return err
	}

	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	history, err := s.History()
	if err != nil {
		return err
	}
	history.Upsert(*b)

	historyJSON, err := json.Marshal(history)
	if err != nil {
		return err
	}

	err = s.store.SetAll(map[string]string{
		storage.MonthKey(b.ID): string(monthJSON),
		storage.HistoryKey:     string(historyJSON),
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	if !s.selected.IsZero() && s.selected.ID() == b.ID {
		clone := b.Clone()
		s.current = &clone
	}
	s.mu.Unlock()

	return nil
}

// Reset drops the session state. Called after the store has been wiped.
func (s *Service) Reset() {
	s.mu.Lock()
	s.selected = types.Month{}
	s.current = nil
	s.mu.Unlock()
}

// Refresh reloads the selected month from the store. Imports and restores
// write months without going through the session, afterwards the loaded
// month may be stale.
func (s *Service) Refresh() error {
	m, ok := s.Selected()
	if !ok {
		return nil
	}

	_, err := s.SelectMonth(m)
	return err
}

// History returns the budget history index.
func (s *Service) History() (models.BudgetHistory, error) {
	value, ok, err := s.store.Get(storage.HistoryKey)
	if err != nil {
		return models.BudgetHistory{}, err
	}

	if !ok {
		return models.NewBudgetHistory(), nil
	}

	var history models.BudgetHistory
	if err := json.Unmarshal([]byte(value), &history); err != nil {
		return models.BudgetHistory{}, fmt.Errorf("history index is corrupt: %w", err)
	}

	if history.MonthlyBudgets == nil {
		history.MonthlyBudgets = make([]models.MonthlyBudget, 0)
	}

	return history, nil
}

// Reconcile rebuilds the history index from the individual month records.
// Data written before the index and the records shared a transaction can
// disagree after a crash, this runs once at startup to close that gap.
func (s *Service) Reconcile() error {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	keys, err := s.store.Keys()
	if err != nil {
		return err
	}

	history, err := s.History()
	if err != nil {
		return err
	}

	rebuilt := 0
	for _, key := range keys {
		id, ok := storage.MonthID(key)
		if !ok {
			continue
		}

		value, ok, err := s.store.Get(key)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		var b models.MonthlyBudget
		if err := json.Unmarshal([]byte(value), &b); err != nil {
			log.Warn().Str("month", id).Msg("skipping corrupt month record during reconciliation")
			continue
		}

		indexed := history.Get(id)
		if indexed == nil || indexed.UpdatedAt.Before(b.UpdatedAt) {
			history.Upsert(b)
			rebuilt++
		}
	}

	if rebuilt == 0 {
		return nil
	}

	historyJSON, err := json.Marshal(history)
	if err != nil {
		return err
	}

	log.Info().Int("months", rebuilt).Msg("rebuilt history index from month records")
	return s.store.Set(storage.HistoryKey, string(historyJSON))
}
