package budget

import (
	"github.com/rs/zerolog/log"
	"github.com/umuryango/backend/internal/importer"
)

// Import merges a foreign document into the store and reloads the
// selected month afterwards. The merge runs under the history lock, it
// always sees a complete index and no month mutation can interleave with
// its index write.
func (s *Service) Import(doc importer.Document) (importer.Result, error) {
	s.historyMu.Lock()
	result, err := importer.Merge(s.store, doc, s.clock.Now().UTC())
	s.historyMu.Unlock()
	if err != nil {
		return importer.Result{}, err
	}

	if err := s.Refresh(); err != nil {
		log.Warn().Err(err).Msg("could not reload the selected month after import")
	}

	return result, nil
}
