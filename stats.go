package calcpro

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// Stats represents store statistics.
type Stats struct {
	Records      int           // Total number of records
	TotalSize    int64         // Total size of all record files in bytes
	OldestUpdate time.Duration // Age of the least recently written record
	NewestUpdate time.Duration // Age of the most recently written record
	Corrupt      int           // Records that failed to decode or verify
}

// Stats returns statistics about the store.
func (s *Store) Stats() (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{}
	var oldest, newest time.Time

	err := afero.Walk(s.fs, s.recordsDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, recordExt) {
			return nil
		}

		stats.Records++
		stats.TotalSize += info.Size()

		r, err := s.loadRecord(strings.TrimSuffix(info.Name(), recordExt))
		if err != nil {
			stats.Corrupt++
			s.log.Warn("skipping unreadable record", "path", path, "error", err)
			return nil
		}

		if oldest.IsZero() || r.UpdatedAt.Before(oldest) {
			oldest = r.UpdatedAt
		}
		if newest.IsZero() || r.UpdatedAt.After(newest) {
			newest = r.UpdatedAt
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}

	now := s.now()
	if !oldest.IsZero() {
		stats.OldestUpdate = now.Sub(oldest)
	}
	if !newest.IsZero() {
		stats.NewestUpdate = now.Sub(newest)
	}

	return stats, nil
}
