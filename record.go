package calcpro

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/afero"
)

// record is the on-disk envelope of a stored value.
type record struct {
	Key       string    `json:"key"`
	Checksum  string    `json:"checksum"`  // hex hash of Value
	UpdatedAt time.Time `json:"updatedAt"` // when the value was last written
	Value     []byte    `json:"value"`
}

// saveRecord writes a record using the store's filesystem.
func (s *Store) saveRecord(r *record) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.recordPath(r.Key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	return nil
}

// loadRecord reads a record and verifies its checksum.
func (s *Store) loadRecord(key string) (*record, error) {
	data, err := afero.ReadFile(s.fs, s.recordPath(key))
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}

	sum, err := s.checksum(r.Value)
	if err != nil {
		return nil, err
	}
	if sum != r.Checksum {
		return nil, fmt.Errorf("%w: %s: checksum mismatch", ErrCorrupt, key)
	}

	return &r, nil
}
