package calcpro

import (
	"encoding/json"
	"fmt"
)

// HistoryEntry records one successful calculation.
type HistoryEntry struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
	Timestamp  int64   `json:"timestamp"` // Unix milliseconds
}

// History is a bounded log of entries, newest first.
type History struct {
	entries  []HistoryEntry
	capacity int
}

// NewHistory creates an empty history holding at most capacity entries.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity}
}

// Add prepends an entry, evicting the oldest when the log is full.
func (h *History) Add(e HistoryEntry) {
	h.entries = append([]HistoryEntry{e}, h.entries...)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[:h.capacity]
	}
}

// Entries returns a copy of all entries, newest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// At returns the entry at index i, where 0 is the newest.
func (h *History) At(i int) (HistoryEntry, bool) {
	if i < 0 || i >= len(h.entries) {
		return HistoryEntry{}, false
	}
	return h.entries[i], true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Capacity returns the maximum number of entries.
func (h *History) Capacity() int {
	return h.capacity
}

// Clear removes all entries.
func (h *History) Clear() {
	h.entries = nil
}

// Serialize encodes the history as a JSON array of entries, newest first.
func (h *History) Serialize() ([]byte, error) {
	entries := h.entries
	if entries == nil {
		entries = []HistoryEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history: %w", err)
	}
	return data, nil
}

// DeserializeHistory decodes a blob produced by Serialize.
// It always returns a usable history: empty or corrupt input yields an empty
// one, with a non-nil error describing corrupt input. Entries beyond
// capacity are dropped.
func DeserializeHistory(data []byte, capacity int) (*History, error) {
	h := NewHistory(capacity)
	if len(data) == 0 {
		return h, nil
	}

	var entries []HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return h, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	if len(entries) > h.capacity {
		entries = entries[:h.capacity]
	}
	h.entries = entries
	return h, nil
}

// SerializeHistory encodes the calculator's history.
func (c *Calculator) SerializeHistory() ([]byte, error) {
	return c.history.Serialize()
}

// DeserializeHistory replaces the calculator's history with the decoded blob.
// Corrupt input leaves an empty history and is logged; it never fails.
func (c *Calculator) DeserializeHistory(data []byte) {
	h, err := DeserializeHistory(data, c.capacity)
	if err != nil {
		c.log.Warn("discarding corrupt history", "error", err)
	}
	c.history = h
}

// RecallHistory loads the result of entry i as the current operand.
func (c *Calculator) RecallHistory(i int) (string, bool) {
	c.touch()
	e, ok := c.history.At(i)
	if !ok {
		return c.Display(), false
	}
	c.state.Current = renderValue(e.Result, c.state.Base)
	c.state.AwaitingOperand = true
	return c.Display(), true
}

// ClearHistory removes all history entries and persists the empty log.
func (c *Calculator) ClearHistory() {
	c.touch()
	c.history.Clear()
	c.saveHistory()
}
