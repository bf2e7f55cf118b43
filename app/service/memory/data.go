package memory

import (
	"strings"

	"github.com/elliotchance/pie/v2"
	"golang.org/x/text/cases"
)

// Normalize turns raw user text into a lookup key: surrounding whitespace
// is trimmed and case is folded.
func Normalize(text string) string {
	return cases.Fold().String(strings.TrimSpace(text))
}

// Memory holds learned responses keyed by normalized input.
type Memory struct {
	entries map[string]string
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]string),
	}
}

// FromMap builds a Memory from raw pairs, normalizing every key.
// Colliding keys keep the value of the lexically last raw key.
func FromMap(raw map[string]string) *Memory {
	m := NewMemory()

	for _, key := range pie.Sort(pie.Keys(raw)) {
		m.Set(key, raw[key])
	}

	return m
}

func (m *Memory) Get(input string) (string, bool) {
	response, ok := m.entries[Normalize(input)]
	return response, ok
}

// Set stores response under the normalized input, replacing any previous value.
func (m *Memory) Set(input, response string) {
	m.entries[Normalize(input)] = response
}

func (m *Memory) Len() int {
	return len(m.entries)
}

// Keys returns the stored keys in sorted order.
func (m *Memory) Keys() []string {
	return pie.Sort(pie.Keys(m.entries))
}

// Map returns a copy of the stored pairs.
func (m *Memory) Map() map[string]string {
	result := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		result[k] = v
	}

	return result
}
