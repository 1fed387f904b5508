package shell

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryKeepsInsertionOrder(t *testing.T) {
	h := NewHistory(10)
	h.Add("a")
	h.Add("b")
	h.Add("c")

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []string{"a", "b", "c"}, h.Entries())
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(10)
	for i := 1; i <= 11; i++ {
		h.Add(fmt.Sprintf("cmd %d", i))
	}

	entries := h.Entries()
	assert.Equal(t, 10, len(entries))
	assert.Equal(t, "cmd 2", entries[0])
	assert.Equal(t, "cmd 11", entries[9])
	assert.NotContains(t, entries, "cmd 1")
}

func TestHistoryBelowCapacity(t *testing.T) {
	h := NewHistory(10)
	for i := 0; i < 4; i++ {
		h.Add("x")
	}
	// min(K, N) entries after K insertions.
	assert.Equal(t, 4, h.Len())
}

func TestHistoryCapacityOne(t *testing.T) {
	h := NewHistory(1)
	h.Add("first")
	h.Add("second")

	assert.Equal(t, []string{"second"}, h.Entries())
}

func TestHistoryEntriesIsACopy(t *testing.T) {
	h := NewHistory(10)
	h.Add("original")

	entries := h.Entries()
	entries[0] = "mutated"

	assert.Equal(t, []string{"original"}, h.Entries())
}
