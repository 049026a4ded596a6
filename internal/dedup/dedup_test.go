package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeenSet(t *testing.T) {
	s := NewSeenSet()

	assert.False(t, s.HasProcessed("history_0"))
	assert.Equal(t, 0, s.Len())

	s.MarkProcessed("history_0")
	assert.True(t, s.HasProcessed("history_0"))
	assert.False(t, s.HasProcessed("history_1"))

	//marking twice is a no-op
	s.MarkProcessed("history_0")
	assert.Equal(t, 1, s.Len())
}
