package resync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnce(t *testing.T) {
	var once Once
	count := 0
	incr := func() { count++ }

	once.Do(incr)
	once.Do(incr)
	assert.Equal(t, 1, count)

	once.Reset()
	once.Do(incr)
	once.Do(incr)
	assert.Equal(t, 2, count)
}
