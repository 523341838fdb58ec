package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFreeze(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	restore := Freeze(at)
	assert.True(t, Now().Equal(at))
	assert.Equal(t, time.UTC, Now().Location())
	restore()
	assert.WithinDuration(t, time.Now(), Now(), time.Second)
}
