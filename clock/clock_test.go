package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_Location(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	now := System{Location: loc}.Now()
	assert.Equal(t, loc, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestFixed_Advance(t *testing.T) {
	start := time.Date(2026, 2, 18, 9, 0, 0, 0, time.UTC)
	c := &Fixed{T: start}
	assert.Equal(t, start, c.Now())

	c.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), c.Now())
}
