package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingWarm struct {
	calls int
	err   error
}

func (c *countingWarm) Warm(context.Context) error {
	c.calls++
	return c.err
}

func TestWarmAll_ContinuesAfterFailure(t *testing.T) {
	bad := &countingWarm{err: errors.New("db down")}
	good := &countingWarm{}
	w := NewCacheWarmer(map[string]Warmable{"bad": bad, "good": good})

	w.WarmAll()
	assert.Equal(t, 1, bad.calls)
	assert.Equal(t, 1, good.calls)
}

func TestStart(t *testing.T) {
	w := NewCacheWarmer(nil)
	assert.NoError(t, w.Start(""))
	assert.Error(t, w.Start("not a schedule"))

	w = NewCacheWarmer(nil)
	assert.NoError(t, w.Start("@every 4m"))
	w.Stop()
}
