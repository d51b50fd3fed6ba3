package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_BurstThenDeny(t *testing.T) {
	krl := New(1, 3)

	for i := range 3 {
		assert.True(t, krl.Allow("overpass"), "burst token %d", i+1)
	}
	assert.False(t, krl.Allow("overpass"))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	krl := New(1, 1)

	assert.True(t, krl.Allow("overpass"))
	assert.False(t, krl.Allow("overpass"))
	assert.True(t, krl.Allow("geoapify"), "separate key has its own bucket")
}

func TestWait_RespectsContext(t *testing.T) {
	krl := New(0.001, 1)
	require.True(t, krl.Allow("slow"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := krl.Wait(ctx, "slow")
	assert.Error(t, err)
}
