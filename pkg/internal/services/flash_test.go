package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahifa-news/sahifa/pkg/internal/cache"
)

func TestFlashesAreReadOnce(t *testing.T) {
	const account = uint(9001)

	PushFlash(account, FlashLevelSuccess, "saved")
	cache.R.Wait()
	PushFlash(account, FlashLevelError, "delivery failed, retrying")
	cache.R.Wait()

	flashes := PopFlashes(account)
	require.Len(t, flashes, 2)
	assert.Equal(t, FlashLevelSuccess, flashes[0].Level)
	assert.Equal(t, "saved", flashes[0].Message)
	assert.Equal(t, FlashLevelError, flashes[1].Level)

	// A second read comes back empty; the pop deleted the batch.
	assert.Empty(t, PopFlashes(account))
}

func TestFlashesAreScopedPerAccount(t *testing.T) {
	PushFlash(uint(9002), FlashLevelInfo, "only for one reader")
	cache.R.Wait()

	assert.Empty(t, PopFlashes(uint(9003)))
	assert.Len(t, PopFlashes(uint(9002)), 1)
}
