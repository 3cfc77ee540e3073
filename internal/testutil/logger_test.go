package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureLogger(t *testing.T) {
	logger, logs := NewCaptureLogger()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("registry activated", "version", 3)
		}()
	}
	wg.Wait()

	// The text handler quotes messages containing spaces.
	assert.True(t, logs.Contains(`msg="registry activated" version=3`), logs.String())
	assert.False(t, logs.Contains("registry activated version=3"))
	logger.Debug("debug is captured")
	assert.True(t, logs.Contains("level=DEBUG"))
}
