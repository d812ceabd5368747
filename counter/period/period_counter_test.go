package period

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPeriodCounter(t *testing.T) {
	c := NewPeriodCounter(time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int64(800), c.Value())
	require.Zero(t, c.IncreaseRatePerSec())
}

func TestPeriodCounterRate(t *testing.T) {
	c := NewPeriodCounter(10 * time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	c.Add(1000)
	require.Positive(t, c.IncreaseRatePerSec())
}
