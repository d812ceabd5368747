package xxrand

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLockedSourceConcurrent(t *testing.T) {
	l := NewLockedSource([]byte("shared"), 0)
	var (
		mu  sync.Mutex
		got []uint64
		wg  sync.WaitGroup
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				v := l.Uint64()
				mu.Lock()
				got = append(got, v)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s := NewSource([]byte("shared"), 0)
	want := make([]uint64, 200)
	for i := range want {
		want[i] = s.Uint64()
	}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	require.Equal(t, want, got)
}
