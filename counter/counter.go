package counter

// Counter is a cumulative metric
type Counter interface {
	Value() int64
	IncreaseRatePerSec() int64

	Add(n int64)
}
