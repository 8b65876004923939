package metrics

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/nakabonne/tstorage"
)

var (
	storage tstorage.Storage
	mu      sync.Mutex
	lastTS  = map[string]int64{}
)

// InitMetrics opens the embedded time-series store under workdir.
func InitMetrics(workdir string) error {
	s, err := tstorage.NewStorage(
		tstorage.WithDataPath(filepath.Join(workdir, "metrics")),
		tstorage.WithTimestampPrecision(tstorage.Seconds),
		tstorage.WithPartitionDuration(time.Hour),
	)
	if err != nil {
		return err
	}
	mu.Lock()
	storage = s
	mu.Unlock()
	return nil
}

// SetGauge records a gauge sample at the current timestamp.
func SetGauge(name string, value int64) {
	insert(name, float64(value))
}

// AddPoint records a raw sample, used for event counters where the value is
// summed at query time.
func AddPoint(name string, value float64) {
	insert(name, value)
}

func insert(name string, value float64) {
	mu.Lock()
	s := storage
	// tstorage silently drops a sample whose timestamp equals the previous
	// one for the same metric, which would collapse same-second events.
	// Nudge the timestamp forward instead of losing the sample.
	ts := time.Now().Unix()
	if last, ok := lastTS[name]; ok && ts <= last {
		ts = last + 1
	}
	lastTS[name] = ts
	mu.Unlock()
	if s == nil {
		return
	}
	_ = s.InsertRows([]tstorage.Row{
		{
			Metric:    name,
			DataPoint: tstorage.DataPoint{Timestamp: ts, Value: value},
		},
	})
}

// Query returns the stored samples of a metric in [start, end].
func Query(name string, start, end int64) ([]*tstorage.DataPoint, error) {
	mu.Lock()
	s := storage
	mu.Unlock()
	if s == nil {
		return nil, nil
	}
	points, err := s.Select(name, nil, start, end)
	if err != nil {
		if err == tstorage.ErrNoDataPoints {
			return nil, nil
		}
		return nil, err
	}
	return points, nil
}

// Close flushes and closes the metric store.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if storage == nil {
		return nil
	}
	err := storage.Close()
	storage = nil
	return err
}
