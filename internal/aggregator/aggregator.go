package aggregator

import (
	"github.com/imishinist/logstat/internal/models"
)

type accumulator struct {
	count     int
	totalTime float64
}

// Aggregator folds records into per-endpoint statistics. It is not safe for
// concurrent use and becomes read-only once Finalize has been called.
type Aggregator struct {
	endpoints map[string]*accumulator
	finalized bool
}

func New() *Aggregator {
	return &Aggregator{
		endpoints: make(map[string]*accumulator),
	}
}

// Add folds record into the statistics and reports whether it was counted.
// Records without a string url or a numeric response_time are ignored.
func (a *Aggregator) Add(record models.Record) bool {
	if a.finalized {
		panic("aggregator: Add called after Finalize")
	}

	endpoint, ok := record.Endpoint()
	if !ok {
		return false
	}
	responseTime, ok := record.ResponseTime()
	if !ok {
		return false
	}

	acc, exists := a.endpoints[endpoint]
	if !exists {
		acc = &accumulator{}
		a.endpoints[endpoint] = acc
	}
	acc.count++
	acc.totalTime += responseTime

	return true
}

// Finalize computes the averages and returns them keyed by endpoint.
func (a *Aggregator) Finalize() map[string]models.EndpointStats {
	a.finalized = true

	stats := make(map[string]models.EndpointStats, len(a.endpoints))
	for endpoint, acc := range a.endpoints {
		// every stored endpoint has count > 0
		stats[endpoint] = models.EndpointStats{
			Count:           acc.count,
			TotalTime:       acc.totalTime,
			AvgResponseTime: acc.totalTime / float64(acc.count),
		}
	}

	return stats
}

func Aggregate(records []models.Record) map[string]models.EndpointStats {
	agg := New()
	for _, record := range records {
		agg.Add(record)
	}
	return agg.Finalize()
}
