package checks

import (
	"context"
	"strconv"
	"time"

	"video-id-finder/core/reconcile"
)

// UpstreamReport describes whether one remote service answered.
type UpstreamReport struct {
	Name      string        `json:"name"`
	Reachable bool          `json:"reachable"`
	Detail    string        `json:"detail"`
	Latency   time.Duration `json:"latency_ns"`
}

// CheckVendor lists the vendor's batches once.
func CheckVendor(ctx context.Context, batches reconcile.BatchLister) UpstreamReport {
	start := time.Now()
	list, err := batches.ListBatches(ctx)
	return upstream("threeplay", start, err, len(list), "batches")
}

// CheckAttributes performs one lookup against the attribute service.
// Any answer, including zero records, counts as reachable.
func CheckAttributes(ctx context.Context, attributes reconcile.AttributeLookup, filename string) UpstreamReport {
	start := time.Now()
	records, err := attributes.LookupByFilename(ctx, filename)
	return upstream("clapi", start, err, len(records), "records")
}

func upstream(name string, start time.Time, err error, n int, unit string) UpstreamReport {
	r := UpstreamReport{Name: name, Latency: time.Since(start)}
	if err != nil {
		r.Detail = err.Error()
		return r
	}
	r.Reachable = true
	r.Detail = strconv.Itoa(n) + " " + unit
	return r
}
