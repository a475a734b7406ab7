// Package indicator provides technical indicators over price series.
package indicator

// SMA computes the trailing simple moving average of values over window samples.
//
// The result has the same length as values. Position i holds the mean of
// values[i-window+1 : i+1]; positions with fewer than window samples behind
// them are nil. A non-positive window yields an all-nil series.
func SMA(values []float64, window int) []*float64 {
	out := make([]*float64, len(values))
	if window <= 0 {
		return out
	}

	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			mean := sum / float64(window)
			out[i] = &mean
		}
	}
	return out
}
