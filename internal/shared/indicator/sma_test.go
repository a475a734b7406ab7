package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestSMA_StepSeries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		want   map[int]float64
	}{
		{
			// The 20th sample is the first 30, so it already enters the window at index 19.
			name:   "nineteen 10s then six 30s",
			values: append(repeat(10, 19), repeat(30, 6)...),
			want:   map[int]float64{19: 11.0, 24: 16.0},
		},
		{
			name:   "twenty 10s then five 30s",
			values: append(repeat(10, 20), repeat(30, 5)...),
			want:   map[int]float64{19: 10.0, 24: 15.0},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SMA(tt.values, 20)
			require.Len(t, got, len(tt.values))
			for i := 0; i < 19; i++ {
				assert.Nil(t, got[i], "index %d", i)
			}
			for i, want := range tt.want {
				require.NotNil(t, got[i], "index %d", i)
				assert.Equal(t, want, *got[i], "index %d", i)
			}
		})
	}
}

func TestSMA_MatchesNaiveMean(t *testing.T) {
	t.Parallel()

	values := make([]float64, 60)
	for i := range values {
		values[i] = 100 + float64(i%7)*1.37 - float64(i%3)*0.91
	}

	got := SMA(values, 20)
	for i := range values {
		if i < 19 {
			assert.Nil(t, got[i])
			continue
		}
		var sum float64
		for _, v := range values[i-19 : i+1] {
			sum += v
		}
		require.NotNil(t, got[i])
		assert.InDelta(t, sum/20, *got[i], 1e-9, "index %d", i)
	}
}

func TestSMA_Edges(t *testing.T) {
	t.Parallel()

	assert.Empty(t, SMA(nil, 20))
	assert.Equal(t, []*float64{nil, nil}, SMA([]float64{1, 2}, 0))
	assert.Equal(t, []*float64{nil, nil, nil}, SMA([]float64{1, 2, 3}, 20))

	got := SMA([]float64{4, 8}, 1)
	require.Len(t, got, 2)
	assert.Equal(t, 4.0, *got[0])
	assert.Equal(t, 8.0, *got[1])
}
