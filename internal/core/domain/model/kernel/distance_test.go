package kernel_test

import (
	"math"
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistance(t *testing.T) {
	tests := []struct {
		name    string
		km      float64
		wantErr bool
	}{
		{name: "lower bound is inclusive", km: kernel.MinKm},
		{name: "inside range", km: 7.25},
		{name: "just below upper bound", km: math.Nextafter(kernel.MaxKm, 0)},
		{name: "upper bound is exclusive", km: kernel.MaxKm, wantErr: true},
		{name: "negative", km: -0.1, wantErr: true},
		{name: "NaN", km: math.NaN(), wantErr: true},
		{name: "infinite", km: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := kernel.NewDistance(tt.km)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			require.NoError(t, err)
			require.NoError(t, d.Validate())
			assert.InDelta(t, tt.km, d.Kilometers(), 1e-12)
		})
	}
}

func TestDistance_WholeKilometers(t *testing.T) {
	tests := []struct {
		km   float64
		want int64
	}{
		{km: 0, want: 0},
		{km: 0.99, want: 0},
		{km: 5, want: 5},
		{km: 12.7, want: 12},
		{km: 19.999, want: 19},
	}

	for _, tt := range tests {
		d, err := kernel.NewDistance(tt.km)
		require.NoError(t, err)
		assert.Equal(t, tt.want, d.WholeKilometers(), "km=%v", tt.km)
	}
}

func TestDistance_ZeroValueIsInvalid(t *testing.T) {
	var d kernel.Distance
	require.ErrorIs(t, d.Validate(), kernel.ErrDistanceIsNotConstructed)
}
