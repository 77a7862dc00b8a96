package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleCurve evaluates an ideal diode over a fixed sweep.
func sampleCurve(j0, jph float64) (v, j []float64) {
	d := idealDiode{j0: j0, n: 1, vt: thermalVoltage(300), jph: jph}
	for x := -0.05; x <= 1.1; x += 0.005 {
		v = append(v, x)
		j = append(j, d.CurrentAt(x))
	}
	return v, j
}

func TestDeriveMetricsFullRecord(t *testing.T) {
	v, j := sampleCurve(1e-10, 150)
	m, err := DeriveMetrics(v, j, 1000)
	require.NoError(t, err)

	assert.InDelta(t, 150, m.Jsc, 1e-6)
	assert.Greater(t, m.Voc, 0.0)
	assert.Greater(t, m.Vmp, 0.0)
	assert.Less(t, m.Vmp, m.Voc)
	assert.Less(t, m.Jmp, 0.0)
	assert.InEpsilon(t, m.Pmax/(m.Voc*m.Jsc), m.FF, 1e-12)
	assert.InEpsilon(t, m.Pmax/1000, m.Efficiency, 1e-12)
}

func TestDeriveMetricsMissingIrradiance(t *testing.T) {
	v, j := sampleCurve(1e-10, 150)

	_, err := DeriveMetrics(v, j, 0)
	assert.ErrorIs(t, err, ErrMissingIrradiance)

	_, err = DeriveMetrics(v, j, -10)
	assert.ErrorIs(t, err, ErrMissingIrradiance)
}

func TestDeriveMetricsNoCrossing(t *testing.T) {
	// All-negative curve: the sweep stops short of Voc.
	v := []float64{-0.05, 0, 0.1, 0.2}
	j := []float64{-150.01, -150, -149.9, -149}
	_, err := DeriveMetrics(v, j, 1000)
	assert.ErrorIs(t, err, ErrNoZeroCrossing)
}

func TestDeriveMetricsDegenerateCurve(t *testing.T) {
	// Crossing above 0 V but zero current at short circuit.
	v := []float64{-0.1, 0, 0.1, 0.2}
	j := []float64{0, 0, -0.5, 0.5}
	_, err := DeriveMetrics(v, j, 1000)
	assert.ErrorIs(t, err, ErrDegenerateCurve)
}

func TestDeriveMetricsBadArrays(t *testing.T) {
	_, err := DeriveMetrics([]float64{0, 1}, []float64{0}, 1000)
	assert.Error(t, err)
}

func TestZeroCrossingInterpolation(t *testing.T) {
	v := []float64{0.0, 1.0}
	j := []float64{-1.0, 1.0}
	voc, ok := zeroCrossing(v, j)
	require.True(t, ok)
	assert.InDelta(t, 0.5, voc, 1e-12)
}
