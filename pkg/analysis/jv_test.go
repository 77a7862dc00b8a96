package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toy-solar/pkg/device"
)

func testDevice() *device.Device {
	etl := device.NewLayer("ETL", 50e-9)
	etl.Nd = 1e19
	etl.Eg = 3.2

	abs := device.NewLayer("Absorber", 500e-9)
	abs.Na = 1e15
	abs.Nd = 1e15
	abs.Eg = 1.55

	htl := device.NewLayer("HTL", 200e-9)
	htl.Na = 1e19
	htl.Eg = 3.0

	return device.New("cell", []device.Layer{etl, abs, htl})
}

func runSweep(t *testing.T, jph, pin float64, params DiodeParams, sweep []float64) *JVSweep {
	t.Helper()
	jv := NewJVSweep(jph, pin, params, sweep)
	require.NoError(t, jv.Setup(testDevice()))
	require.NoError(t, jv.Execute())
	return jv
}

func TestJVSweepCurveShape(t *testing.T) {
	params := DiodeParams{J0: 1e-10, N: 1}
	sweep := DefaultSweep(150, params, 300, 200)
	jv := runSweep(t, 150, 1000, params, sweep)

	v, j := jv.Curve()
	require.Len(t, j, len(sweep))
	require.Len(t, v, len(sweep))

	// J(V) is non-decreasing for the ideal single-diode model.
	for i := 1; i < len(j); i++ {
		assert.GreaterOrEqual(t, j[i], j[i-1])
	}
	// Negative current at short circuit under illumination.
	assert.Less(t, interpolateAt(v, j, 0), 0.0)
}

func TestJVSweepMetrics(t *testing.T) {
	params := DiodeParams{J0: 5e-14, N: 1}
	sweep := DefaultSweep(150, params, 300, 400)
	jv := runSweep(t, 150, 1000, params, sweep)

	m := jv.Metrics()
	assert.InDelta(t, 150, m.Jsc, 1e-6)
	assert.Greater(t, m.Voc, 0.0)
	assert.Less(t, m.Voc, 1.55)
	assert.Greater(t, m.FF, 0.0)
	assert.Less(t, m.FF, 1.0)
	assert.Greater(t, m.Efficiency, 0.0)
	assert.Less(t, m.Efficiency, 0.34)

	// Analytic Voc for the explicit diode relation.
	vocWant := thermalVoltage(300) * math.Log(150/5e-14+1)
	assert.InDelta(t, vocWant, m.Voc, 0.01)

	results := jv.GetResults()
	assert.Equal(t, []float64{m.Voc}, results["voc"])
	assert.Len(t, results["current"], 400)
}

func TestJVSweepRaisingJ0LowersVoc(t *testing.T) {
	sweep := DefaultSweep(150, DiodeParams{J0: 1e-12, N: 1}, 300, 400)

	low := runSweep(t, 150, 1000, DiodeParams{J0: 1e-12, N: 1}, sweep)
	high := runSweep(t, 150, 1000, DiodeParams{J0: 1e-9, N: 1}, sweep)

	assert.Less(t, high.Metrics().Voc, low.Metrics().Voc)
}

func TestJVSweepDarkCurve(t *testing.T) {
	params := DiodeParams{J0: 1e-10, N: 1}
	jv := NewJVSweep(0, 1000, params, DefaultSweep(0, params, 300, 200))
	require.NoError(t, jv.Setup(testDevice()))

	err := jv.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoZeroCrossing)
	assert.False(t, jv.Solved())

	// The curve itself reduces to the dark diode characteristic.
	v, j := jv.Curve()
	assert.InDelta(t, 0, interpolateAt(v, j, 0), 1e-12)
	for i := range v {
		if v[i] < 0 {
			assert.Less(t, j[i], 0.0)
		}
	}
}

func TestJVSweepNotSpanningVoc(t *testing.T) {
	// Voc sits near 0.9 V for these parameters; stop the sweep well short.
	sweep := make([]float64, 50)
	for i := range sweep {
		sweep[i] = -0.05 + float64(i)*(0.35/49.0)
	}
	jv := NewJVSweep(150, 1000, DiodeParams{J0: 5e-14, N: 1}, sweep)
	require.NoError(t, jv.Setup(testDevice()))

	err := jv.Execute()
	assert.ErrorIs(t, err, ErrNoZeroCrossing)
	assert.False(t, jv.Solved())
}

func TestJVSweepSetupValidation(t *testing.T) {
	dev := testDevice()

	jv := NewJVSweep(-1, 1000, DiodeParams{J0: 1e-10}, []float64{-0.1, 0, 0.1})
	assert.Error(t, jv.Setup(dev))

	jv = NewJVSweep(150, 1000, DiodeParams{J0: 1e-10}, []float64{-0.1})
	assert.Error(t, jv.Setup(dev))

	jv = NewJVSweep(150, 1000, DiodeParams{J0: 1e-10}, []float64{-0.1, -0.1, 0.1})
	assert.Error(t, jv.Setup(dev))

	jv = NewJVSweep(150, 1000, DiodeParams{J0: 1e-10}, []float64{0.1, 0.2})
	assert.Error(t, jv.Setup(dev), "sweep must start at or below 0 V")
}

func TestJVSweepDerivesDefaults(t *testing.T) {
	jv := NewJVSweep(150, 1000, DiodeParams{}, []float64{-0.05, 0, 0.5, 1.0})
	require.NoError(t, jv.Setup(testDevice()))

	params := jv.Params()
	assert.Equal(t, 1.0, params.N)
	assert.InEpsilon(t, DeriveJ0(testDevice()), params.J0, 1e-12)
}

func TestDeriveJ0(t *testing.T) {
	dev := testDevice()
	j0 := DeriveJ0(dev)
	assert.Greater(t, j0, 0.0)

	// Doubling the stack doping halves the saturation current.
	for i := range dev.Layers {
		dev.Layers[i].Na *= 2
		dev.Layers[i].Nd *= 2
	}
	assert.InEpsilon(t, j0/2, DeriveJ0(dev), 1e-9)

	undoped := device.New("i", []device.Layer{device.NewLayer("i", 1e-6)})
	assert.Greater(t, DeriveJ0(undoped), 0.0)
}

func TestDefaultSweep(t *testing.T) {
	params := DiodeParams{J0: 5e-14, N: 1}
	sweep := DefaultSweep(150, params, 300, 200)

	require.Len(t, sweep, 200)
	assert.Less(t, sweep[0], 0.0)
	for i := 1; i < len(sweep); i++ {
		assert.Greater(t, sweep[i], sweep[i-1])
	}

	// Must extend past the analytic Voc.
	voc := thermalVoltage(300) * math.Log(150/5e-14+1)
	assert.Greater(t, sweep[len(sweep)-1], voc)
}
