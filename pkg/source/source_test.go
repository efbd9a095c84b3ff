package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDC(t *testing.T) {
	w := DC{Value: 42}
	assert.Equal(t, 42.0, w.At(0))
	assert.Equal(t, 42.0, w.At(1e3))
}

func TestSin(t *testing.T) {
	w := Sin{Offset: 1, Amplitude: 2, Freq: 50}
	assert.InDelta(t, 1.0, w.At(0), 1e-12)
	assert.InDelta(t, 3.0, w.At(1.0/200), 1e-9)  // quarter period peak
	assert.InDelta(t, -1.0, w.At(3.0/200), 1e-9) // trough
}

func TestSinPhase(t *testing.T) {
	w := Sin{Amplitude: 1, Freq: 50, Phase: 90}
	assert.InDelta(t, 1.0, w.At(0), 1e-12)
}

func TestPulse(t *testing.T) {
	w := Pulse{V1: 0, V2: 5, Delay: 1, Rise: 1, Fall: 1, Width: 2, Period: 10}
	assert.Equal(t, 0.0, w.At(0.5))           // before delay
	assert.InDelta(t, 2.5, w.At(1.5), 1e-12)  // mid rise
	assert.Equal(t, 5.0, w.At(3.0))           // flat top
	assert.InDelta(t, 2.5, w.At(4.5), 1e-12)  // mid fall
	assert.Equal(t, 0.0, w.At(7.0))           // back at base
	assert.InDelta(t, 2.5, w.At(11.5), 1e-12) // next period
}

func TestPulseSharpEdges(t *testing.T) {
	w := Pulse{V1: 0, V2: 1, Width: 3, Period: 6}
	assert.Equal(t, 1.0, w.At(0))
	assert.Equal(t, 1.0, w.At(2.9))
	assert.Equal(t, 0.0, w.At(3.5))
}

func TestPWL(t *testing.T) {
	w := PWL{Times: []float64{0, 1, 3}, Values: []float64{0, 10, -10}}
	assert.Equal(t, 0.0, w.At(-1))
	assert.InDelta(t, 5.0, w.At(0.5), 1e-12)
	assert.InDelta(t, 10.0, w.At(1), 1e-12)
	assert.InDelta(t, 0.0, w.At(2), 1e-12)
	assert.Equal(t, -10.0, w.At(5))
}

func TestPWLEmpty(t *testing.T) {
	assert.Equal(t, 0.0, PWL{}.At(1))
}
