package circuit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A chopped resistive load: the switch toggles every two steps (100 kHz at
// 5 µs) with a settling burst after each state change. Closed phases must
// carry the full loop current, open phases none, with no divergence over
// the whole run.
func TestSwitchPulse(t *testing.T) {
	const (
		VG     = 100.0
		R      = 1000.0
		K1     = 1.0
		K2     = 0.6569
		YS     = 0.2929 / 1000
		DT     = 5e-6
		settle = 10

		steps      = 10000
		phaseSteps = 2 // 1/F at 100 kHz
	)

	ckt, err := New(1, 2, 0, DT)
	require.NoError(t, err)
	ckt.Branch(1, 1, 0, X1, Trapezoidal)
	ckt.AddVoltage(1, VG)
	ckt.AddResistor(1, R)
	ckt.Branch(2, 1, 0, SW, Trapezoidal)
	ckt.AddSwitch(2, K1, K2, YS, 0)
	ckt.Stamp()

	for i := 0; i < settle; i++ {
		ckt.SettleSwitch()
	}

	type sample struct {
		closed  bool
		current float64
	}
	var ends []sample

	closed := false
	for i := 1; i <= steps; i++ {
		if i%phaseSteps == 0 {
			// Record the phase just before toggling away from it.
			ends = append(ends, sample{closed, -ckt.BranchValue(1)})
			closed = !closed
			ckt.SetSwitch(2, closed)
			for j := 0; j < settle; j++ {
				ckt.SettleSwitch()
			}
		}
		ckt.Step()
		require.Less(t, math.Abs(ckt.BranchValue(1)), 1.0, "step %d", i)
		require.Less(t, math.Abs(ckt.BranchValue(2)), 2*VG, "step %d", i)
	}

	// Judge the settled tail of the run.
	require.Greater(t, len(ends), 200)
	for _, s := range ends[len(ends)-100:] {
		if s.closed {
			assert.InDelta(t, VG/R, s.current, 0.01)
		} else {
			assert.InDelta(t, 0.0, s.current, 0.01)
		}
	}
}

func TestSwitchStateCurrents(t *testing.T) {
	const (
		VG = 100.0
		R  = 1000.0
	)
	ckt, err := New(1, 2, 0, 5e-6)
	require.NoError(t, err)
	ckt.Branch(1, 1, 0, X1, Trapezoidal)
	ckt.AddVoltage(1, VG)
	ckt.AddResistor(1, R)
	ckt.Branch(2, 1, 0, SW, Trapezoidal)
	ckt.AddSwitch(2, 1.0, 0.6569, 0.2929/R, 0)
	ckt.Stamp()

	// Switches start open: no loop current, full voltage across the
	// switch.
	for i := 0; i < 60; i++ {
		ckt.SettleSwitch()
	}
	assert.InDelta(t, 0.0, ckt.BranchValue(1), 1e-6)
	assert.InDelta(t, VG, ckt.BranchValue(2), 1e-3)

	ckt.SetSwitch(2, true)
	for i := 0; i < 60; i++ {
		ckt.SettleSwitch()
	}
	assert.InDelta(t, -VG/R, ckt.BranchValue(1), 1e-6)
	assert.InDelta(t, 0.0, ckt.BranchValue(2), 1e-3)

	// Reset reopens the switch and restores the initial sources.
	ckt.Reset()
	for i := 0; i < 60; i++ {
		ckt.SettleSwitch()
	}
	assert.InDelta(t, 0.0, ckt.BranchValue(1), 1e-6)
}
