package netlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ohmsim/pkg/source"
)

const boostDeck = `* boost equivalent model
bran 1 0 0 x1
addv 1 -100
addx 1 1
adde 1 2 0.5
bran 2 1 0 y0
addf 2 1 -0.5
addy 2 10m
metv 1 1 0
.tran 5u 50u
`

func TestParseBoostDeck(t *testing.T) {
	deck, err := Parse(boostDeck)
	require.NoError(t, err)
	assert.Equal(t, "boost equivalent model", deck.Title)
	assert.Equal(t, 1, deck.Nodes)
	assert.Equal(t, 2, deck.Branches)
	assert.Equal(t, 1, deck.Meters)
	assert.InDelta(t, 5e-6, deck.Step, 1e-18)
	assert.Equal(t, 10, deck.Steps())
}

func TestBuildBoostDeck(t *testing.T) {
	deck, err := Parse(boostDeck)
	require.NoError(t, err)
	ckt, err := deck.Build()
	require.NoError(t, err)
	require.True(t, ckt.Stamped())
	assert.Equal(t, 1, ckt.Kept())

	ckt.UpdateMeters()
	// Averaged boost model at D=0.5: V = VG*(1-D)*R/((1-D)^2*R + RL).
	assert.InDelta(t, 100.0*0.5*100.0/(0.25*100.0+1.0), ckt.Meter(1), 1e-6)
}

func TestParseSourceBindings(t *testing.T) {
	deck, err := Parse(`* sources
bran 1 1 0 x1
addx 1 1k
src 1 sin 0 100 50 0
bran 2 1 0 y1
src 2 pulse 0 1 0 1u 1u 4u 10u
.tran 1u 100u
`)
	require.NoError(t, err)
	require.Len(t, deck.Waves, 2)
	assert.IsType(t, source.Sin{}, deck.Waves[1])
	assert.IsType(t, source.Pulse{}, deck.Waves[2])
}

func TestParseValues(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{"-1.5e-3", -1.5e-3},
		{"10k", 1e4},
		{"10m", 1e-2},
		{"2meg", 2e6},
		{"5u", 5e-6},
		{"100n", 1e-7},
		{"3p", 3e-12},
	} {
		v, err := parseValue(tc.in)
		require.NoError(t, err, tc.in)
		assert.InEpsilon(t, tc.want, v, 1e-12, tc.in)
	}

	_, err := parseValue("bogus")
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	for name, deck := range map[string]string{
		"unknown op":     "* t\nfoo 1 2 3\n",
		"bad level":      "* t\nbran 1 1 0 z9\n",
		"bad method":     "* t\nbran 1 1 0 x1 rk4\n",
		"bad value":      "* t\nbran 1 1 0 x1\naddx 1 ohm\n",
		"short bran":     "* t\nbran 1 1\n",
		"bad index":      "* t\naddx 0 5\n",
		"bad tran":       "* t\n.tran -1u 1m\n",
		"unknown source": "* t\nbran 1 1 0 x1\nsrc 1 saw 1 2\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(deck)
			assert.Error(t, err)
		})
	}
}

func TestBuildWithoutTran(t *testing.T) {
	deck, err := Parse("* t\nbran 1 1 0 x1\naddx 1 1\n")
	require.NoError(t, err)
	_, err = deck.Build()
	assert.Error(t, err)
}
