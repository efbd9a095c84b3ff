// Package circuit implements a real-time companion-model circuit
// simulator. A circuit is assembled from branches (two-terminal elements
// anchored between node pairs) and meters, stamped once into a pair of
// dense runtime operators, and then advanced in fixed time steps while the
// host updates independent sources and switch states between steps.
//
// The lifecycle has two phases. An unstamped circuit accepts Branch,
// Voltmeter, Ammeter and the Add* element stampers. Stamp transitions it to
// the stamped phase, which accepts Reset, SettleSwitch, Step, UpdateMeters
// and the accessors. Stamping a circuit twice is undefined.
//
// The core runs in a trust-caller regime: indices, element levels and phase
// ordering are obligations on the caller, not checks. Branch and meter
// indices at this surface are 1-based; nodes are 1-based with 0 denoting
// ground.
package circuit

import "fmt"

// Level classifies a branch by the elements it admits. X-levels solve for
// branch current, Y- and SW-levels for branch voltage. Higher levels admit
// strictly more elements; level-0 branches exist only to supply controlling
// variables and are cut from the runtime solve.
type Level int

const (
	Unknown Level = iota
	X0            // X, E, H
	X1            // X0 set plus V
	X2            // X1 set plus L, Q
	X3            // X2 set plus M, A
	Y0            // Y, F, G
	Y1            // Y0 set plus I
	Y2            // Y1 set plus C, P
	Y3            // Y2 set plus N, B
	SW            // Y1 set plus S
)

// isCurrent reports whether the branch solution variable is a current.
func (lv Level) isCurrent() bool { return lv >= X0 && lv <= X3 }

// isCut reports whether the branch is removed at stamp time.
func (lv Level) isCut() bool { return lv == X0 || lv == Y0 }

// isOrder3 reports whether the branch admits differential and integral
// controlled sources, which claim the Pa diagonal for themselves.
func (lv Level) isOrder3() bool { return lv == X3 || lv == Y3 }

// Method selects the integration rule for a branch's stateful elements.
type Method int

const (
	Trapezoidal Method = iota
	BackwardEuler
)

// branch is the classified per-branch record. Endpoints are 0-based with
// -1 meaning ground. aux is the auxiliary row index for current-solved
// branches and -1 otherwise. slot is the compact runtime index assigned by
// Stamp, -1 for cut branches.
type branch struct {
	n1, n2 int
	level  Level
	method Method
	aux    int
	slot   int
}

// meter is either a voltmeter across two nodes or an ammeter on a branch.
type meter struct {
	ammeter bool
	n1, n2  int // voltmeter endpoints, 0-based, -1 is ground
	branch  int // measured branch for ammeters, 0-based
}

// Circuit is the simulator handle. It owns all storage exclusively; one
// handle must not be used from two goroutines concurrently, but distinct
// handles are independent.
type Circuit struct {
	numN int // nodes excluding ground
	numB int // branches
	numM int // meters
	numX int // current-solved branches discovered so far
	numC int // kept branches after stamping
	dt   float64

	stamped  bool
	branches []branch
	meters   []meter

	// Setup group, released by Stamp.
	pa []float64 // source update matrix, b×b
	pb []float64 // branch conductance matrix, b×b

	// Per-branch companion weights and initial sources, reread by Reset
	// and SetSwitch after stamping.
	w1c, w2c []float64 // closed-state switch weights
	w1o, w2o []float64 // open-state weights
	qa0, qs0 []float64

	// Runtime group, produced by Stamp.
	cmat        []float64 // solution operator, c×c
	dmat        []float64 // meter operator, m×c
	w1m, w2m    []float64
	w1s, w2s    []float64
	qa, qs, qtp []float64
	xc          []float64
	xm          []float64
}

// New creates an unstamped circuit with n nodes (excluding ground), b
// branches, m meters and time step dt.
func New(n, b, m int, dt float64) (*Circuit, error) {
	if n < 0 || b < 0 || m < 0 {
		return nil, fmt.Errorf("circuit sizes must not be negative: n=%d b=%d m=%d", n, b, m)
	}
	if dt <= 0 {
		return nil, fmt.Errorf("time step must be positive: %g", dt)
	}
	c := &Circuit{
		numN:     n,
		numB:     b,
		numM:     m,
		dt:       dt,
		branches: make([]branch, b),
		meters:   make([]meter, m),
		pa:       make([]float64, b*b),
		pb:       make([]float64, b*b),
		w1c:      make([]float64, b),
		w2c:      make([]float64, b),
		w1o:      make([]float64, b),
		w2o:      make([]float64, b),
		qa0:      make([]float64, b),
		qs0:      make([]float64, b),
	}
	for i := range c.branches {
		c.branches[i] = branch{n1: -1, n2: -1, aux: -1, slot: -1}
	}
	for i := range c.meters {
		c.meters[i] = meter{n1: -1, n2: -1}
	}
	return c, nil
}

// Nodes returns the node count excluding ground.
func (c *Circuit) Nodes() int { return c.numN }

// Branches returns the branch count.
func (c *Circuit) Branches() int { return c.numB }

// Meters returns the meter count.
func (c *Circuit) Meters() int { return c.numM }

// Kept returns the number of branches that survived stamping.
func (c *Circuit) Kept() int { return c.numC }

// TimeStep returns the fixed simulation time step.
func (c *Circuit) TimeStep() float64 { return c.dt }

// Stamped reports whether Stamp has run.
func (c *Circuit) Stamped() bool { return c.stamped }

// Meter returns the reading of meter mt as of the last UpdateMeters.
func (c *Circuit) Meter(mt int) float64 { return c.xm[mt-1] }

// BranchValue returns the branch solution variable as of the last Step or
// SettleSwitch: current for X-branches, voltage for Y- and SW-branches.
// Cut branches read zero.
func (c *Circuit) BranchValue(br int) float64 {
	slot := c.branches[br-1].slot
	if slot < 0 {
		return 0.0
	}
	return c.xc[slot]
}

// SetSource sets the independent source of branch br: a voltage for
// X-branches, a current for Y- and SW-branches. No-op on a cut branch.
func (c *Circuit) SetSource(br int, x float64) {
	slot := c.branches[br-1].slot
	if slot < 0 {
		return
	}
	c.qs[slot] = x
}
