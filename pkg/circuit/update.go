package circuit

import "ohmsim/pkg/matrix"

// Reset returns a stamped circuit to its initial state: companion weights
// back to their open-state values, associated and independent sources back
// to their stamped initial values. Switches always come out of Reset open.
func (c *Circuit) Reset() {
	for i := range c.branches {
		br := &c.branches[i]
		s := br.slot
		if s < 0 {
			continue
		}
		c.w1m[s] = c.w1o[i]
		c.w2m[s] = c.w2o[i]
		c.qa[s] = c.qa0[i]
		c.qs[s] = c.qs0[i]
		if br.level == SW {
			c.w1s[s] = c.w1o[i]
			c.w2s[s] = c.w2o[i]
		} else {
			c.w1s[s] = 0.0
			c.w2s[s] = 1.0 // keep other branch Qa unchanged in SettleSwitch
		}
	}
	matrix.AddVec(c.numC, c.qtp, c.qa, c.qs)
}

// Step advances the circuit by one time step: solve for the branch
// variables, then refresh the associated sources from the new solution.
func (c *Circuit) Step() {
	n := c.numC
	matrix.AddVec(n, c.qtp, c.qa, c.qs)
	matrix.MulVec(n, n, c.xc, c.cmat, c.qtp)
	matrix.FMAVec(n, c.qa, c.w1m, c.xc, c.w2m)
}

// SettleSwitch performs one settling iteration after a switch state
// change. It solves like Step but only switch branches refresh their
// associated source; every other branch's Qa is a fixed point. Call it a
// few times in a burst after SetSwitch to bring the network to the new
// operating point without advancing physical time.
func (c *Circuit) SettleSwitch() {
	n := c.numC
	matrix.AddVec(n, c.qtp, c.qa, c.qs)
	matrix.MulVec(n, n, c.xc, c.cmat, c.qtp)
	matrix.FMAVec(n, c.qa, c.w1s, c.xc, c.w2s)
}

// UpdateMeters recomputes the meter readings from Qa + Qs as summed at the
// start of the last Step or SettleSwitch (or by Reset), so the readings
// belong to the same solve as BranchValue. Later SetSource calls are not
// seen until the next Step or SettleSwitch.
func (c *Circuit) UpdateMeters() {
	matrix.MulVec(c.numM, c.numC, c.xm, c.dmat, c.qtp)
}

// SetSwitch commands switch branch br closed (true) or open (false). The
// new weights take effect at the next SettleSwitch or Step.
func (c *Circuit) SetSwitch(br int, closed bool) {
	i := br - 1
	s := c.branches[i].slot
	if s < 0 {
		return
	}
	if closed {
		c.w1m[s] = c.w1c[i]
		c.w2m[s] = c.w2c[i]
	} else {
		c.w1m[s] = c.w1o[i]
		c.w2m[s] = c.w2o[i]
	}
	c.w1s[s] = c.w1m[s]
	c.w2s[s] = c.w2m[s]
}
