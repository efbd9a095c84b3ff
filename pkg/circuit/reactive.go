package circuit

// AddInductor series-connects an inductor to X-branch bx (X2 or X3) with
// initial current i0. u = ind * di/dt, discretized by the branch's
// integration method.
func (c *Circuit) AddInductor(bx int, ind, i0 float64) {
	i := bx - 1
	b := c.numB
	stp := c.dt
	br := &c.branches[i]
	if br.method == BackwardEuler {
		c.pb[i*b+i] += ind / stp
		c.qa0[i] -= (ind * i0) / stp
		c.w2o[i] = 0.0
		if br.level == X3 {
			c.pa[i*b+i] += ind
			c.w1o[i] = -1.0 / stp
		} else {
			c.w1o[i] += -ind / stp
		}
	} else {
		c.pb[i*b+i] += (2.0 * ind) / stp
		c.qa0[i] -= (2.0 * ind * i0) / stp
		c.w2o[i] = -1.0
		if br.level == X3 {
			c.pa[i*b+i] += ind
			c.w1o[i] = -4.0 / stp
		} else {
			c.w1o[i] += (-4.0 * ind) / stp
		}
	}
}

// AddCapacitor parallel-connects a capacitor to Y-branch by (Y2 or Y3)
// with initial voltage v0. j = cap * dv/dt.
func (c *Circuit) AddCapacitor(by int, cap, v0 float64) {
	i := by - 1
	b := c.numB
	stp := c.dt
	br := &c.branches[i]
	if br.method == BackwardEuler {
		c.pb[i*b+i] += cap / stp
		c.qa0[i] -= (cap * v0) / stp
		c.w2o[i] = 0.0
		if br.level == Y3 {
			c.pa[i*b+i] += cap
			c.w1o[i] = -1.0 / stp
		} else {
			c.w1o[i] += -cap / stp
		}
	} else {
		c.pb[i*b+i] += (2.0 * cap) / stp
		c.qa0[i] -= (2.0 * cap * v0) / stp
		c.w2o[i] = -1.0
		if br.level == Y3 {
			c.pa[i*b+i] += cap
			c.w1o[i] = -4.0 / stp
		} else {
			c.w1o[i] += (-4.0 * cap) / stp
		}
	}
}

// AddSeriesCapacitor series-connects a capacitor to X-branch bx (X2 or
// X3). rpc is the reciprocal of the capacitance, v0 the initial voltage.
// u = sum(rpc * i * dt).
func (c *Circuit) AddSeriesCapacitor(bx int, rpc, v0 float64) {
	i := bx - 1
	b := c.numB
	stp := c.dt
	br := &c.branches[i]
	if br.method == BackwardEuler {
		c.pb[i*b+i] += rpc * stp
	} else {
		c.pb[i*b+i] += (rpc * stp) / 2.0
	}
	c.qa0[i] += v0
	c.w2o[i] = 1.0
	if br.level == X3 {
		c.pa[i*b+i] += rpc
		c.w1o[i] = stp
	} else {
		c.w1o[i] += rpc * stp
	}
}

// AddParallelInductor parallel-connects an inductor to Y-branch by (Y2 or
// Y3). rpi is the reciprocal of the inductance, i0 the initial current.
// j = sum(rpi * v * dt).
func (c *Circuit) AddParallelInductor(by int, rpi, i0 float64) {
	i := by - 1
	b := c.numB
	stp := c.dt
	br := &c.branches[i]
	if br.method == BackwardEuler {
		c.pb[i*b+i] += rpi * stp
	} else {
		c.pb[i*b+i] += (rpi * stp) / 2.0
	}
	c.qa0[i] += i0
	c.w2o[i] = 1.0
	if br.level == Y3 {
		c.pa[i*b+i] += rpi
		c.w1o[i] = stp
	} else {
		c.w1o[i] += rpi * stp
	}
}
