package circuit

// AddVCVS series-connects a linear voltage-controlled voltage source to
// X-branch bx, controlled by the voltage of Y/SW-branch cy. u = k * vc.
func (c *Circuit) AddVCVS(bx, cy int, k float64) {
	c.pb[(bx-1)*c.numB+(cy-1)] += k
}

// AddCCVS series-connects a linear current-controlled voltage source to
// X-branch bx, controlled by the current of X-branch cx. u = k * ic.
func (c *Circuit) AddCCVS(bx, cx int, k float64) {
	c.pb[(bx-1)*c.numB+(cx-1)] += k
}

// AddCCCS parallel-connects a linear current-controlled current source to
// Y/SW-branch by, controlled by the current of X-branch cx. j = k * ic.
func (c *Circuit) AddCCCS(by, cx int, k float64) {
	c.pb[(by-1)*c.numB+(cx-1)] += k
}

// AddVCCS parallel-connects a linear voltage-controlled current source to
// Y/SW-branch by, controlled by the voltage of Y/SW-branch cy. j = k * vc.
func (c *Circuit) AddVCCS(by, cy int, k float64) {
	c.pb[(by-1)*c.numB+(cy-1)] += k
}

// AddDiffCCVS series-connects a differential current-controlled voltage
// source to X3-branch bx, controlled by X-branch cx with initial current
// ic0. u = k * dic/dt. A pair of these between two inductor branches
// models magnetic coupling.
func (c *Circuit) AddDiffCCVS(bx, cx int, k, ic0 float64) {
	i, j := bx-1, cx-1
	b := c.numB
	stp := c.dt
	if c.branches[i].method == BackwardEuler {
		c.pa[i*b+j] += k
		c.pb[i*b+j] += k / stp
		c.qa0[i] -= (k * ic0) / stp
		c.w1o[i] = -1.0 / stp
		c.w2o[i] = 0.0
	} else {
		c.pa[i*b+j] += k
		c.pb[i*b+j] += (2.0 * k) / stp
		c.qa0[i] -= (2.0 * k * ic0) / stp
		c.w1o[i] = -4.0 / stp
		c.w2o[i] = -1.0
	}
}

// AddDiffVCCS parallel-connects a differential voltage-controlled current
// source to Y3-branch by, controlled by Y/SW-branch cy with initial
// voltage vc0. j = k * dvc/dt.
func (c *Circuit) AddDiffVCCS(by, cy int, k, vc0 float64) {
	i, j := by-1, cy-1
	b := c.numB
	stp := c.dt
	if c.branches[i].method == BackwardEuler {
		c.pa[i*b+j] += k
		c.pb[i*b+j] += k / stp
		c.qa0[i] -= (k * vc0) / stp
		c.w1o[i] = -1.0 / stp
		c.w2o[i] = 0.0
	} else {
		c.pa[i*b+j] += k
		c.pb[i*b+j] += (2.0 * k) / stp
		c.qa0[i] -= (2.0 * k * vc0) / stp
		c.w1o[i] = -4.0 / stp
		c.w2o[i] = -1.0
	}
}

// AddIntCCVS series-connects an integral current-controlled voltage source
// to X3-branch bx, controlled by X-branch cx with initial voltage v0.
// u = sum(k * ic * dt).
func (c *Circuit) AddIntCCVS(bx, cx int, k, v0 float64) {
	i, j := bx-1, cx-1
	b := c.numB
	stp := c.dt
	c.pa[i*b+j] += k
	if c.branches[i].method == BackwardEuler {
		c.pb[i*b+j] += k * stp
	} else {
		c.pb[i*b+j] += (k * stp) / 2.0
	}
	c.qa0[i] += v0
	c.w1o[i] = stp
	c.w2o[i] = 1.0
}

// AddIntVCCS parallel-connects an integral voltage-controlled current
// source to Y3-branch by, controlled by Y/SW-branch cy with initial
// current i0. j = sum(k * vc * dt).
func (c *Circuit) AddIntVCCS(by, cy int, k, i0 float64) {
	i, j := by-1, cy-1
	b := c.numB
	stp := c.dt
	c.pa[i*b+j] += k
	if c.branches[i].method == BackwardEuler {
		c.pb[i*b+j] += k * stp
	} else {
		c.pb[i*b+j] += (k * stp) / 2.0
	}
	c.qa0[i] += i0
	c.w1o[i] = stp
	c.w2o[i] = 1.0
}
