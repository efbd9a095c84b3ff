package circuit

// AddResistor series-connects a resistance to X-branch bx (any X level).
// u = res * i.
func (c *Circuit) AddResistor(bx int, res float64) {
	i := bx - 1
	c.pb[i*c.numB+i] += res
}

// AddConductance parallel-connects a conductance to Y/SW-branch by.
// j = con * v.
func (c *Circuit) AddConductance(by int, con float64) {
	i := by - 1
	c.pb[i*c.numB+i] += con
}

// AddVoltage series-connects an ideal voltage source to X-branch bx
// (X1 or higher). u = vol. The value becomes the branch's initial
// independent source and can be replaced per step with SetSource.
func (c *Circuit) AddVoltage(bx int, vol float64) {
	c.qs0[bx-1] += vol
}

// AddCurrent parallel-connects an ideal current source to Y/SW-branch by
// (Y1 or higher). j = cur.
func (c *Circuit) AddCurrent(by int, cur float64) {
	c.qs0[by-1] += cur
}
