package circuit

// AddSwitch parallel-connects a two-state switch to SW-branch bs. k1 and
// k2 shape the closed- and open-state associated-source updates, ysw is
// the switch conductance (must be nonzero) and ron a series on-resistance
// (may be zero):
//
//	ja(t+dt) = k1*ysw*v(t) + i(t)        closed
//	ja(t+dt) = -ysw*v(t) + k2*i(t)       open
//
// For a switch with known rated voltage V and current I, k1 = 1,
// k2 = 0.6569 and ysw = 0.2929*I/V behave well. Switches start open; flip
// them with SetSwitch and settle with SettleSwitch.
func (c *Circuit) AddSwitch(bs int, k1, k2, ysw, ron float64) {
	i := bs - 1
	b := c.numB
	tau := 1.0 + ysw*ron
	c.pb[i*b+i] += ysw / tau
	c.w1c[i] = (k1 + 1.0) * ysw / (tau * tau)
	c.w2c[i] = (1.0 - k1*ysw*ron) / tau
	c.w1o[i] = (k2 - 1.0) * ysw / (tau * tau)
	c.w2o[i] = (k2 + ysw*ron) / tau
}
