package circuit

// Branch anchors branch br between nodes n1 and n2 and fixes its level and
// integration method. Nodes are 1-based, 0 is ground. Each branch must be
// configured exactly once, before any element is added to it.
func (c *Circuit) Branch(br, n1, n2 int, level Level, method Method) {
	i := br - 1
	b := c.numB
	cb := &c.branches[i]
	cb.n1 = n1 - 1
	cb.n2 = n2 - 1
	cb.level = level
	cb.method = method
	if level.isCurrent() {
		cb.aux = c.numX
		c.numX++
	} else {
		cb.aux = -1
	}
	if !level.isOrder3() {
		c.pa[i*b+i] = 1.0 // Xc is direct branch current or voltage
	}
}

// Voltmeter configures meter mt to read the voltage from node n1 to n2.
func (c *Circuit) Voltmeter(mt, n1, n2 int) {
	c.meters[mt-1] = meter{n1: n1 - 1, n2: n2 - 1}
}

// Ammeter configures meter mt to read the current of branch br.
func (c *Circuit) Ammeter(mt, br int) {
	c.meters[mt-1] = meter{ammeter: true, branch: br - 1}
}
