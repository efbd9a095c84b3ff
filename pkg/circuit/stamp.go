package circuit

import "ohmsim/pkg/matrix"

// Stamp assembles the augmented nodal matrix, inverts it and reduces the
// branch-level coefficient matrices to the compact runtime operators C and
// D, cutting level-0 branches along the way. Setup storage is released
// before Stamp returns and the circuit is left in its reset state.
func (c *Circuit) Stamp() {
	n, b, m, x := c.numN, c.numB, c.numM, c.numX
	nx := n + x

	// Stamp Pb into the augmented nodal matrix Pn. Y-branch rows
	// contribute to the KCL equations at their endpoints; X-branches get
	// a KVL row at their auxiliary index. Ground endpoints drop out.
	pn := make([]float64, nx*nx)
	for i := 0; i < b; i++ {
		br := &c.branches[i]
		n1, n2 := br.n1, br.n2
		if br.aux < 0 {
			for j := 0; j < b; j++ {
				k := c.pb[i*b+j]
				cb := &c.branches[j]
				if cb.aux < 0 {
					if n1 >= 0 && cb.n1 >= 0 {
						pn[n1*nx+cb.n1] += k
					}
					if n1 >= 0 && cb.n2 >= 0 {
						pn[n1*nx+cb.n2] -= k
					}
					if n2 >= 0 && cb.n1 >= 0 {
						pn[n2*nx+cb.n1] -= k
					}
					if n2 >= 0 && cb.n2 >= 0 {
						pn[n2*nx+cb.n2] += k
					}
				} else {
					if n1 >= 0 {
						pn[n1*nx+n+cb.aux] += k
					}
					if n2 >= 0 {
						pn[n2*nx+n+cb.aux] -= k
					}
				}
			}
		} else {
			r := n + br.aux
			if n1 >= 0 {
				pn[n1*nx+r] += 1.0
				pn[r*nx+n1] += 1.0
			}
			if n2 >= 0 {
				pn[n2*nx+r] -= 1.0
				pn[r*nx+n2] -= 1.0
			}
			for j := 0; j < b; j++ {
				k := c.pb[i*b+j]
				cb := &c.branches[j]
				if cb.aux < 0 {
					if cb.n1 >= 0 {
						pn[r*nx+cb.n1] -= k
					}
					if cb.n2 >= 0 {
						pn[r*nx+cb.n2] += k
					}
				} else {
					pn[r*nx+n+cb.aux] -= k
				}
			}
		}
	}
	matrix.Inv(nx, pn)

	// Ptp = Pn⁻¹ · Tn, where column j of Tn carries branch j's right-hand
	// contribution: ∓1 at the endpoints for Y-branches, +1 at the
	// auxiliary row for X-branches.
	ptp := make([]float64, nx*b)
	for i := 0; i < nx; i++ {
		for j := 0; j < b; j++ {
			cb := &c.branches[j]
			if cb.aux < 0 {
				if cb.n1 >= 0 {
					ptp[i*b+j] -= pn[i*nx+cb.n1]
				}
				if cb.n2 >= 0 {
					ptp[i*b+j] += pn[i*nx+cb.n2]
				}
			} else {
				ptp[i*b+j] += pn[i*nx+n+cb.aux]
			}
		}
	}
	pn = nil

	// Ttp maps solutions back onto branches: endpoint difference of Ptp
	// rows for Y-branches, the auxiliary Ptp row for X-branches.
	ttp := make([]float64, b*b)
	for i := 0; i < b; i++ {
		br := &c.branches[i]
		if br.aux < 0 {
			if br.n1 >= 0 {
				for j := 0; j < b; j++ {
					ttp[i*b+j] += ptp[br.n1*b+j]
				}
			}
			if br.n2 >= 0 {
				for j := 0; j < b; j++ {
					ttp[i*b+j] -= ptp[br.n2*b+j]
				}
			}
		} else {
			for j := 0; j < b; j++ {
				ttp[i*b+j] += ptp[(n+br.aux)*b+j]
			}
		}
	}

	ctp := make([]float64, b*b)
	rtp := make([]float64, b*b)
	matrix.Mul(b, ctp, c.pa, ttp)
	matrix.Mul(b, rtp, c.pb, ttp)
	for i := 0; i < b; i++ {
		rtp[i*b+i] += 1.0
	}

	// Meter rows: an ammeter on a Y-branch reads through Rtp, on an
	// X-branch through the auxiliary Ptp row; a voltmeter is an endpoint
	// difference of Ptp rows.
	dtp := make([]float64, m*b)
	for i := 0; i < m; i++ {
		mt := &c.meters[i]
		if mt.ammeter {
			k := mt.branch
			if c.branches[k].aux < 0 {
				for j := 0; j < b; j++ {
					dtp[i*b+j] += rtp[k*b+j]
				}
			} else {
				for j := 0; j < b; j++ {
					dtp[i*b+j] += ptp[(n+c.branches[k].aux)*b+j]
				}
			}
		} else {
			if mt.n1 >= 0 {
				for j := 0; j < b; j++ {
					dtp[i*b+j] += ptp[mt.n1*b+j]
				}
			}
			if mt.n2 >= 0 {
				for j := 0; j < b; j++ {
					dtp[i*b+j] -= ptp[mt.n2*b+j]
				}
			}
		}
	}

	// Cut level-0 branches and assign compact runtime slots.
	cc := 0
	for i := range c.branches {
		if c.branches[i].level.isCut() {
			c.branches[i].slot = -1
		} else {
			c.branches[i].slot = cc
			cc++
		}
	}
	c.numC = cc

	// Compress Ctp and Dtp by deleting cut rows and columns.
	c.cmat = make([]float64, cc*cc)
	c.dmat = make([]float64, m*cc)
	for i := 0; i < m; i++ {
		jdx := 0
		for j := 0; j < b; j++ {
			if c.branches[j].slot < 0 {
				continue
			}
			c.dmat[i*cc+jdx] = dtp[i*b+j]
			jdx++
		}
	}
	idx := 0
	for i := 0; i < b; i++ {
		if c.branches[i].slot < 0 {
			continue
		}
		jdx := 0
		for j := 0; j < b; j++ {
			if c.branches[j].slot < 0 {
				continue
			}
			c.cmat[idx*cc+jdx] = ctp[i*b+j]
			jdx++
		}
		idx++
	}

	c.w1m = make([]float64, cc)
	c.w2m = make([]float64, cc)
	c.w1s = make([]float64, cc)
	c.w2s = make([]float64, cc)
	c.qa = make([]float64, cc)
	c.qs = make([]float64, cc)
	c.qtp = make([]float64, cc)
	c.xc = make([]float64, cc)
	c.xm = make([]float64, m)

	// The setup group is consumed; only per-branch companion data stays.
	c.pa = nil
	c.pb = nil
	c.meters = nil
	c.stamped = true
	c.Reset()
}
