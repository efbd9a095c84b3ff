package netlist

import (
	"fmt"

	"ohmsim/pkg/circuit"
)

// Build replays the deck's statements onto a fresh circuit and stamps it.
func (d *Deck) Build() (*circuit.Circuit, error) {
	if d.Step <= 0 {
		return nil, fmt.Errorf("deck %q has no .tran card", d.Title)
	}
	ckt, err := circuit.New(d.Nodes, d.Branches, d.Meters, d.Step)
	if err != nil {
		return nil, fmt.Errorf("creating circuit: %v", err)
	}
	for _, st := range d.stmts {
		switch st.op {
		case "bran":
			ckt.Branch(st.br, st.n1, st.n2, st.level, st.method)
		case "metv":
			ckt.Voltmeter(st.br, st.n1, st.n2)
		case "meta":
			ckt.Ammeter(st.br, st.ctl)
		case "addx":
			ckt.AddResistor(st.br, st.v[0])
		case "addy":
			ckt.AddConductance(st.br, st.v[0])
		case "addv":
			ckt.AddVoltage(st.br, st.v[0])
		case "addi":
			ckt.AddCurrent(st.br, st.v[0])
		case "addl":
			ckt.AddInductor(st.br, st.v[0], st.v[1])
		case "addc":
			ckt.AddCapacitor(st.br, st.v[0], st.v[1])
		case "addq":
			ckt.AddSeriesCapacitor(st.br, st.v[0], st.v[1])
		case "addp":
			ckt.AddParallelInductor(st.br, st.v[0], st.v[1])
		case "adde":
			ckt.AddVCVS(st.br, st.ctl, st.v[0])
		case "addh":
			ckt.AddCCVS(st.br, st.ctl, st.v[0])
		case "addf":
			ckt.AddCCCS(st.br, st.ctl, st.v[0])
		case "addg":
			ckt.AddVCCS(st.br, st.ctl, st.v[0])
		case "addm":
			ckt.AddDiffCCVS(st.br, st.ctl, st.v[0], st.v[1])
		case "addn":
			ckt.AddDiffVCCS(st.br, st.ctl, st.v[0], st.v[1])
		case "adda":
			ckt.AddIntCCVS(st.br, st.ctl, st.v[0], st.v[1])
		case "addb":
			ckt.AddIntVCCS(st.br, st.ctl, st.v[0], st.v[1])
		case "adds":
			ckt.AddSwitch(st.br, st.v[0], st.v[1], st.v[2], st.v[3])
		}
	}
	ckt.Stamp()
	return ckt, nil
}

// Steps returns the number of fixed steps covering the .tran stop time.
func (d *Deck) Steps() int {
	return int(d.Stop/d.Step + 0.5)
}
