// Package netlist parses branch-oriented circuit decks. A deck is line
// oriented: the first line is the title, lines starting with "*" are
// comments, and every other line is one statement. Statements mirror the
// circuit-building API:
//
//	bran br n1 n2 level [be|tr]
//	metv mt n1 n2
//	meta mt br
//	addx|addy|addv|addi br value
//	addl|addc|addq|addp br value init
//	adde|addh|addf|addg br ctl k
//	addm|addn|adda|addb br ctl k init
//	adds br k1 k2 ysw ron
//	src  br dc|sin|pulse|pwl params...
//	.tran step stop [settle]
//
// Numeric values accept SPICE-style unit suffixes (k, meg, u, n, ...).
package netlist

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"ohmsim/pkg/circuit"
	"ohmsim/pkg/source"
)

// Deck is a parsed netlist, ready to build into a stamped circuit.
type Deck struct {
	Title    string
	Nodes    int
	Branches int
	Meters   int
	Step     float64 // .tran time step
	Stop     float64 // .tran stop time
	Settle   int     // switch settling iterations per state change
	Waves    map[int]source.Waveform

	stmts []statement
}

type statement struct {
	op     string
	br     int // branch or meter index
	ctl    int // controlling branch, or the measured branch of meta
	n1, n2 int
	level  circuit.Level
	method circuit.Method
	v      [4]float64
}

var unitMap = map[string]float64{
	"t":   1e12,
	"g":   1e9,
	"meg": 1e6,
	"k":   1e3,
	"m":   1e-3,
	"u":   1e-6,
	"n":   1e-9,
	"p":   1e-12,
	"f":   1e-15,
}

var levelMap = map[string]circuit.Level{
	"x0": circuit.X0, "x1": circuit.X1, "x2": circuit.X2, "x3": circuit.X3,
	"y0": circuit.Y0, "y1": circuit.Y1, "y2": circuit.Y2, "y3": circuit.Y3,
	"sw": circuit.SW,
}

// Parse reads a deck from its textual form.
func Parse(input string) (*Deck, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	deck := &Deck{
		Settle: 10,
		Waves:  make(map[int]source.Waveform),
	}

	if scanner.Scan() {
		deck.Title = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(scanner.Text()), "*"))
	}

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "*") {
			continue
		}
		if err := deck.parseLine(line); err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
	}
	return deck, nil
}

func (d *Deck) parseLine(line string) error {
	fields := strings.Fields(strings.ToLower(line))
	op := fields[0]
	args := fields[1:]

	switch op {
	case ".tran":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf(".tran wants step stop [settle], got %d fields", len(args))
		}
		step, err := parseValue(args[0])
		if err != nil {
			return err
		}
		stop, err := parseValue(args[1])
		if err != nil {
			return err
		}
		if step <= 0 || stop <= 0 {
			return fmt.Errorf(".tran step and stop must be positive")
		}
		d.Step, d.Stop = step, stop
		if len(args) == 3 {
			settle, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("bad settle count %q", args[2])
			}
			d.Settle = settle
		}
		return nil

	case "bran":
		if len(args) != 4 && len(args) != 5 {
			return fmt.Errorf("bran wants br n1 n2 level [be|tr]")
		}
		br, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		n1, err := parseNode(args[1])
		if err != nil {
			return err
		}
		n2, err := parseNode(args[2])
		if err != nil {
			return err
		}
		level, ok := levelMap[args[3]]
		if !ok {
			return fmt.Errorf("unknown branch level %q", args[3])
		}
		method := circuit.Trapezoidal
		if len(args) == 5 {
			switch args[4] {
			case "tr":
			case "be":
				method = circuit.BackwardEuler
			default:
				return fmt.Errorf("unknown integration method %q", args[4])
			}
		}
		d.seeBranch(br)
		d.seeNode(n1)
		d.seeNode(n2)
		d.stmts = append(d.stmts, statement{op: op, br: br, n1: n1, n2: n2, level: level, method: method})
		return nil

	case "metv":
		if len(args) != 3 {
			return fmt.Errorf("metv wants mt n1 n2")
		}
		mt, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		n1, err := parseNode(args[1])
		if err != nil {
			return err
		}
		n2, err := parseNode(args[2])
		if err != nil {
			return err
		}
		d.seeMeter(mt)
		d.seeNode(n1)
		d.seeNode(n2)
		d.stmts = append(d.stmts, statement{op: op, br: mt, n1: n1, n2: n2})
		return nil

	case "meta":
		if len(args) != 2 {
			return fmt.Errorf("meta wants mt br")
		}
		mt, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		br, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		d.seeMeter(mt)
		d.seeBranch(br)
		d.stmts = append(d.stmts, statement{op: op, br: mt, ctl: br})
		return nil

	case "addx", "addy", "addv", "addi":
		return d.parseValueStmt(op, args, 1)
	case "addl", "addc", "addq", "addp":
		return d.parseValueStmt(op, args, 2)
	case "adds":
		return d.parseValueStmt(op, args, 4)

	case "adde", "addh", "addf", "addg":
		return d.parseControlledStmt(op, args, 1)
	case "addm", "addn", "adda", "addb":
		return d.parseControlledStmt(op, args, 2)

	case "src":
		return d.parseSource(args)
	}
	return fmt.Errorf("unknown statement %q", op)
}

func (d *Deck) parseValueStmt(op string, args []string, nvals int) error {
	if len(args) != 1+nvals {
		return fmt.Errorf("%s wants br and %d value(s)", op, nvals)
	}
	br, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	st := statement{op: op, br: br}
	for i := 0; i < nvals; i++ {
		if st.v[i], err = parseValue(args[1+i]); err != nil {
			return err
		}
	}
	d.seeBranch(br)
	d.stmts = append(d.stmts, st)
	return nil
}

func (d *Deck) parseControlledStmt(op string, args []string, nvals int) error {
	if len(args) != 2+nvals {
		return fmt.Errorf("%s wants br ctl and %d value(s)", op, nvals)
	}
	br, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	ctl, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	st := statement{op: op, br: br, ctl: ctl}
	for i := 0; i < nvals; i++ {
		if st.v[i], err = parseValue(args[2+i]); err != nil {
			return err
		}
	}
	d.seeBranch(br)
	d.seeBranch(ctl)
	d.stmts = append(d.stmts, st)
	return nil
}

func (d *Deck) parseSource(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("src wants br kind params")
	}
	br, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	params := make([]float64, len(args)-2)
	for i, s := range args[2:] {
		if params[i], err = parseValue(s); err != nil {
			return err
		}
	}
	var w source.Waveform
	switch kind := args[1]; kind {
	case "dc":
		if len(params) != 1 {
			return fmt.Errorf("src dc wants value")
		}
		w = source.DC{Value: params[0]}
	case "sin":
		if len(params) != 4 {
			return fmt.Errorf("src sin wants offset amplitude freq phase")
		}
		w = source.Sin{Offset: params[0], Amplitude: params[1], Freq: params[2], Phase: params[3]}
	case "pulse":
		if len(params) != 7 {
			return fmt.Errorf("src pulse wants v1 v2 delay rise fall width period")
		}
		w = source.Pulse{V1: params[0], V2: params[1], Delay: params[2],
			Rise: params[3], Fall: params[4], Width: params[5], Period: params[6]}
	case "pwl":
		if len(params) < 2 || len(params)%2 != 0 {
			return fmt.Errorf("src pwl wants time/value pairs")
		}
		pwl := source.PWL{}
		for i := 0; i < len(params); i += 2 {
			pwl.Times = append(pwl.Times, params[i])
			pwl.Values = append(pwl.Values, params[i+1])
		}
		w = pwl
	default:
		return fmt.Errorf("unknown source kind %q", kind)
	}
	d.seeBranch(br)
	d.Waves[br] = w
	return nil
}

func (d *Deck) seeBranch(br int) {
	if br > d.Branches {
		d.Branches = br
	}
}

func (d *Deck) seeMeter(mt int) {
	if mt > d.Meters {
		d.Meters = mt
	}
}

func (d *Deck) seeNode(n int) {
	if n > d.Nodes {
		d.Nodes = n
	}
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("bad index %q", s)
	}
	return n, nil
}

func parseNode(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bad node %q", s)
	}
	return n, nil
}

// parseValue handles plain floats plus SPICE unit suffixes. "meg" is
// matched before the single-character suffixes, which look only at the
// last character, so its trailing "g" is not taken as giga.
func parseValue(s string) (float64, error) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	num, mult := s, 1.0
	if strings.HasSuffix(s, "meg") {
		num, mult = strings.TrimSuffix(s, "meg"), 1e6
	} else if m, ok := unitMap[s[len(s)-1:]]; ok {
		num, mult = s[:len(s)-1], m
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("bad value %q", s)
	}
	return v * mult, nil
}
