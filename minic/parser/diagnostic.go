package parser

import (
	"fmt"
	"strconv"
)

// Kind classifies a syntax diagnostic.
type Kind int

const (
	// Mismatch: the stack expected one terminal and the input held another.
	Mismatch Kind = iota + 1
	// Abandoned: a construct was given up at one of its follow terminals.
	Abandoned
	// Unexpected: a token was skipped because nothing on the stack could use it.
	Unexpected
	// Stalled: the step budget ran out. Always the last diagnostic.
	Stalled
)

var kindNames = map[Kind]string{
	Mismatch:   "mismatch",
	Abandoned:  "abandoned",
	Unexpected: "unexpected",
	Stalled:    "stalled",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Code returns the stable diagnostic code, S001 through S004.
func (k Kind) Code() string {
	if _, ok := kindNames[k]; !ok {
		return "S000"
	}
	return fmt.Sprintf("S%03d", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Diagnostic is one syntax violation. Line and Column are those of the
// offending token; both are -1 when the token is the end of input.
type Diagnostic struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

// AtEnd reports whether the diagnostic points at the end of input.
func (d Diagnostic) AtEnd() bool {
	return d.Line < 0
}

func (d Diagnostic) String() string {
	if d.AtEnd() {
		return "end of input: " + d.Message
	}
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
}

// Collector accumulates diagnostics in detection order. It never drops
// or reorders entries.
type Collector struct {
	diags []Diagnostic
}

func (c *Collector) Add(d Diagnostic) {
	c.diags = append(c.diags, d)
}

func (c *Collector) Len() int {
	return len(c.diags)
}

// Diagnostics returns a copy of the collected diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Result is the outcome of one parse.
type Result struct {
	// Accepted is true iff the driver reached the accept state and
	// reported nothing.
	Accepted    bool         `json:"accepted" yaml:"accepted"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
	// Steps counts driver iterations, including discarded tokens.
	Steps int `json:"steps" yaml:"steps"`
}
