package saturate

import (
	"fmt"
	"io"
)

// Entry is one derivation-log record: a formula's parents and the rule
// that produced it (§3 "Derivation log").
type Entry struct {
	Rule    string // "axiom" or "mp"
	Parents []string
}

// Log is the §3/§6 derivation log: an append-only canonical-string keyed
// map of Entry, with an optional io.Writer sink mirroring each admission
// as one `φ mp ψ1 ψ2` / `φ axiom` line (§6 "Derivation log": "an
// in-memory equivalent is acceptable", resolving spec.md §9 Open
// Question (c)).
type Log struct {
	entries map[string]Entry
	order   []string
	sink    io.Writer
}

// NewLog returns an empty Log. sink may be nil, in which case nothing is
// mirrored to a writer.
func NewLog(sink io.Writer) *Log {
	return &Log{entries: make(map[string]Entry), sink: sink}
}

// RecordAxiom appends canonical as an axiom-rule entry.
func (l *Log) RecordAxiom(canonical string) {
	l.record(canonical, Entry{Rule: "axiom"})
}

// RecordMP appends canonical as a modus-ponens-rule entry derived from
// parents (in the order they were combined).
func (l *Log) RecordMP(canonical string, parents ...string) {
	l.record(canonical, Entry{Rule: "mp", Parents: parents})
}

func (l *Log) record(canonical string, e Entry) {
	if _, exists := l.entries[canonical]; exists {
		return
	}
	l.entries[canonical] = e
	l.order = append(l.order, canonical)
	if l.sink != nil {
		fmt.Fprintln(l.sink, formatLine(canonical, e))
	}
}

func formatLine(canonical string, e Entry) string {
	if e.Rule == "axiom" {
		return canonical + " axiom"
	}
	line := canonical + " mp"
	for _, p := range e.Parents {
		line += " " + p
	}
	return line
}

// Lookup returns the Entry recorded for canonical, if any.
func (l *Log) Lookup(canonical string) (Entry, bool) {
	e, ok := l.entries[canonical]
	return e, ok
}

// Order returns the canonical strings in admission order.
func (l *Log) Order() []string {
	return l.order
}
