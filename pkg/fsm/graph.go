package fsm

import (
	"fmt"
	"strings"
)

const defaultGraphName = "FSM"

// defaultFormat renders values with fmt.Sprint: integer-based enum types come
// out as decimal strings, fmt.Stringer implementations as their String().
func defaultFormat[T any](v T) string {
	return fmt.Sprint(v)
}

// escapeLabel makes a value safe inside a double-quoted DOT string.
func escapeLabel(label string) string {
	label = strings.ReplaceAll(label, `\`, `\\`)
	label = strings.ReplaceAll(label, `"`, `\"`)
	return label
}

// DOT renders the transition table as a Graphviz digraph with a
// left-to-right layout, one edge per table entry:
//
//	digraph FSM {
//	  rankdir=LR;
//	  "Red" -> "Green" [label="Timer"];
//	}
//
// Edges appear in first-insertion order, so output is reproducible across
// runs for the same registration sequence. DOT has no side effects and works
// on an empty table (header and footer, zero edges). Rendering the text to
// an image is the caller's job, e.g. piping it to Graphviz:
//
//	dot -Tpng machine.dot -o machine.png
func (m *Machine[S, E, C]) DOT() string {
	var b strings.Builder
	b.WriteString("digraph ")
	b.WriteString(m.graphName)
	b.WriteString(" {\n  rankdir=LR;\n")
	for _, key := range m.order {
		tr := m.table[key]
		b.WriteString("  \"")
		b.WriteString(escapeLabel(m.stateFmt(tr.Src)))
		b.WriteString("\" -> \"")
		b.WriteString(escapeLabel(m.stateFmt(tr.Dst)))
		b.WriteString("\" [label=\"")
		b.WriteString(escapeLabel(m.eventFmt(tr.Event)))
		b.WriteString("\"];\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// Mermaid renders the transition table as a Mermaid stateDiagram-v2, the
// same walk as DOT in the same first-insertion order:
//
//	stateDiagram-v2
//	  Red --> Green : Timer
func (m *Machine[S, E, C]) Mermaid() string {
	var b strings.Builder
	b.WriteString("stateDiagram-v2\n")
	for _, key := range m.order {
		tr := m.table[key]
		b.WriteString("  ")
		b.WriteString(m.stateFmt(tr.Src))
		b.WriteString(" --> ")
		b.WriteString(m.stateFmt(tr.Dst))
		b.WriteString(" : ")
		b.WriteString(m.eventFmt(tr.Event))
		b.WriteByte('\n')
	}
	return b.String()
}
