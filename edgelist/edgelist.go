package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pqpath/core"
)

// ErrMalformedLine indicates a weight token that is not a number, or input
// that ends in the middle of a triple.
var ErrMalformedLine = errors.New("edgelist: malformed input")

// commentMarker starts a comment that runs to the end of the line.
const commentMarker = "#"

// maxLineBytes caps one physical line. Whole edge lists often arrive on a
// single line, so the cap is far above bufio's 64 KiB default.
const maxLineBytes = 256 << 20

// token is one whitespace-delimited word and the line it came from.
type token struct {
	text string
	line int
}

// Read consumes whitespace-delimited (from, to, weight) triples from r and
// returns the graph they describe. Triples may be split across lines in any
// layout. Self-loops are accepted; opts are applied after that default, so
// core.WithDirected(true) switches to one-way edges.
//
// The first bad triple aborts the read. Errors name the 1-based triple index
// and the line of its weight token, and wrap ErrMalformedLine or the core
// sentinel (core.ErrNegativeWeight, core.ErrBadWeight).
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	all := make([]core.GraphOption, 0, len(opts)+1)
	all = append(all, core.WithLoops())
	all = append(all, opts...)
	g := core.NewGraph(all...)

	var (
		pending = make([]token, 0, 3)
		triple  int
		line    int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.Index(text, commentMarker); i >= 0 {
			text = text[:i]
		}
		for _, word := range strings.Fields(text) {
			pending = append(pending, token{text: word, line: line})
			if len(pending) < 3 {
				continue
			}
			triple++
			if err := addTriple(g, pending, triple); err != nil {
				return nil, err
			}
			pending = pending[:0]
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: reading input: %w", err)
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("%w: triple %d (line %d): expected 3 fields, got %d",
			ErrMalformedLine, triple+1, pending[len(pending)-1].line, len(pending))
	}

	return g, nil
}

// Parse is Read over an in-memory string.
func Parse(s string, opts ...core.GraphOption) (*core.Graph, error) {
	return Read(strings.NewReader(s), opts...)
}

func addTriple(g *core.Graph, t []token, n int) error {
	from, to, wt := t[0], t[1], t[2]
	w, err := strconv.ParseFloat(wt.text, 64)
	if err != nil {
		return fmt.Errorf("%w: triple %d (line %d): weight %q is not a number",
			ErrMalformedLine, n, wt.line, wt.text)
	}
	if err = g.AddEdge(from.text, to.text, w); err != nil {
		return fmt.Errorf("edgelist: triple %d (line %d): %w", n, wt.line, err)
	}

	return nil
}

// Write emits g as triples, one per line, in vertex then neighbor order.
// An undirected edge is written once, from its lexicographically smaller
// endpoint. Reading the output back with the same direction option
// reproduces the graph's edges.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	directed := g.Directed()
	for _, from := range g.Vertices() {
		nbrs, err := g.Neighbors(from)
		if err != nil {
			return fmt.Errorf("edgelist: %w", err)
		}
		for _, to := range nbrs {
			if !directed && to < from {
				continue
			}
			wt, err := g.Weight(from, to)
			if err != nil {
				return fmt.Errorf("edgelist: %w", err)
			}
			if _, err = fmt.Fprintf(bw, "%s %s %s\n", from, to, strconv.FormatFloat(wt, 'g', -1, 64)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
