// Text codec for the Graph. The format is the minimal line-oriented one the
// surrounding tooling agrees on:
//
//	n m directed_flag
//	u v w        (m lines)
//
// with integer endpoints and a real weight. Undirected graphs persist only
// one direction per edge (the u <= v orientation); Decode re-derives the
// mirror entry through AddEdge.

package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	headerFieldCount = 3 // n, m, directed_flag
	edgeFieldCount   = 3 // u, v, w
)

// Encode writes g to w in the graph text format.
// Complexity: O(n + E).
func (g *Graph) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	flag := 0
	if g.directed {
		flag = 1
	}
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", len(g.adj), g.EdgeCount(), flag); err != nil {
		return fmt.Errorf("core: encode header: %w", err)
	}

	for u, list := range g.adj {
		for _, e := range list {
			// On undirected graphs each edge is stored in both directions;
			// persist only the u <= v orientation.
			if !g.directed && u > e.To {
				continue
			}
			if _, err := fmt.Fprintf(bw, "%d %d %s\n",
				u, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64)); err != nil {
				return fmt.Errorf("core: encode edge %d→%d: %w", u, e.To, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("core: encode flush: %w", err)
	}

	return nil
}

// Decode reads a Graph from r in the graph text format.
//
// Fails with ErrBadFormat (wrapped with line context) on a malformed header,
// a malformed edge line, or fewer edge lines than the header promised.
// Out-of-range endpoints surface as ErrVertexOutOfRange from AddEdge.
//
// Complexity: O(n + m).
func Decode(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		return nil, fmt.Errorf("core: decode: missing header: %w", ErrBadFormat)
	}
	header := strings.Fields(sc.Text())
	if len(header) != headerFieldCount {
		return nil, fmt.Errorf("core: decode: header %q: %w", sc.Text(), ErrBadFormat)
	}
	n, err := strconv.Atoi(header[0])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("core: decode: vertex count %q: %w", header[0], ErrBadFormat)
	}
	m, err := strconv.Atoi(header[1])
	if err != nil || m < 0 {
		return nil, fmt.Errorf("core: decode: edge count %q: %w", header[1], ErrBadFormat)
	}
	flag, err := strconv.Atoi(header[2])
	if err != nil {
		return nil, fmt.Errorf("core: decode: directed flag %q: %w", header[2], ErrBadFormat)
	}

	g := New(n, WithDirected(flag != 0))

	for i := 0; i < m; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("core: decode: edge %d of %d missing: %w", i+1, m, ErrBadFormat)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != edgeFieldCount {
			return nil, fmt.Errorf("core: decode: edge line %q: %w", sc.Text(), ErrBadFormat)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("core: decode: endpoint %q: %w", fields[0], ErrBadFormat)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("core: decode: endpoint %q: %w", fields[1], ErrBadFormat)
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("core: decode: weight %q: %w", fields[2], ErrBadFormat)
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("core: decode: %w", err)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("core: decode: read: %w", err)
	}

	return g, nil
}
