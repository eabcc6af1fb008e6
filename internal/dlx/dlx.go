// Package dlx implements Algorithm X over a dancing-links sparse matrix.
// It is a generic exact-cover engine: columns are constraints identified by
// index, rows are candidate subsets added by the caller. One Problem
// represents one single-threaded search context; it is not safe for
// concurrent use.
package dlx

import "context"

// node/column structures (classic dancing links)
type node struct {
	left, right, up, down *node
	col                   *column
	rowIdx                int
}

type column struct {
	node
	size   int
	name   int
	active bool // whether this constraint column is currently uncovered
}

// Problem is a mutable exact-cover instance. Columns are created up front
// and never added or removed afterward, only logically covered/uncovered
// during search.
type Problem struct {
	cols      []*column
	rowHead   []*node
	sol       []*node
	nodes     int
	activeCnt int // number of active (uncovered) columns
}

// New creates a problem with numCols empty constraint columns.
func New(numCols int) *Problem {
	p := &Problem{cols: make([]*column, numCols)}
	for i := 0; i < numCols; i++ {
		c := &column{name: i, active: true}
		c.up = &c.node
		c.down = &c.node
		p.cols[i] = c
	}
	p.activeCnt = numCols
	p.sol = make([]*node, numCols)
	return p
}

// NumCols returns the number of constraint columns.
func (p *Problem) NumCols() int { return len(p.cols) }

// NumRows returns the number of candidate rows added so far.
func (p *Problem) NumRows() int { return len(p.rowHead) }

// Nodes returns the number of row trials performed by searches so far.
func (p *Problem) Nodes() int { return p.nodes }

// AddRow adds a candidate row intersecting the given columns and returns
// its row index. Column indices must be distinct and in range; rows must be
// added before searching.
func (p *Problem) AddRow(cols ...int) int {
	row := len(p.rowHead)
	var first, prev *node
	for _, colID := range cols {
		col := p.cols[colID]
		n := &node{col: col, rowIdx: row}
		// vertical insert (at bottom)
		n.down = &col.node
		n.up = col.node.up
		col.node.up.down = n
		col.node.up = n
		col.size++
		// horizontal ring for the nodes of the row
		if first == nil {
			first = n
			n.left = n
			n.right = n
		} else {
			n.left = prev
			n.right = prev.right
			prev.right.left = n
			prev.right = n
		}
		prev = n
	}
	p.rowHead = append(p.rowHead, first)
	return row
}

// cover detaches every row containing col from all of its other columns and
// marks col inactive. The covered column's own vertical list is retained
// intact so the matching uncover can restore it.
func cover(col *column, p *Problem) {
	if col.active {
		col.active = false
		p.activeCnt--
	}
	for i := col.down; i != &col.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

// uncover exactly reverses the last unmatched cover of col. Covers and
// uncovers must pair up in strict LIFO order; the reversed iteration
// direction here is what makes the splices restore the prior state.
func uncover(col *column, p *Problem) {
	for i := col.up; i != &col.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		p.activeCnt++
	}
}

// chooseColumn returns the active column with the smallest size, ties
// broken by declaration order. Minimizing the branching factor this way is
// what keeps the search tractable.
func chooseColumn(p *Problem) *column {
	var best *column
	for _, c := range p.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

// Search runs the exact-cover search. Every complete cover is passed to
// emit as the list of selected row indices in selection order; emit returns
// true to stop the search (first-solution mode) or false to keep searching
// for more covers. Search returns true if emit stopped it.
//
// After Search returns, the structure is restored to its pre-search state,
// so a Problem can be searched repeatedly.
func (p *Problem) Search(ctx context.Context, emit func(rows []int) bool) bool {
	return p.search(ctx, 0, emit)
}

func (p *Problem) search(ctx context.Context, k int, emit func(rows []int) bool) bool {
	// cancellation check
	select {
	case <-ctx.Done():
		return true // stop search
	default:
	}
	// all constraints covered → solution
	if p.activeCnt == 0 {
		rows := make([]int, k)
		for i := 0; i < k; i++ {
			rows[i] = p.sol[i].rowIdx
		}
		return emit(rows)
	}

	c := chooseColumn(p)
	if c == nil || c.size == 0 {
		return false // dead branch
	}
	cover(c, p)
	for r := c.down; r != &c.node; r = r.down {
		p.nodes++
		p.sol[k] = r
		// cover the other columns of this row
		for j := r.right; j != r; j = j.right {
			cover(j.col, p)
		}
		if p.search(ctx, k+1, emit) {
			// back out coverings done for this row before exiting
			for j := r.left; j != r; j = j.left {
				uncover(j.col, p)
			}
			uncover(c, p)
			return true
		}
		// backtrack: uncover in reverse order
		for j := r.left; j != r; j = j.left {
			uncover(j.col, p)
		}
	}
	uncover(c, p)
	return false
}
