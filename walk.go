// walk.go — traversal over a failure's attached tree.
//
// Traversal semantics:
//   - Walk:    pre-order DFS (visit, then children in insertion order). Stops
//              early when visit returns false.
//   - Flatten: leaves only (no attached set, or an empty one), DFS order.
//   - Find:    first node in pre-order with a given id.
//
// Construction builds trees, not graphs, so there is no cycle detection; a
// depth cap guards against runaway custom implementations.
package failure

const maxWalkDepth = 1 << 12

// Walk calls visit for f and every failure attached below it, depth-first,
// parents before children. depth is 0 for f itself. A nil f or visit is a
// no-op.
func Walk(f Failure, visit func(f Failure, depth int) bool) {
	if f == nil || visit == nil {
		return
	}
	type frame struct {
		f     Failure
		depth int
	}
	stack := []frame{{f: f}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur.f, cur.depth) {
			return
		}
		if cur.depth+1 >= maxWalkDepth {
			continue
		}
		attached, ok := cur.f.Attached()
		if !ok {
			continue
		}
		// Push in reverse so children pop in insertion order.
		kids := attached.Slice()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{f: kids[i], depth: cur.depth + 1})
		}
	}
}

// Flatten returns the leaves of f's tree in depth-first order. A failure
// without attached failures is its own single leaf. Flatten(nil) is nil.
func Flatten(f Failure) []Failure {
	var out []Failure
	Walk(f, func(n Failure, _ int) bool {
		if attached, ok := n.Attached(); !ok || attached.Len() == 0 {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Find returns the first failure in f's tree, in pre-order, whose id is id.
func Find(f Failure, id string) (Failure, bool) {
	var found Failure
	Walk(f, func(n Failure, _ int) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}
