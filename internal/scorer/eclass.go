package scorer

// classMerger tracks which equivalence-class ids have become
// interchangeable because distinct judged records collapsed onto one
// response key. It is a union-find whose roots are always the smallest
// id in each group, so Find doubles as "normalized representative".
type classMerger struct {
	parent map[int]int
}

func newClassMerger() *classMerger {
	return &classMerger{parent: make(map[int]int)}
}

// Find returns the normalized representative of class id: the smallest
// id in its merged group. Ids never merged are their own
// representative.
func (m *classMerger) Find(id int) int {
	root := id
	for {
		p, ok := m.parent[root]
		if !ok || p == root {
			break
		}
		root = p
	}
	// path compression
	for id != root {
		next := m.parent[id]
		m.parent[id] = root
		id = next
	}
	return root
}

// Union declares a and b interchangeable. The smaller root wins so the
// representative of any group is its numerically smallest member.
func (m *classMerger) Union(a, b int) {
	ra, rb := m.Find(a), m.Find(b)
	if ra == rb {
		return
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	m.parent[rb] = ra
}

// NormalizeSet rewrites every member of set to its representative in
// place. Merged members collapse, so the set can shrink. Idempotent.
func (m *classMerger) NormalizeSet(set map[int]struct{}) {
	if set == nil {
		return
	}
	var stale []int
	for id := range set {
		if m.Find(id) != id {
			stale = append(stale, id)
		}
	}
	for _, id := range stale {
		delete(set, id)
		set[m.Find(id)] = struct{}{}
	}
}
