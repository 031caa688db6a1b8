package player

// NavigationGraph answers prev/next questions over a filtered content tree.
// When the backend shipped explicit neighbor ids with a lecture those are
// authoritative; the flattened section order is only a fallback for payloads
// without them. Either way a target that does not exist in the tree resolves
// to 0, so a viewer can never navigate outside what they were served.
type NavigationGraph struct {
	tree  *ContentTree
	order []uint
	index map[uint]int
}

// NewNavigationGraph builds the graph for a tree. A nil tree yields an empty
// graph whose every lookup returns 0.
func NewNavigationGraph(tree *ContentTree) *NavigationGraph {
	g := &NavigationGraph{
		tree:  tree,
		index: make(map[uint]int),
	}
	if tree == nil {
		return g
	}
	for _, lec := range tree.Flatten() {
		g.index[lec.ID] = len(g.order)
		g.order = append(g.order, lec.ID)
	}
	return g
}

// Contains reports whether a lecture id exists in the tree.
func (g *NavigationGraph) Contains(id uint) bool {
	_, ok := g.index[id]
	return ok
}

// Next returns the lecture after the given one, or 0 when there is none.
func (g *NavigationGraph) Next(id uint) uint {
	if lec := g.find(id); lec != nil && lec.Navigation != nil {
		return g.resolve(lec.Navigation.NextLectureID)
	}
	pos, ok := g.index[id]
	if !ok || pos+1 >= len(g.order) {
		return 0
	}
	return g.order[pos+1]
}

// Prev returns the lecture before the given one, or 0 when there is none.
func (g *NavigationGraph) Prev(id uint) uint {
	if lec := g.find(id); lec != nil && lec.Navigation != nil {
		return g.resolve(lec.Navigation.PrevLectureID)
	}
	pos, ok := g.index[id]
	if !ok || pos == 0 {
		return 0
	}
	return g.order[pos-1]
}

func (g *NavigationGraph) find(id uint) *Lecture {
	if g.tree == nil {
		return nil
	}
	return g.tree.Find(id)
}

func (g *NavigationGraph) resolve(id uint) uint {
	if id == 0 || !g.Contains(id) {
		return 0
	}
	return id
}
