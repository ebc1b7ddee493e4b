package cut

// Cut is the result of a CreateCut call: an ordered set of node indices
// covering every path from the claimed root to the primary inputs.
type Cut struct {
	Leaves []uint32
}

// Empty reports whether the cut holds no leaves, i.e. the root claim was
// denied.
func (c Cut) Empty() bool { return len(c.Leaves) == 0 }

// cutState is the mutable working set an Engine grows during expansion.
// leaves preserves insertion order; inSet mirrors it so selectNextFanin
// and push can test membership in O(1). expand0 deliberately does not
// consult inSet — it reads the live mark word, which also covers nodes
// claimed earlier in the same pass.
type cutState struct {
	leaves []uint32
	inSet  map[uint32]bool
}

func newCutState(root uint32) *cutState {
	return &cutState{
		leaves: []uint32{root},
		inSet:  map[uint32]bool{root: true},
	}
}

func (s *cutState) replace(leaves []uint32) {
	s.leaves = leaves
	s.inSet = make(map[uint32]bool, len(leaves))
	for _, l := range leaves {
		s.inSet[l] = true
	}
}

func (s *cutState) push(n uint32) {
	if s.inSet[n] {
		return
	}
	s.leaves = append(s.leaves, n)
	s.inSet[n] = true
}

func (s *cutState) snapshot() []uint32 {
	return append([]uint32(nil), s.leaves...)
}
