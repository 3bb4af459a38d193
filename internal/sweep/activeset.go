package sweep

import "github.com/google/btree"

// activeSet is the sweep's set of walls currently straddled by the sweep
// ray, ordered by insertion sequence rather than by any geometric key. The
// sweep uses that order only to break exact distance ties deterministically
// (the earlier-inserted wall wins; see DESIGN.md's Open Question note on
// tiebreaker cycles) — the actual "which active wall is closest" decision
// is a linear scan with distance comparison, done by the sweep itself.
//
// Backed by a github.com/google/btree B-tree keyed by a monotonic sequence
// number, with a companion map from wall index to sequence number so
// removal (keyed by wall index, not sequence) is O(log n) instead of a
// linear search.
type activeSet struct {
	tree    *btree.BTreeG[seqEntry]
	seqOf   map[int]int64
	nextSeq int64
}

type seqEntry struct {
	seq  int64
	wall int
}

func seqLess(a, b seqEntry) bool {
	return a.seq < b.seq
}

func newActiveSet() *activeSet {
	return &activeSet{
		tree:  btree.NewG(32, seqLess),
		seqOf: make(map[int]int64),
	}
}

// insert adds wall to the set if not already present, assigning it the next
// insertion sequence number.
func (s *activeSet) insert(wall int) {
	if _, present := s.seqOf[wall]; present {
		return
	}
	seq := s.nextSeq
	s.nextSeq++
	s.seqOf[wall] = seq
	s.tree.ReplaceOrInsert(seqEntry{seq: seq, wall: wall})
}

// remove drops wall from the set. A no-op if wall was not a member.
func (s *activeSet) remove(wall int) {
	seq, present := s.seqOf[wall]
	if !present {
		return
	}
	delete(s.seqOf, wall)
	s.tree.Delete(seqEntry{seq: seq, wall: wall})
}

// contains reports whether wall is currently active.
func (s *activeSet) contains(wall int) bool {
	_, present := s.seqOf[wall]
	return present
}

// len reports the number of active walls.
func (s *activeSet) len() int {
	return s.tree.Len()
}

// ascend walks the active walls in insertion order, stopping early if fn
// returns false.
func (s *activeSet) ascend(fn func(wall int) bool) {
	s.tree.Ascend(func(e seqEntry) bool {
		return fn(e.wall)
	})
}

// insertedBefore reports whether a was inserted strictly before b. Both
// must currently be members; used by the sweep's tiebreaker.
func (s *activeSet) insertedBefore(a, b int) bool {
	return s.seqOf[a] < s.seqOf[b]
}
