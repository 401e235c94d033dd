package menu

// The structural diff is keyed by SectionID and delivered in four phases so
// a listener mirroring the list stays index-coherent throughout: removals
// first (descending index, one callback per contiguous run), then
// insertions (ascending, batched the same way), then moves (one callback
// each, fixing positions left to right), then content changes at final
// indices (ascending, batched).

type opKind int

const (
	opInsert opKind = iota
	opRemove
	opMove
	opChange
)

type change struct {
	kind  opKind
	index int // insert/remove/change position; move origin
	to    int // move destination
	count int
}

func diff(old, new []Section) []change {
	oldByID := make(map[SectionID]Section, len(old))
	for _, s := range old {
		oldByID[s.ID] = s
	}
	newIndex := make(map[SectionID]int, len(new))
	for i, s := range new {
		newIndex[s.ID] = i
	}

	var ops []change

	// Working mirror of the listener's view, by ID.
	mirror := make([]SectionID, len(old))
	for i, s := range old {
		mirror[i] = s.ID
	}

	// Phase 1: removals, descending, batched per contiguous run.
	for i := len(mirror) - 1; i >= 0; {
		if _, kept := newIndex[mirror[i]]; kept {
			i--
			continue
		}
		j := i
		for j-1 >= 0 {
			if _, kept := newIndex[mirror[j-1]]; kept {
				break
			}
			j--
		}
		ops = append(ops, change{kind: opRemove, index: j, count: i - j + 1})
		mirror = append(mirror[:j], mirror[i+1:]...)
		i = j - 1
	}

	// Phase 2: insertions, ascending, batched per contiguous run.
	for i := 0; i < len(new); {
		if _, existed := oldByID[new[i].ID]; existed {
			i++
			continue
		}
		j := i
		for j+1 < len(new) {
			if _, existed := oldByID[new[j+1].ID]; existed {
				break
			}
			j++
		}
		count := j - i + 1
		ops = append(ops, change{kind: opInsert, index: i, count: count})
		inserted := make([]SectionID, count)
		for k := 0; k < count; k++ {
			inserted[k] = new[i+k].ID
		}
		rest := append([]SectionID(nil), mirror[i:]...)
		mirror = append(append(mirror[:i], inserted...), rest...)
		i = j + 1
	}

	// Phase 3: moves, fixing each slot left to right.
	for i := 0; i < len(new); i++ {
		if mirror[i] == new[i].ID {
			continue
		}
		from := -1
		for j := i + 1; j < len(mirror); j++ {
			if mirror[j] == new[i].ID {
				from = j
				break
			}
		}
		if from < 0 {
			continue // unreachable once phases 1-2 ran
		}
		ops = append(ops, change{kind: opMove, index: from, to: i})
		id := mirror[from]
		mirror = append(mirror[:from], mirror[from+1:]...)
		rest := append([]SectionID(nil), mirror[i:]...)
		mirror = append(append(mirror[:i], id), rest...)
	}

	// Phase 4: content changes at final indices, ascending, batched.
	for i := 0; i < len(new); {
		prev, existed := oldByID[new[i].ID]
		if !existed || sectionsEqual(prev, new[i]) {
			i++
			continue
		}
		j := i
		for j+1 < len(new) {
			p, ok := oldByID[new[j+1].ID]
			if !ok || sectionsEqual(p, new[j+1]) {
				break
			}
			j++
		}
		ops = append(ops, change{kind: opChange, index: i, count: j - i + 1})
		i = j + 1
	}

	return ops
}
