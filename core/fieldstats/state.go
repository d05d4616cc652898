package fieldstats

// State is the render variant of a card, computed once from a record.
type State int

const (
	StateEmpty State = iota
	StateDataOnly
	StateDataWithRange
	StateDataWithTopHits
	StateDataWithRangeAndTopHits
)

// Classify maps a record onto its render state. A zero count always yields
// StateEmpty regardless of any range or top values that may be attached.
func Classify(r *Record) State {
	if r.Count == 0 {
		return StateEmpty
	}

	switch {
	case r.HasMedian() && r.HasTopHits():
		return StateDataWithRangeAndTopHits
	case r.HasMedian():
		return StateDataWithRange
	case r.HasTopHits():
		return StateDataWithTopHits
	default:
		return StateDataOnly
	}
}

// HasData reports whether document and distinct counts are shown.
func (s State) HasData() bool {
	return s != StateEmpty
}

// HasRange reports whether the min/median/max block is shown.
func (s State) HasRange() bool {
	return s == StateDataWithRange || s == StateDataWithRangeAndTopHits
}

// HasTopHits reports whether the top values block is shown.
func (s State) HasTopHits() bool {
	return s == StateDataWithTopHits || s == StateDataWithRangeAndTopHits
}

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateDataOnly:
		return "data"
	case StateDataWithRange:
		return "data+range"
	case StateDataWithTopHits:
		return "data+top_hits"
	case StateDataWithRangeAndTopHits:
		return "data+range+top_hits"
	default:
		return "unknown"
	}
}
