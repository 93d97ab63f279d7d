package knapsack

// AdmissibilityPolicy tracks catalog-level availability of items.
// Weight feasibility is the environment's concern, not the policy's.
type AdmissibilityPolicy interface {
	// Admissible reports whether the item can still be drawn from the
	// catalog
	Admissible(item int) bool
	// Commit records an accepted placement of the item
	Commit(item int)
	// Reset restores availability to the episode-start snapshot
	Reset()
}

// unlimitedItems never exhausts
type unlimitedItems struct{}

var _ AdmissibilityPolicy = unlimitedItems{}

func (unlimitedItems) Admissible(item int) bool { return true }
func (unlimitedItems) Commit(item int)          {}
func (unlimitedItems) Reset()                   {}

// limitedItems tracks a per-item remaining count, restored from an
// owned template on every reset
type limitedItems struct {
	limits    []int
	limitInit []int
}

var _ AdmissibilityPolicy = &limitedItems{}

func newLimitedItems(limitInit []int) *limitedItems {
	l := &limitedItems{
		limits:    make([]int, len(limitInit)),
		limitInit: limitInit,
	}
	copy(l.limits, l.limitInit)
	return l
}

func (l *limitedItems) Admissible(item int) bool {
	return l.limits[item] > 0
}

func (l *limitedItems) Commit(item int) {
	l.limits[item]--
}

func (l *limitedItems) Reset() {
	copy(l.limits, l.limitInit)
}

// available returns the indices of items with remaining limit
func (l *limitedItems) available() []int {
	avail := make([]int, 0, len(l.limits))
	for i, limit := range l.limits {
		if limit != 0 {
			avail = append(avail, i)
		}
	}
	return avail
}
