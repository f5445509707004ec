package splice

import (
	"sort"

	"go.uber.org/zap"

	"gosplice/pkg/region"
)

// SpliceAll applies several regions to f. Offsets in every region refer to
// the file as it is before the call: regions are applied from the highest
// Begin down, so an applied edit never moves bytes a pending one points at.
//
// Overlapping regions are rejected with an *OverlapError before the file is
// touched. When a region fails the remaining ones are skipped and the
// returned *BatchError tells how many were already applied; those stay in
// place.
func SpliceAll(f File, regions []region.Region, bufferSize int) error {
	if bufferSize < 1 {
		return ErrBufferSize
	}
	ordered, err := order(regions)
	if err != nil {
		return err
	}

	logger.Debug("splicing batch", zap.Int("regions", len(ordered)), zap.Int("buffer_size", bufferSize))
	for i, r := range ordered {
		if err := Splice(f, r, bufferSize); err != nil {
			return &BatchError{Applied: i, Region: r, Err: err}
		}
	}
	return nil
}

type indexed struct {
	idx int
	region.Region
}

// order validates regions and returns them in application order. The input
// slice is left untouched.
//
// Ties on Begin: a replacement at X is applied before insertions at X, so
// inserted bytes land in front of the replacement. Insertions sharing X are
// applied last-first, which leaves them in the file in the caller's order.
func order(regions []region.Region) ([]region.Region, error) {
	items := make([]indexed, len(regions))
	for i, r := range regions {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		items[i] = indexed{idx: i, Region: r}
	}
	if err := checkOverlap(items); err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Begin != b.Begin {
			return a.Begin > b.Begin
		}
		if a.End() != b.End() {
			return a.End() > b.End()
		}
		return a.idx > b.idx
	})

	ordered := make([]region.Region, len(items))
	for i, it := range items {
		ordered[i] = it.Region
	}
	return ordered, nil
}

// checkOverlap sweeps regions by ascending Begin, insertions before
// replacements at the same offset. Each region only has to be tested
// against the replacement reaching furthest so far.
func checkOverlap(items []indexed) error {
	sorted := make([]indexed, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Begin != b.Begin {
			return a.Begin < b.Begin
		}
		return a.Len < b.Len
	})

	var (
		reachBy  region.Region
		anyReach bool
	)
	for _, it := range sorted {
		if anyReach && reachBy.Overlaps(it.Region) {
			return &OverlapError{A: reachBy, B: it.Region}
		}
		if it.Len > 0 && (!anyReach || it.End() > reachBy.End()) {
			reachBy, anyReach = it.Region, true
		}
	}
	return nil
}
