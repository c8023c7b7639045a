package bsm

import (
	"fmt"
	"slices"
)

// Extent is the byte range a header assigns to one section.
type Extent struct {
	Section Section
	Offset  int64
	End     int64
}

// Extents returns the non-empty section ranges sorted by offset.
func Extents(h *HeaderV1) []Extent {
	var out []Extent
	for _, s := range Sections {
		offs, end := s.extent(h)
		if end > offs {
			out = append(out, Extent{Section: s, Offset: offs, End: end})
		}
	}
	slices.SortStableFunc(out, func(a, b Extent) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})
	return out
}

// CheckOverlap reports an error if any two non-empty sections share
// bytes, or if a section overlaps the header. ReadHeaderV1 does not run
// this check; it is a stricter, opt-in validation.
func CheckOverlap(h *HeaderV1) error {
	ext := Extents(h)
	var widest Extent
	for i, e := range ext {
		if e.Offset < HeaderV1Size {
			return fmt.Errorf("%w: %s starts at %d inside the header", ErrChunkOverlap, e.Section, e.Offset)
		}
		if i > 0 && e.Offset < widest.End {
			return fmt.Errorf("%w: %s [%d, %d) and %s [%d, %d)", ErrChunkOverlap,
				widest.Section, widest.Offset, widest.End,
				e.Section, e.Offset, e.End)
		}
		if e.End > widest.End {
			widest = e
		}
	}
	return nil
}
