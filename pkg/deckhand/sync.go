package deckhand

import "github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"

// Snapshot is the derived display state for one (index, total) pair.
type Snapshot struct {
	Progress    float64 // Percentage, 0..100
	Page        int     // 1-based
	Active      int     // Indicator to mark active
	Total       int
	PrevEnabled bool
	NextEnabled bool
}

// Compute derives the display state for the given index.
func Compute(index, total int) Snapshot {
	return Snapshot{
		Progress:    float64(index+1) / float64(total) * 100,
		Page:        index + 1,
		Active:      index,
		Total:       total,
		PrevEnabled: index > 0,
		NextEnabled: index < total-1,
	}
}

// Synchronizer pushes snapshots to whichever view parts exist.
type Synchronizer struct {
	surface Surface
}

// NewSynchronizer creates a Synchronizer writing to surface.
func NewSynchronizer(surface Surface) *Synchronizer {
	return &Synchronizer{surface: surface}
}

// Push computes and writes the display state. Each part is skipped on its
// own when absent.
func (s *Synchronizer) Push(index, total int) Snapshot {
	snap := Compute(index, total)

	if s.surface.Progress != nil {
		s.surface.Progress.SetProgress(snap.Progress)
	}

	if s.surface.Page != nil {
		s.surface.Page.SetPage(snap.Page)
	}

	if s.surface.Indicators != nil {
		for i := 0; i < total; i++ {
			s.surface.Indicators.SetIndicatorActive(i, i == snap.Active)
		}
	}

	if s.surface.Buttons != nil {
		s.surface.Buttons.SetButtonEnabled(constants.ButtonPrev, snap.PrevEnabled)
		s.surface.Buttons.SetButtonEnabled(constants.ButtonNext, snap.NextEnabled)
	}

	return snap
}
