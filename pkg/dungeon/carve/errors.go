package carve

import "fmt"

// PlacementExhaustedError reports that a carving or placement stage ran
// out of attempts before satisfying its target. The caller gets the
// diagnostic counts instead of a silently under-filled result.
type PlacementExhaustedError struct {
	// Stage names the pipeline stage that gave up ("carve" or "stairs").
	Stage string
	// Attempts is the number of candidate draws spent.
	Attempts int
	// FloorCells is the floor capacity available at the time of failure.
	FloorCells int
	// Placed and Requested count what was achieved versus asked for.
	Placed    int
	Requested int
}

func (e *PlacementExhaustedError) Error() string {
	return fmt.Sprintf("%s placement exhausted: placed %d of %d after %d attempts (%d floor cells available)",
		e.Stage, e.Placed, e.Requested, e.Attempts, e.FloorCells)
}
