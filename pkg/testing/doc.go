// Package testing provides helpers for testing flipbook animations.
//
// # Deterministic Time
//
// Install a FakeClock so transitions step without real waiting:
//
//	clk := fliptest.NewFakeClock()
//	prev := animation.SetClock(clk)
//	defer animation.SetClock(prev)
//
// Sleep on a FakeClock advances fake time and records the requested
// duration, so frame pacing can be asserted through Sleeps.
//
// # Snapshot Testing
//
// Capture committed frames and compare them against a golden file:
//
//	var snap fliptest.Snapshot
//	snap.Add(frame.At, frame.Rect)
//	snap.MatchesFile(t, "testdata/slide.snapshot.json")
//
// Update snapshots with:
//
//	FLIPBOOK_UPDATE_SNAPSHOTS=1 go test ./...
package testing
