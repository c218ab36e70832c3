package compass

import "math"

const (
	degPerRad = 180 / math.Pi
	fullTurn  = 360.0
)

// NormalizeDegrees maps any finite angle into [0, 360). Non-finite input
// returns 0.
func NormalizeDegrees(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	m := math.Mod(deg, fullTurn)
	if m < 0 {
		m += fullTurn
	}
	// -tiny + 360 rounds up to exactly 360.
	if m >= fullTurn {
		m = 0
	}
	return m
}

// PointerAngle returns the heading of (px, py) as seen from the pivot
// (cx, cy), in degrees in (-180, 180]. Screen coordinates (Y down) give
// clockwise-positive headings.
func PointerAngle(px, py, cx, cy float64) float64 {
	return math.Atan2(py-cy, px-cx) * degPerRad
}

// SectorIndex returns the index of the sector containing angle when a full
// turn is split into n equal sectors starting at 0 degrees. A fraction that
// rounds up to a full turn wraps to sector 0, the same heading. Returns -1
// when n <= 0.
func SectorIndex(angle float64, n int) int {
	if n <= 0 {
		return -1
	}
	pct := NormalizeDegrees(angle) / fullTurn
	i := int(math.Floor(pct * float64(n)))
	if i >= n || i < 0 {
		return 0
	}
	return i
}

// SectorCenter returns the heading, in degrees, at the middle of sector i of
// n. Returns 0 when n <= 0.
func SectorCenter(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	span := fullTurn / float64(n)
	return NormalizeDegrees(span*float64(i) + span/2)
}

// SectorSpan returns the start and end heading of sector i of n in degrees.
// end may equal 360 for the last sector.
func SectorSpan(i, n int) (start, end float64) {
	if n <= 0 {
		return 0, 0
	}
	span := fullTurn / float64(n)
	return span * float64(i), span * float64(i+1)
}
