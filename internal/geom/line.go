package geom

import "errors"

// ErrVerticalLine is returned when a line test is requested for a line
// with no defined slope.
var ErrVerticalLine = errors.New("geom: line is vertical, point-above test undefined")

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Line is the infinite line through two points.
type Line struct {
	P1, P2 Point
}

// Above reports whether the point (px, py) has a y value strictly
// greater than the line's y at px. A point exactly on the line is not
// above it. Vertical lines have no y-per-x and return ErrVerticalLine.
func (l Line) Above(px, py float64) (bool, error) {
	dx := l.P2.X - l.P1.X
	if dx == 0 {
		return false, ErrVerticalLine
	}
	m := (l.P2.Y - l.P1.Y) / dx
	b := l.P1.Y - m*l.P1.X
	return py > m*px+b, nil
}

// Corridor construction offsets. The corridor funnels from far left of
// the pipe toward its gap, leaving a neck just before the opening.
const (
	corridorReach   = 500 // How far left of the pipe the corridor starts
	corridorNeck    = 50  // Horizontal distance from pipe where the funnel ends
	corridorHalfGap = 20  // Half-height of the funnel mouth at the neck
)

// Off-center band around the gap while horizontally inside a pipe.
const (
	pipeEntryLead  = 64  // How far before the pipe the in-pipe zone begins
	pipeExitTrail  = 100 // How far past the pipe's left edge the zone extends
	centerHalfBand = 40  // Tolerated vertical deviation from the gap center
)

// GapCorridor builds the two lines that bound the safe approach path
// toward a pipe gap: the top line slopes from the sky down to just
// above the gap center, the bottom line from the ground up to just
// below it.
func GapCorridor(pipeX, gapCenterY, groundY float64) (top, bottom Line) {
	top = Line{
		P1: Point{X: pipeX - corridorReach, Y: 0},
		P2: Point{X: pipeX - corridorNeck, Y: gapCenterY - corridorHalfGap},
	}
	bottom = Line{
		P1: Point{X: pipeX - corridorReach, Y: groundY},
		P2: Point{X: pipeX - corridorNeck, Y: gapCenterY + corridorHalfGap},
	}
	return top, bottom
}

// OutOfCorridor reports whether the point (x, y) has left the safe
// corridor toward the gap of the pipe at pipeX: either it is not below
// the top line or it is below the bottom line.
func OutOfCorridor(x, y, pipeX, gapCenterY, groundY float64) (bool, error) {
	top, bottom := GapCorridor(pipeX, gapCenterY, groundY)

	aboveTop, err := top.Above(x, y)
	if err != nil {
		return false, err
	}
	aboveBottom, err := bottom.Above(x, y)
	if err != nil {
		return false, err
	}

	return !aboveTop || aboveBottom, nil
}

// OffCenter reports whether the point (x, y) is horizontally within the
// pipe's passage but vertically outside the tolerated band around the
// gap center.
func OffCenter(x, y, pipeX, gapCenterY float64) bool {
	inPipe := pipeX-pipeEntryLead < x && x < pipeX+pipeExitTrail
	offCenter := !(gapCenterY-centerHalfBand < y && y < gapCenterY+centerHalfBand)
	return inPipe && offCenter
}
