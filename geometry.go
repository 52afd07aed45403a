package seedui

import "image"

// Point at t in [0, 1] along the segment from a to b. Coordinates
// are truncated towards zero.
func LinearInterp(a, b image.Point, t float64) image.Point {
	return image.Pt(
		int((1.0 - t)*float64(a.X) + t*float64(b.X)),
		int((1.0 - t)*float64(a.Y) + t*float64(b.Y)),
	)
}

// Approximates the quadratic Bézier curve from p1 to p3 with control
// point p2 as segments+1 points. The first point is p1 and the last
// one is exactly p3. Panics if segments <= 0.
func BezierCurve(p1, p2, p3 image.Point, segments int) []image.Point {
	if segments <= 0 { panic("segments <= 0") }
	step := 1.0/float64(segments)
	points := make([]image.Point, 0, segments + 1)
	points = append(points, p1)
	for i := 1; i < segments; i++ {
		t := step*float64(i)
		onFirst := LinearInterp(p1, p2, t)
		onSecond := LinearInterp(p2, p3, t)
		points = append(points, LinearInterp(onFirst, onSecond, t))
	}
	return append(points, p3)
}
