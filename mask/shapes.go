package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Control point distance for approximating a quarter circle with a
// cubic curve.
const kappa = 0.5522847498

// Returns the outline of the given rectangle with its corners rounded
// to the given radius. The radius is clamped to half the shortest side.
// The outline can be passed to [Rasterize] like any glyph outline.
func RoundedRect(rect image.Rectangle, radius int) sfnt.Segments {
	rect = rect.Canon()
	if half := min(rect.Dx(), rect.Dy())/2; radius > half { radius = half }
	if radius < 0 { radius = 0 }

	minX, minY := float64(rect.Min.X), float64(rect.Min.Y)
	maxX, maxY := float64(rect.Max.X), float64(rect.Max.Y)
	r := float64(radius)
	k := r*(1 - kappa)

	outline := make(sfnt.Segments, 0, 9)
	outline = append(outline, segmentAt(sfnt.SegmentOpMoveTo, minX + r, minY))
	outline = append(outline, segmentAt(sfnt.SegmentOpLineTo, maxX - r, minY))
	outline = append(outline, cubeAt(maxX - k, minY, maxX, minY + k, maxX, minY + r))
	outline = append(outline, segmentAt(sfnt.SegmentOpLineTo, maxX, maxY - r))
	outline = append(outline, cubeAt(maxX, maxY - k, maxX - k, maxY, maxX - r, maxY))
	outline = append(outline, segmentAt(sfnt.SegmentOpLineTo, minX + r, maxY))
	outline = append(outline, cubeAt(minX + k, maxY, minX, maxY - k, minX, maxY - r))
	outline = append(outline, segmentAt(sfnt.SegmentOpLineTo, minX, minY + r))
	outline = append(outline, cubeAt(minX, minY + k, minX + k, minY, minX + r, minY))
	return outline
}

func segmentAt(op sfnt.SegmentOp, x, y float64) sfnt.Segment {
	return sfnt.Segment{ Op: op, Args: [3]fixed.Point26_6{ toPoint(x, y) } }
}

func cubeAt(cx1, cy1, cx2, cy2, x, y float64) sfnt.Segment {
	return sfnt.Segment{
		Op: sfnt.SegmentOpCubeTo,
		Args: [3]fixed.Point26_6{ toPoint(cx1, cy1), toPoint(cx2, cy2), toPoint(x, y) },
	}
}

func toPoint(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{ X: fixed.Int26_6(x*64), Y: fixed.Int26_6(y*64) }
}
