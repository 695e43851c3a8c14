// seehuhn.de/go/logo - a procedural logo generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a flattened line segment in user space.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // unit normal, T rotated by 90° counter-clockwise
}

// subpath is a range of segments in Rasteriser.segs.
type subpath struct {
	start, end int
	closed     bool
}

// Stroke renders the outline of p with the current Width, Cap, Join and
// MiterLimit. A non-positive width draws nothing.
//
// The outline of every subpath is built as one or two polygons in user
// space, and all polygons are filled together with the nonzero rule, so
// that overlapping parts are not painted twice.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	if r.Width <= 0 {
		return
	}
	r.flattenSubpaths(p)
	if len(r.subpaths) == 0 && len(r.dots) == 0 {
		return
	}

	d := r.Width / 2
	r.outline = r.outline[:0]
	r.polyStart = r.polyStart[:0]

	// A subpath without a direction has no caps to orient, only the
	// round cap produces a mark.
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.beginPolygon()
			r.outline = append(r.outline, pt.Add(vec.Vec2{X: d}))
			r.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi)
		}
	}

	for _, sp := range r.subpaths {
		segs := r.segs[sp.start:sp.end]
		rev := r.reversed(segs)
		if sp.closed {
			r.beginPolygon()
			r.offsetSide(segs, true, d)
			r.beginPolygon()
			r.offsetSide(rev, true, d)
		} else {
			first, last := &segs[0], &segs[len(segs)-1]
			r.beginPolygon()
			r.offsetSide(segs, false, d)
			r.addCap(last.B, last.T, d)
			r.offsetSide(rev, false, d)
			r.addCap(first.A, first.T.Mul(-1), d)
		}
	}

	r.startEdges()
	for i, start := range r.polyStart {
		end := len(r.outline)
		if i+1 < len(r.polyStart) {
			end = r.polyStart[i+1]
		}
		poly := r.outline[start:end]
		if len(poly) < 3 {
			continue
		}
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(fillNonZero, emit)
}

func (r *Rasteriser) beginPolygon() {
	r.polyStart = append(r.polyStart, len(r.outline))
}

// flattenSubpaths splits p into subpaths of line segments, stored in
// r.segs and r.subpaths. Subpaths which contain drawing commands but no
// segment of positive length are collected in r.dots.
func (r *Rasteriser) flattenSubpaths(p *path.Data) {
	r.segs = r.segs[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]

	var current, start vec.Vec2
	first := 0
	inSubpath := false
	drawn := false

	finish := func(closed bool) {
		if !inSubpath || !drawn {
			return
		}
		if len(r.segs) == first {
			r.dots = append(r.dots, start)
		} else {
			r.subpaths = append(r.subpaths, subpath{start: first, end: len(r.segs), closed: closed})
		}
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[k]
			start = current
			first = len(r.segs)
			inSubpath = true
			drawn = false
			k++
		case path.CmdLineTo:
			if inSubpath {
				r.addSegment(current, p.Coords[k])
				drawn = true
			}
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			if inSubpath {
				r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addSegment)
				drawn = true
			}
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			if inSubpath {
				r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addSegment)
				drawn = true
			}
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if !inSubpath {
				continue
			}
			if current != start {
				r.addSegment(current, start)
			}
			drawn = true
			finish(true)
			current = start
			inSubpath = false
		}
	}
	finish(false)
}

func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := delta.Mul(1 / length)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// reversed returns segs in reverse order and direction. The +N side of
// the result is the -N side of segs.
func (r *Rasteriser) reversed(segs []segment) []segment {
	r.rev = r.rev[:0]
	for i := len(segs) - 1; i >= 0; i-- {
		s := &segs[i]
		r.rev = append(r.rev, segment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)})
	}
	return r.rev
}

// offsetSide appends the outline of the +N side of segs, offset by d.
// For a closed subpath the corner between the last and first segment is
// included, so that the points form a complete loop.
func (r *Rasteriser) offsetSide(segs []segment, closed bool, d float64) {
	for i := range segs {
		s := &segs[i]
		r.outline = append(r.outline, s.A.Add(s.N.Mul(d)), s.B.Add(s.N.Mul(d)))
		switch {
		case i+1 < len(segs):
			r.addCorner(s, &segs[i+1], d)
		case closed:
			r.addCorner(s, &segs[0], d)
		}
	}
}

// addCorner adds the points between the offset end of s and the offset
// start of next.
//
// On the inner side of a turn the outline passes through the corner point
// itself. The resulting small loops have the same winding as the stroke
// body and vanish under the nonzero rule.
func (r *Rasteriser) addCorner(s, next *segment, d float64) {
	P := s.B
	cross := s.T.X*next.T.Y - s.T.Y*next.T.X
	dot := s.T.Dot(next.T)

	if dot < cuspCosineThreshold {
		// the path turns back on itself
		if r.Join == graphics.LineJoinRound {
			r.addArc(P, d, s.N, -math.Pi)
		} else {
			r.outline = append(r.outline, P)
		}
		return
	}
	if math.Abs(cross) < collinearityThreshold {
		return
	}
	if cross > 0 {
		r.outline = append(r.outline, P)
		return
	}

	switch r.Join {
	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/sin(φ/2), where
		// φ is the angle between the segments at the corner.
		sinHalf := math.Sqrt((1 + dot) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit+miterEpsilon {
			bisector := s.N.Add(next.N)
			if l := bisector.Length(); l > zeroLengthThreshold {
				r.outline = append(r.outline, P.Add(bisector.Mul(d/(l*sinHalf))))
			}
		}
	case graphics.LineJoinRound:
		r.addArc(P, d, s.N, math.Atan2(cross, dot))
	case graphics.LineJoinBevel:
		// the offset points already form the bevel
	}
}

// addCap adds the cap at P, where T is the outward direction. The outline
// arrives at P+N·d and continues from P-N·d, with N = T rotated by 90°.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapButt:
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi)
	}
}

// addArc appends the interior points of a circular arc around center.
// The arc starts in direction startDir and turns by sweep radians,
// counter-clockwise for positive sweep. The end points are not added.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	// A chord spanning the angle θ deviates from the circle by at most
	// radius·(1 - cos(θ/2)).
	n := 2
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(math.Abs(sweep)/step)))
		}
	}

	dt := sweep / float64(n)
	for i := 1; i < n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}
