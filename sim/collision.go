package sim

// Pair identifies one detected overlap between a controlled entity and an
// uncontrolled one.
type Pair struct {
	Controlled   EntityID
	Uncontrolled EntityID
}

// Reporter receives exactly one notification per overlapping pair per tick.
// A sustained overlap re-fires every tick it holds; there is no
// deduplication and no enter/exit edge detection.
type Reporter interface {
	Report(pair Pair)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(Pair)

// Report calls f.
func (f ReporterFunc) Report(pair Pair) { f(pair) }

// CollisionSystem reports axis-aligned bounding-box overlaps between every
// controlled entity and every uncontrolled entity. The check is deliberately
// brute force, O(|controlled| * |uncontrolled|), with no spatial index. It
// mutates nothing.
type CollisionSystem struct {
	Reporter Reporter
}

// Execute partitions entities by the Controllable tag and reports every
// overlapping controlled/uncontrolled box pair.
func (c *CollisionSystem) Execute(frame *Frame) {
	w := frame.World

	for cid, controlled := range w.Boxes.All(With(w.Controllable)) {
		for uid, row := range Join2(w.Positions, w.Boxes, Without(w.Controllable)) {
			if !Overlaps(*controlled, *row.B) {
				continue
			}
			if c.Reporter != nil {
				c.Reporter.Report(Pair{Controlled: cid, Uncontrolled: uid})
			}
		}
	}
}

// Overlaps is the standard AABB test: two rectangles overlap iff their
// projections onto both axes overlap.
func Overlaps(a, b CollisionBox) bool {
	return a.X < b.X+b.Width && a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
}
