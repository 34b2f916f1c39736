package automation

// failSafeMargin is how close to a corner, in pixels, the pointer must
// be to count as parked there.
const failSafeMargin = 2

// inFailSafeCorner reports whether (x, y) sits in any corner of a
// width-by-height screen.
func inFailSafeCorner(x, y, width, height int) bool {
	nearLeft := x <= failSafeMargin
	nearRight := x >= width-1-failSafeMargin
	nearTop := y <= failSafeMargin
	nearBottom := y >= height-1-failSafeMargin
	return (nearLeft || nearRight) && (nearTop || nearBottom)
}
