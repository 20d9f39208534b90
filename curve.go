package bmpr

// DrawQuadraticCurve draws a quadratic Bézier curve from start to end,
// pulled toward control, by plotting n+1 samples at t = i/n for i in 0..n.
// Both endpoints are always included. An n below 1 is clamped to 1.
func (c *Canvas) DrawQuadraticCurve(start, control, end Point, n int, col Color) {
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x, y := quadBezAt(start, control, end, t)
		c.SetSafe(x, y, col)
	}
}

// DrawQuadraticCurveStep draws the same curve as DrawQuadraticCurve, but
// samples at t = 0, step, 2*step, ... while t <= 1. The end point is plotted
// only when 1 is reached exactly by the accumulated parameter. A step that
// is not positive draws nothing.
func (c *Canvas) DrawQuadraticCurveStep(start, control, end Point, step float64, col Color) {
	if step <= 0 {
		return
	}
	for t := 0.0; t <= 1; t += step {
		x, y := quadBezAt(start, control, end, t)
		c.SetSafe(x, y, col)
	}
}

// quadBezAt evaluates the quadratic Bernstein form
// P(t) = (1-t)²·p0 + 2t(1-t)·p1 + t²·p2 independently per axis and
// truncates the result to integer pixel coordinates.
func quadBezAt(p0, p1, p2 Point, t float64) (x, y int) {
	u := 1 - t
	fx := u*u*float64(p0.X) + 2*t*u*float64(p1.X) + t*t*float64(p2.X)
	fy := u*u*float64(p0.Y) + 2*t*u*float64(p1.Y) + t*t*float64(p2.Y)
	return int(fx), int(fy)
}
