// SPDX-License-Identifier: EPL-2.0

package utils

// Sample is the float type samples are kept in while processing.
type Sample interface {
	~float32 | ~float64
}

// CubicInterpolate evaluates the Catmull-Rom segment between y1 and y2 at
// t in [0, 1], using y0 and y3 as the outer control points. The curve passes
// through y1 at t=0 and y2 at t=1.
func CubicInterpolate[T Sample](y0, y1, y2, y3, t T) T {
	a := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	b := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c := 0.5 * (y2 - y0)

	// Horner form
	return ((a*t+b)*t+c)*t + y1
}
