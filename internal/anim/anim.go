// Package anim holds the scalar blending helpers used for caret animation.
package anim

// Lerp blends linearly from start to end. step 0 yields start, step 1 yields end.
func Lerp(start, end, step float64) float64 {
	return start + step*(end-start)
}

// Smoothstep returns the Hermite interpolation of x between edge0 and edge1,
// clamped to [0, 1].
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
