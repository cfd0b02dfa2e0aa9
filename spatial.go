// SPDX-License-Identifier: EPL-2.0

package ears

import "math"

// Vector helpers for the 3D gain path. Coordinates are right-handed
// [x, y, z], matching the listener's default facing of -z.

func vecSub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func vecDot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func vecCross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func vecLen(a [3]float32) float32 {
	return float32(math.Sqrt(float64(vecDot(a, a))))
}

func vecNormalize(a [3]float32) [3]float32 {
	l := vecLen(a)
	if l == 0 {
		return a
	}
	return [3]float32{a[0] / l, a[1] / l, a[2] / l}
}

// attenuationGain implements the inverse-distance-clamped model:
//
//	g = ref / (ref + rolloff*(clamp(d, ref, max) - ref))
//
// A zero reference distance disables attenuation.
func attenuationGain(distance, ref, max, rolloff float32) float32 {
	if ref <= 0 {
		return 1
	}

	d := distance
	if d < ref {
		d = ref
	}
	if d > max {
		d = max
	}

	denom := ref + rolloff*(d-ref)
	if denom <= 0 {
		return 1
	}

	return ref / denom
}

// panGains returns constant-power left/right gains for a pan position in
// [-1, 1], -1 being hard left.
func panGains(pan float32) (left, right float32) {
	if pan < -1 {
		pan = -1
	}
	if pan > 1 {
		pan = 1
	}

	angle := float64(pan+1) * math.Pi / 4
	return float32(math.Cos(angle)), float32(math.Sin(angle))
}

// azimuthPan projects the direction to a source onto the listener's
// right axis, giving the pan position: -1 fully left, 0 ahead or on the
// listener, +1 fully right.
func azimuthPan(toSource, at, up [3]float32) float32 {
	if vecLen(toSource) == 0 {
		return 0
	}

	right := vecCross(at, up)
	if vecLen(right) == 0 {
		return 0
	}

	return vecDot(vecNormalize(toSource), vecNormalize(right))
}

func clampGain(g, min, max float32) float32 {
	if g < min {
		return min
	}
	if g > max {
		return max
	}
	return g
}
