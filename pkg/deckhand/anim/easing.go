package anim

// EaseOutQuart decelerates along an inverse fourth-power curve.
// Input outside [0, 1] is clamped.
func EaseOutQuart(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	inv := 1 - t
	return 1 - inv*inv*inv*inv
}
