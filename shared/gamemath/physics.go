package gamemath

// Clamp clamps a value to [min, max].
func Clamp(v, min, max float64) float64 {
	if v > max {
		return max
	}
	if v < min {
		return min
	}
	return v
}

// ApplyGravity returns the vertical velocity after dt seconds of free fall.
func ApplyGravity(velY, gravity, dt float64) float64 {
	return velY - gravity*dt
}

// RestOnGround snaps a body with the given half height onto the ground plane.
// grounded is true when the body was pushed up or is resting on it.
func RestOnGround(posY, velY, halfHeight, groundY float64) (y, vy float64, grounded bool) {
	floor := groundY + halfHeight
	if posY > floor {
		return posY, velY, false
	}
	if velY < 0 {
		velY = 0
	}
	return floor, velY, true
}
