package gamemath

import "math"

// ApplyLook turns yaw and pitch by a look delta in pixels. Moving the pointer
// right turns right (yaw decreases) and moving it down looks down.
func ApplyLook(yaw, pitch, dx, dy, sensitivity, maxPitch float64) (float64, float64) {
	yaw -= dx * sensitivity
	pitch -= dy * sensitivity
	return yaw, Clamp(pitch, -maxPitch, maxPitch)
}

// Forward returns the unit camera forward vector for a yaw/pitch pair.
func Forward(yaw, pitch float64) Vec3 {
	cp := math.Cos(pitch)
	return Vec3{
		X: -math.Sin(yaw) * cp,
		Y: math.Sin(pitch),
		Z: -math.Cos(yaw) * cp,
	}
}

// RotateYaw rotates v about the up axis by yaw radians.
func RotateYaw(v Vec3, yaw float64) Vec3 {
	s, c := math.Sincos(yaw)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// MoveDirection builds the local movement direction from the four axes,
// or from the joystick when it is non-zero. Forward is -Z.
func MoveDirection(forward, backward, left, right bool, joyX, joyY float64) Vec3 {
	if joyX != 0 || joyY != 0 {
		return Vec3{X: joyX, Z: -joyY}
	}
	var d Vec3
	if right {
		d.X++
	}
	if left {
		d.X--
	}
	if backward {
		d.Z++
	}
	if forward {
		d.Z--
	}
	return d
}

// WalkVelocity returns the horizontal velocity for a local direction at the
// given speed, rotated into camera space by yaw only.
func WalkVelocity(dir Vec3, yaw, speed float64) Vec3 {
	if dir.IsZero() {
		return Vec3{}
	}
	return RotateYaw(dir.Normalize().Scale(speed), yaw)
}

// YawTowards returns the yaw that faces from one point to another on the XZ plane.
func YawTowards(from, to Vec3) float64 {
	d := to.Sub(from)
	return math.Atan2(-d.X, -d.Z)
}

// WrapAngle maps an angle into (-pi, pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// RingPoint returns a point on a horizontal ring around center.
func RingPoint(center Vec3, radius, angle, height float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{X: center.X + c*radius, Y: height, Z: center.Z + s*radius}
}

// Bob returns a walking bob offset: |sin(t*speed)| * height.
func Bob(t, speed, height float64) float64 {
	return math.Abs(math.Sin(t*speed)) * height
}
