package pose_test

import "github.com/dancechain/poseverify/pose"

// stickFrame returns a well-formed 33-landmark frame describing a simple
// stick figure. lift raises both wrists, (dx, dy) shifts the whole body
// in frame — normalization must cancel the shift.
func stickFrame(lift, dx, dy float64) pose.Frame {
	f := make(pose.Frame, pose.LandmarkCount)
	for i := range f {
		f[i] = pose.Landmark{X: 0.5 + dx, Y: 0.5 + dy, Z: 0.1, Visibility: 0.9}
	}
	set := func(li pose.LandmarkIndex, x, y float64) {
		f[li] = pose.Landmark{X: x + dx, Y: y + dy, Z: 0.1, Visibility: 0.9}
	}

	set(pose.Nose, 0.50, 0.20)
	set(pose.LeftEye, 0.48, 0.18)
	set(pose.RightEye, 0.52, 0.18)
	set(pose.LeftShoulder, 0.40, 0.30)
	set(pose.RightShoulder, 0.60, 0.30)
	set(pose.LeftElbow, 0.35, 0.42)
	set(pose.RightElbow, 0.65, 0.42)
	set(pose.LeftWrist, 0.33, 0.52-lift)
	set(pose.RightWrist, 0.67, 0.52-lift)
	set(pose.LeftHip, 0.45, 0.60)
	set(pose.RightHip, 0.55, 0.60)
	set(pose.LeftKnee, 0.44, 0.75)
	set(pose.RightKnee, 0.56, 0.75)
	set(pose.LeftAnkle, 0.43, 0.90)
	set(pose.RightAnkle, 0.57, 0.90)

	return f
}

// flatten converts a frame to the flat persisted form:
// x, y, z, visibility per landmark.
func flatten(f pose.Frame) []float64 {
	flat := make([]float64, 0, len(f)*pose.ValuesPerLandmark)
	for _, lm := range f {
		flat = append(flat, lm.X, lm.Y, lm.Z, lm.Visibility)
	}

	return flat
}
