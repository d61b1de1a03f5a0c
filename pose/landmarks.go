package pose

// LandmarkIndex names a position in the fixed landmark set emitted by the
// pose-extraction collaborator. The numbering follows the MediaPipe Pose
// topology, so index 11 is always the left shoulder no matter which
// pipeline produced the frame.
type LandmarkIndex int

// The full 33-point MediaPipe Pose landmark table.
const (
	Nose LandmarkIndex = iota
	LeftEyeInner
	LeftEye
	LeftEyeOuter
	RightEyeInner
	RightEye
	RightEyeOuter
	LeftEar
	RightEar
	MouthLeft
	MouthRight
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftPinky
	RightPinky
	LeftIndex
	RightIndex
	LeftThumb
	RightThumb
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
	LeftHeel
	RightHeel
	LeftFootIndex
	RightFootIndex
)

const (
	// LandmarkCount is the number of landmarks in a well-formed Frame.
	LandmarkCount = 33

	// ValuesPerLandmark is the number of scalars per landmark in the flat
	// persisted form: x, y, z, visibility.
	ValuesPerLandmark = 4

	// FlatFrameLen is the length of one flat frame array
	// (LandmarkCount × ValuesPerLandmark).
	FlatFrameLen = LandmarkCount * ValuesPerLandmark
)

// KeyLandmarks is the fixed anatomical subset used for normalization, in
// feature-vector order. Changing this table changes FeatureDim and the
// meaning of every stored NormalizedSequence, so treat it as frozen.
var KeyLandmarks = [...]LandmarkIndex{
	Nose,
	LeftEye,
	RightEye,
	LeftShoulder,
	RightShoulder,
	LeftElbow,
	RightElbow,
	LeftWrist,
	RightWrist,
	LeftHip,
	RightHip,
	LeftKnee,
	RightKnee,
	LeftAnkle,
	RightAnkle,
}

// FeatureDim is the length of every NormalizedFrame: one (x, y) offset
// pair per entry of KeyLandmarks.
const FeatureDim = len(KeyLandmarks) * 2

// maxKeyLandmark is the highest index Normalize needs a frame to carry.
const maxKeyLandmark = RightAnkle
