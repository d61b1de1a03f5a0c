package pose

// SequenceFromFlat decodes the flat persisted landmark form — one
// []float64 per frame laid out as x, y, z, visibility for each of the 33
// landmarks in LandmarkIndex order — into a Sequence.
//
// Frames that are not exactly FlatFrameLen long, and all-zero placeholder
// frames the extractor emits when no pose was detected, are dropped
// silently: a frame is either well-formed or it does not exist.
//
// sampleRate is the extraction frame rate (0 if unknown); the original
// frame count is taken as len(flat) before any dropping.
func SequenceFromFlat(flat [][]float64, sampleRate float64) Sequence {
	seq := Sequence{
		SampleRate:         sampleRate,
		OriginalFrameCount: len(flat),
	}
	if len(flat) == 0 {
		return seq
	}

	seq.Frames = make([]Frame, 0, len(flat))
	for _, raw := range flat {
		if len(raw) != FlatFrameLen {
			continue
		}
		frame := make(Frame, LandmarkCount)
		for i := 0; i < LandmarkCount; i++ {
			off := i * ValuesPerLandmark
			frame[i] = Landmark{
				X:          raw[off],
				Y:          raw[off+1],
				Z:          raw[off+2],
				Visibility: raw[off+3],
			}
		}
		if !frame.WellFormed() {
			continue
		}
		seq.Frames = append(seq.Frames, frame)
	}

	return seq
}
