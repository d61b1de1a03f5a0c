package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dancechain/poseverify/pose"
)

// poseFile is the persisted landmark dump: one flat float array per
// frame, x, y, z, visibility for each of the 33 landmarks.
type poseFile struct {
	Landmarks  [][]float64 `json:"landmarks"`
	FrameCount int         `json:"frame_count"`
	SampleRate float64     `json:"sample_rate,omitempty"`
}

// loadSequence reads one landmark dump into a pose.Sequence. Malformed
// frames inside the file are dropped by the decoder, not here.
func loadSequence(path string) (pose.Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pose.Sequence{}, fmt.Errorf("read %s: %w", path, err)
	}

	var pf poseFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return pose.Sequence{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return pose.SequenceFromFlat(pf.Landmarks, pf.SampleRate), nil
}
