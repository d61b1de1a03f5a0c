package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/dancechain/poseverify/chain"
	"github.com/dancechain/poseverify/similarity"
)

// loadOptions builds chain.Options from the tuning file (if any) layered
// over the library defaults. Every knob a deployment has historically
// disagreed on is configurable here.
func loadOptions(path string) (chain.Options, error) {
	opts := chain.DefaultOptions()

	// Set default values
	viper.SetDefault("moveThreshold", opts.MoveThreshold)
	viper.SetDefault("scoreCap", opts.ScoreCap)
	viper.SetDefault("minFrames", opts.MinFrames)
	viper.SetDefault("maxParallel", opts.MaxParallel)

	viper.SetDefault("match.strideDivisor", opts.Match.StrideDivisor)
	viper.SetDefault("match.edgePenalty", opts.Match.EdgePenalty)
	viper.SetDefault("match.edgeFraction", opts.Match.EdgeFraction)
	viper.SetDefault("match.fineScanLimit", opts.Match.FineScanLimit)

	viper.SetDefault("similarity.metric", "cosine")
	viper.SetDefault("similarity.tolerance", opts.Match.Similarity.Tolerance)

	if path != "" {
		viper.SetConfigFile(path)
		viper.SetConfigType("json")
		if err := viper.ReadInConfig(); err != nil {
			return opts, fmt.Errorf("error reading config file: %w", err)
		}
	}

	opts.MoveThreshold = viper.GetFloat64("moveThreshold")
	opts.ScoreCap = viper.GetFloat64("scoreCap")
	opts.MinFrames = viper.GetInt("minFrames")
	opts.MaxParallel = viper.GetInt("maxParallel")

	opts.Match.StrideDivisor = viper.GetInt("match.strideDivisor")
	opts.Match.EdgePenalty = viper.GetFloat64("match.edgePenalty")
	opts.Match.EdgeFraction = viper.GetFloat64("match.edgeFraction")
	opts.Match.FineScanLimit = viper.GetInt("match.fineScanLimit")

	switch metric := viper.GetString("similarity.metric"); metric {
	case "cosine":
		opts.Match.Similarity.Metric = similarity.Cosine
	case "euclidean":
		opts.Match.Similarity.Metric = similarity.EuclideanTolerance
	default:
		return opts, fmt.Errorf("unknown similarity.metric %q", metric)
	}
	opts.Match.Similarity.Tolerance = viper.GetFloat64("similarity.tolerance")

	return opts, nil
}
