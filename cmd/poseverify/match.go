package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dancechain/poseverify/pose"
	"github.com/dancechain/poseverify/seqmatch"
)

// matchCmd scores how well one move appears anywhere in a performance.
var matchCmd = &cobra.Command{
	Use:   "match <performance.json> <move.json>",
	Short: "Find the best match for a move inside a performance",
	Args:  cobra.ExactArgs(2),
	Run:   runMatch,
}

func runMatch(cmd *cobra.Command, args []string) {
	opts, err := loadOptions(configFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Bad tuning config")
	}

	haystack, err := loadSequence(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load performance")
	}
	needle, err := loadSequence(args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load move")
	}

	best, err := seqmatch.BestMatch(pose.Normalize(haystack), pose.Normalize(needle), &opts.Match)
	if err != nil {
		log.Fatal().Err(err).Msg("Match aborted")
	}

	log.Info().
		Int("performanceFrames", haystack.Len()).
		Int("moveFrames", needle.Len()).
		Msg("Scanned")
	fmt.Printf("score=%.4f\n", best)
}
