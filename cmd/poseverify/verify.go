package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dancechain/poseverify/chain"
	"github.com/dancechain/poseverify/pose"
)

// verifyCmd checks a submission against one or more prior chain moves.
var verifyCmd = &cobra.Command{
	Use:   "verify <submission.json> <move.json>...",
	Short: "Verify a submission reproduces every prior chain move",
	Args:  cobra.MinimumNArgs(2),
	Run:   runVerify,
}

func runVerify(cmd *cobra.Command, args []string) {
	opts, err := loadOptions(configFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Bad tuning config")
	}

	submission, err := loadSequence(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load submission")
	}
	log.Debug().Int("frames", submission.Len()).Str("path", args[0]).Msg("Loaded submission")

	moves := make([]chain.ReferenceMove, 0, len(args)-1)
	for i, path := range args[1:] {
		seq, err := loadSequence(path)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load reference move")
		}
		moves = append(moves, chain.ReferenceMove{
			MoveNumber: i + 1,
			Sequence:   pose.Normalize(seq),
		})
	}

	v, err := chain.NewVerifier(&opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Bad verifier options")
	}

	res, err := v.Verify(context.Background(), moves, &submission)
	if err != nil {
		log.Fatal().Err(err).Msg("Verification aborted")
	}

	for i, s := range res.MoveScores {
		log.Info().Int("move", moves[i].MoveNumber).Float64("score", s).Msg("Move match")
	}

	fmt.Printf("verified=%t score=%.4f\n", res.Verified, res.OverallScore)
	if !res.Verified {
		os.Exit(2)
	}
}
