// Command poseverify drives the verification library over landmark JSON
// dumps, the format extraction pipelines persist (one flat 132-float
// array per frame). It is a harness around the public package APIs;
// nothing here is part of the core contract.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// CLI flags
var (
	configFlag string
)

// rootCmd is the main Cobra command for the harness.
var rootCmd = &cobra.Command{
	Use:   "poseverify",
	Short: "Score dance-chain submissions from extracted pose landmarks",
	Long: `poseverify scores whether a recorded performance reproduces the moves of a
dance chain, working from already-extracted pose landmark JSON (no video
decoding happens here).

Input files hold the flat persisted landmark form:

  {"landmarks": [[x,y,z,v, ... 132 floats], ...], "frame_count": 42}

Examples:
  poseverify verify submission.json move1.json move2.json
  poseverify match performance.json move.json
  poseverify verify --config tuning.json submission.json move1.json`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Tuning config file (JSON); defaults apply when omitted")
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(matchCmd)
}

func main() {
	initLogging()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initLogging configures the global logger from the environment.
// POSEVERIFY_LOG_LEVEL controls the level: debug, info, warn, error
// (default: info).
func initLogging() {
	switch os.Getenv("POSEVERIFY_LOG_LEVEL") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
