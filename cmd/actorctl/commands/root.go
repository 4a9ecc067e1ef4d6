package commands

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	btclogv2 "github.com/btcsuite/btclog/v2"
	"github.com/roasbeef/actorhub/internal/baselib/actor"
	"github.com/roasbeef/actorhub/internal/build"
	"github.com/spf13/cobra"
)

var (
	// numWorkers is the number of worker goroutines the demo pool runs
	// with.
	numWorkers int

	// logLevel controls the verbosity of the logger wired into the
	// actor package for the duration of the command, applied to the
	// console handler and, if enabled, the file handler.
	logLevel string

	// logDir, if set, enables rotating file logging alongside the
	// console handler.
	logDir string

	logRotator *build.RotatingLogWriter
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "actorctl",
	Short: "Drive demo scenarios against the actorhub runtime",
	Long: `actorctl builds a real actorhub Pool and runs one of the runtime's
documented scenarios against it, printing the observed message sequence.

It exists to give the runtime a runnable surface; it is not itself part
of the scheduler.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logRotator != nil {
			logRotator.Close()
		}
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func setupLogging() {
	handlers := []btclogv2.Handler{btclog.NewDefaultHandler(os.Stderr)}

	if logDir != "" {
		logRotator = build.NewRotatingLogWriter()
		err := logRotator.InitLogRotator(&build.LogRotatorConfig{
			LogDir: logDir,
		})
		if err != nil {
			fmt.Fprintf(
				os.Stderr,
				"failed to init log rotator: %v (continuing without file logging)\n",
				err,
			)
			logRotator = nil
		} else {
			handlers = append(handlers, btclog.NewDefaultHandler(logRotator))
		}
	}

	handlerSet := build.NewHandlerSet(handlers...)

	level, ok := btclog.LevelFromString(logLevel)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown log level %q, using info\n", logLevel)
		level = btclog.LevelInfo
	}
	handlerSet.SetLevel(level)

	actor.UseLogger(btclog.NewSLogger(handlerSet))
}

func init() {
	rootCmd.PersistentFlags().IntVar(
		&numWorkers, "workers", 4,
		"Number of worker goroutines in the demo pool",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "info",
		"Log level: trace, debug, info, warn, error",
	)
	rootCmd.PersistentFlags().StringVar(
		&logDir, "log-dir", "",
		"If set, also write rotating, gzip-compressed log files to this directory",
	)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(fanoutCmd)
	rootCmd.AddCommand(backoffCmd)
	rootCmd.AddCommand(quiescenceCmd)
}
