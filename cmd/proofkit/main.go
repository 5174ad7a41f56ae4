package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gobeaver/proofkit"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "proofkit: %v\n", err)
		return 1
	}
	return 0
}

// globalFlags override the BEAVER_PROOFKIT_* environment when set.
type globalFlags struct {
	algorithm string
	chunkSize int
	logLevel  string
	logFormat string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:           "proofkit",
		Short:         "Validate files by content hash",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.algorithm, "algorithm", "", "digest algorithm (sha256, sha512, blake3, xxhash)")
	pf.IntVar(&flags.chunkSize, "chunk-size", 0, "read buffer size in bytes")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format (text, json)")

	rootCmd.AddCommand(
		newGreetCmd(),
		newValidateCmd(&flags),
		newWatchCmd(&flags),
	)
	return rootCmd
}

func newGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet <name>",
		Short: "Print a greeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), proofkit.Greet(args[0]))
			return nil
		},
	}
}

func newValidateCmd(flags *globalFlags) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:     "validate-image <path>",
		Aliases: []string{"validate"},
		Short:   "Hash a file and print its validation record as JSON",
		Long: `Hash a file and print its validation record as JSON.

A file that cannot be opened or read is reported inside the record
("valid": false with an "error" message); the command still exits 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newValidator(cmd, flags)
			if err != nil {
				return err
			}
			return writeRecord(cmd.OutOrStdout(), v.Validate(args[0]).Record(), pretty)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}

func newWatchCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <path>",
		Short: "Re-validate a file every time it changes",
		Long: `Validate a file, then print a new record every time it is written,
replaced or removed. Runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newValidator(cmd, flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var writeErr error
			err = v.Watch(cmd.Context(), args[0], func(r proofkit.Result) {
				if err := writeRecord(out, r.Record(), false); err != nil && writeErr == nil {
					writeErr = err
				}
			})
			if err != nil {
				return err
			}
			return writeErr
		},
	}
}

// newValidator merges environment config with command-line flags.
func newValidator(cmd *cobra.Command, flags *globalFlags) (*proofkit.Validator, error) {
	cfg, err := proofkit.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	pf := cmd.Flags()
	if pf.Changed("algorithm") {
		cfg.Algorithm = flags.algorithm
	}
	if pf.Changed("chunk-size") {
		cfg.ChunkSize = flags.chunkSize
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if pf.Changed("log-format") {
		cfg.LogFormat = flags.logFormat
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	logger, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	return proofkit.New(append(opts, proofkit.WithLogger(logger))...)
}

func writeRecord(w io.Writer, rec proofkit.Record, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(rec)
}
