package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"featureprep/pkg/config"
	"featureprep/pkg/data"
	"featureprep/pkg/logger"
	"featureprep/pkg/pipeline"
)

const completedMessage = "## Processing completed. Exiting."

// NewRootCmd builds the featureprep command. fs holds both input and output.
func NewRootCmd(fs afero.Fs, loader *config.Loader) *cobra.Command {
	defaults := config.Default()
	cmd := &cobra.Command{
		Use:   "featureprep",
		Short: "Prepare the bank marketing dataset for training",
		Long: `Read the campaign CSV, derive indicator features, drop uninformative
columns, one-hot encode categoricals and write shuffled train, validation
and test splits as headerless CSV files.

Outputs, relative to --outputpath:
  train/train_script.csv            y_yes, features
  validation/validation_script.csv  y_yes, features
  test/test_script_y.csv            y_yes
  test/test_script_x.csv            features`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Unknown extra arguments are ignored, as the processing container may pass some.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := map[string]string{}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				flags[f.Name] = f.Value.String()
			})
			cfg, err := loader.Load(flags)
			if err != nil {
				return err
			}
			logger.SetupLogger(cfg.LogLevel, cfg.LogJSON, cfg.LogSource)
			if err := Run(cmd.Context(), fs, cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), completedMessage)
			return nil
		},
	}

	f := cmd.Flags()
	f.String("filepath", defaults.FilePath, "Directory containing the input file")
	f.String("filename", defaults.FileName, "Input file name")
	f.String("outputpath", defaults.OutputPath, "Base output directory")
	f.String("categorical_features", joinList(defaults.CategoricalFeatures),
		"Comma-separated categorical columns; always encoded, and the only ones encoded when --encode_mode=declared")
	f.String("encode_mode", defaults.EncodeMode, "Columns to one-hot encode: all (every text column) or declared")
	f.Bool("strict_prune", defaults.StrictPrune, "Fail when a column to drop is missing")
	f.String("drop_columns", joinList(defaults.DropColumns), "Comma-separated columns to drop before encoding")
	f.Int64("seed", defaults.Seed, "Seed of the row shuffle")
	f.Float64("train_cut", defaults.TrainCut, "Fraction of rows before the validation partition")
	f.Float64("validation_cut", defaults.ValidationCut, "Fraction of rows before the test partition")
	f.String("log-level", defaults.LogLevel, "Log level: debug, info, warn, error or disabled")
	f.Bool("log-json", defaults.LogJSON, "Log as JSON")
	f.Bool("log-source", defaults.LogSource, "Report the caller in log lines")
	return cmd
}

// Run loads the input, transforms it and writes the four artifacts. Nothing
// is written unless every step succeeds.
func Run(ctx context.Context, fs afero.Fs, cfg *config.Config) error {
	log := logger.FromContext(ctx)

	df, err := data.ReadCSV(fs, cfg.InputFile())
	if err != nil {
		return err
	}
	log.Info("input loaded", "path", cfg.InputFile(), "rows", df.Nrow(), "columns", df.Ncol())

	splits, err := pipeline.Transform(ctx, df, cfg.Options())
	if err != nil {
		return err
	}
	for _, s := range pipeline.Summarize(splits) {
		log.Info("partition", "name", s.Name, "rows", s.Rows, "positive_rate", fmt.Sprintf("%.4f", s.PositiveRate))
	}

	artifacts, err := data.Assemble(splits.Train, splits.Validation, splits.Test)
	if err != nil {
		return err
	}
	if err := data.WriteArtifacts(fs, cfg.OutputPath, artifacts); err != nil {
		return err
	}
	log.Info("artifacts written", "path", cfg.OutputPath)
	return nil
}

func joinList(values []string) string {
	return strings.Join(values, ",")
}

// execute runs the command and reports failures on errOut.
func execute(cmd *cobra.Command, args []string, errOut io.Writer) int {
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(errOut, "Error:", err)
		return 1
	}
	return 0
}
