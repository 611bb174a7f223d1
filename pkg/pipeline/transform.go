package pipeline

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"featureprep/pkg/dataprep"
	"featureprep/pkg/loader"
	"featureprep/pkg/logger"
)

// Splits are the three partitions produced by Transform.
type Splits struct {
	Train      dataframe.DataFrame
	Validation dataframe.DataFrame
	Test       dataframe.DataFrame
}

// Steps returns the feature steps in the order Transform runs them:
// normalize names and values, derive indicators, prune, encode.
func Steps(opts Options) []Step {
	encoder := dataprep.NewEncoder(opts.EncodeMode, opts.CategoricalFeatures)
	return []Step{
		StepFunc{"normalize_columns", func(_ context.Context, df dataframe.DataFrame) (dataframe.DataFrame, error) {
			return dataprep.NormalizeColumns(df)
		}},
		StepFunc{"normalize_values", func(_ context.Context, df dataframe.DataFrame) (dataframe.DataFrame, error) {
			return dataprep.NormalizeValues(df)
		}},
		StepFunc{"derive", func(_ context.Context, df dataframe.DataFrame) (dataframe.DataFrame, error) {
			return dataprep.DeriveIndicators(df)
		}},
		StepFunc{"prune", func(ctx context.Context, df dataframe.DataFrame) (dataframe.DataFrame, error) {
			out, skipped, err := dataprep.DropColumns(df, opts.DropColumns, opts.StrictPrune)
			if len(skipped) > 0 && err == nil {
				logger.FromContext(ctx).Warn("columns to drop not found", "columns", skipped)
			}
			return out, err
		}},
		StepFunc{"encode", func(_ context.Context, df dataframe.DataFrame) (dataframe.DataFrame, error) {
			return encoder.Encode(df)
		}},
	}
}

// Transform runs the feature steps on df, shuffles the rows with opts.Seed
// and cuts them into train, validation and test partitions.
func Transform(ctx context.Context, df dataframe.DataFrame, opts Options) (*Splits, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if df.Err != nil {
		return nil, df.Err
	}
	if df.Nrow() == 0 {
		return nil, dataprep.ErrEmptyDataset
	}

	out, err := NewPipeline(Steps(opts)...).Run(ctx, df)
	if err != nil {
		return nil, err
	}

	parts := loader.TrainValidationTestSplit(out.Nrow(), opts.Seed, opts.Cuts)
	logger.FromContext(ctx).Info("dataset split",
		"rows", out.Nrow(),
		"columns", out.Ncol(),
		"train", len(parts.Train),
		"validation", len(parts.Validation),
		"test", len(parts.Test),
		"seed", opts.Seed,
	)

	splits := &Splits{
		Train:      Rows(out, parts.Train),
		Validation: Rows(out, parts.Validation),
		Test:       Rows(out, parts.Test),
	}
	for _, part := range []dataframe.DataFrame{splits.Train, splits.Validation, splits.Test} {
		if part.Err != nil {
			return nil, fmt.Errorf("split: %w", part.Err)
		}
	}
	return splits, nil
}

// Rows returns the rows of df at indexes, in that order. An empty index list
// gives an empty frame with the same columns.
func Rows(df dataframe.DataFrame, indexes []int) dataframe.DataFrame {
	if len(indexes) > 0 {
		return df.Subset(indexes)
	}
	cols := make([]series.Series, df.Ncol())
	for i, name := range df.Names() {
		cols[i] = series.New([]string{}, df.Col(name).Type(), name)
	}
	return dataframe.New(cols...)
}
