package pipeline

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"featureprep/pkg/logger"
)

// Step is one frame-to-frame transformation.
type Step interface {
	Name() string
	Apply(ctx context.Context, df dataframe.DataFrame) (dataframe.DataFrame, error)
}

// StepFunc adapts a function to Step.
type StepFunc struct {
	StepName string
	Fn       func(ctx context.Context, df dataframe.DataFrame) (dataframe.DataFrame, error)
}

func (s StepFunc) Name() string { return s.StepName }

func (s StepFunc) Apply(ctx context.Context, df dataframe.DataFrame) (dataframe.DataFrame, error) {
	return s.Fn(ctx, df)
}

// Pipeline chains steps in order.
type Pipeline struct {
	steps []Step
}

func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run applies every step, stopping at the first error.
func (p *Pipeline) Run(ctx context.Context, df dataframe.DataFrame) (dataframe.DataFrame, error) {
	log := logger.FromContext(ctx)
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return df, err
		}
		out, err := step.Apply(ctx, df)
		if err != nil {
			return df, fmt.Errorf("%s: %w", step.Name(), err)
		}
		df = out
		schema := SchemaOf(df)
		log.Debug("step finished",
			"step", step.Name(),
			"rows", df.Nrow(),
			"columns", len(schema.FeatureNames),
		)
	}
	return df, nil
}
