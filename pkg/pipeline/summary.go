package pipeline

import (
	"github.com/go-gota/gota/dataframe"

	"featureprep/pkg/data"
	"featureprep/pkg/stats"
)

// PartitionSummary is logged for each partition after the split.
type PartitionSummary struct {
	Name         string
	Rows         int
	PositiveRate float64
}

// Summarize reports row counts and the mean of y_yes per partition.
func Summarize(s *Splits) []PartitionSummary {
	parts := []struct {
		name string
		df   dataframe.DataFrame
	}{
		{"train", s.Train},
		{"validation", s.Validation},
		{"test", s.Test},
	}
	out := make([]PartitionSummary, len(parts))
	for i, p := range parts {
		out[i] = PartitionSummary{Name: p.name, Rows: p.df.Nrow()}
		if p.df.Nrow() > 0 {
			out[i].PositiveRate = stats.Mean(p.df.Col(data.LabelYes).Float())
		}
	}
	return out
}
