package pipeline

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"featureprep/pkg/dataprep"
)

// Column kinds reported by SchemaOf.
const (
	KindNumeric   = "numeric"
	KindCategory  = "category"
	KindIndicator = "indicator"
)

// Schema describes the structure of a dataset.
type Schema struct {
	FeatureNames []string
	Types        []string // KindNumeric, KindCategory or KindIndicator
}

// SchemaOf snapshots the column names and kinds of df.
func SchemaOf(df dataframe.DataFrame) Schema {
	names := df.Names()
	types := make([]string, len(names))
	for i, name := range names {
		col := df.Col(name)
		switch {
		case col.Type() == series.Int:
			types[i] = KindIndicator
		case dataprep.IsNumeric(col.Records()):
			types[i] = KindNumeric
		default:
			types[i] = KindCategory
		}
	}
	return Schema{FeatureNames: names, Types: types}
}

// Count returns how many columns have the given kind.
func (s Schema) Count(kind string) int {
	n := 0
	for _, t := range s.Types {
		if t == kind {
			n++
		}
	}
	return n
}
