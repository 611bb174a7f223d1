package dataprep

import "github.com/go-gota/gota/dataframe"

// UninformativeColumns are dropped before encoding: call duration leaks the
// outcome and the macro-economic indicators are constant within a campaign.
var UninformativeColumns = []string{
	"duration",
	"emp_var_rate",
	"cons_price_idx",
	"cons_conf_idx",
	"euribor3m",
	"nr_employed",
}

// DropColumns removes columns from df. In strict mode any absent column is a
// MissingColumnError; otherwise absent columns are skipped and returned.
func DropColumns(df dataframe.DataFrame, columns []string, strict bool) (dataframe.DataFrame, []string, error) {
	missing := missingColumns(df, columns...)
	if len(missing) > 0 && strict {
		return df, nil, &MissingColumnError{Step: "prune", Columns: missing}
	}

	absent := make(map[string]struct{}, len(missing))
	for _, m := range missing {
		absent[m] = struct{}{}
	}
	var present []string
	for _, c := range columns {
		if _, ok := absent[c]; !ok {
			present = append(present, c)
		}
	}
	if len(present) == 0 {
		return df, missing, nil
	}

	df = df.Drop(present)
	return df, missing, df.Err
}
