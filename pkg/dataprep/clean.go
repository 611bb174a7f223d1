package dataprep

import (
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// NormalizeName replaces every "." with "_" and strips trailing "_".
// "job.admin." becomes "job_admin". Applying it twice changes nothing.
func NormalizeName(name string) string {
	return strings.TrimRight(strings.ReplaceAll(name, ".", "_"), "_")
}

// IsMissing reports whether a cell holds one of the missing-value markers.
func IsMissing(v string) bool {
	return v == "" || v == "NA" || v == "NaN"
}

// IsNumeric reports whether every non-missing value parses as a float.
func IsNumeric(values []string) bool {
	for _, v := range values {
		if IsMissing(v) {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return false
		}
	}
	return true
}

// NormalizeColumns renames every column with NormalizeName.
func NormalizeColumns(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	names := df.Names()
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		n := NormalizeName(name)
		if _, ok := seen[n]; ok {
			return df, &DuplicateColumnError{Name: n}
		}
		seen[n] = struct{}{}
	}

	for _, name := range names {
		if n := NormalizeName(name); n != name {
			df = df.Rename(n, name)
		}
	}
	return df, df.Err
}

// NormalizeValues applies NormalizeName to every value of every text column,
// so category values such as "admin." or "basic.4y" yield valid indicator
// names later on. Numeric columns are left as read.
func NormalizeValues(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	for _, name := range df.Names() {
		values := df.Col(name).Records()
		if IsNumeric(values) {
			continue
		}
		for i, v := range values {
			values[i] = NormalizeName(v)
		}
		df = df.Mutate(series.New(values, series.String, name))
	}
	return df, df.Err
}

// missingColumns returns the columns that df does not have, in argument order.
func missingColumns(df dataframe.DataFrame, columns ...string) []string {
	present := make(map[string]struct{}, df.Ncol())
	for _, name := range df.Names() {
		present[name] = struct{}{}
	}
	var missing []string
	for _, c := range columns {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

// RequireColumns fails with a MissingColumnError naming every absent column.
func RequireColumns(df dataframe.DataFrame, step string, columns ...string) error {
	if missing := missingColumns(df, columns...); len(missing) > 0 {
		return &MissingColumnError{Step: step, Columns: missing}
	}
	return nil
}
