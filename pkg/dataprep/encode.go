package dataprep

import (
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// EncodeMode selects which columns the Encoder expands.
type EncodeMode string

const (
	// EncodeAll expands every non-numeric column plus every declared column.
	EncodeAll EncodeMode = "all"
	// EncodeDeclared expands only the declared columns.
	EncodeDeclared EncodeMode = "declared"
)

// LabelColumn is the two-class target. It always expands to y_no and y_yes.
const LabelColumn = "y"

// LabelClasses are the accepted values of LabelColumn, in output order.
var LabelClasses = []string{"no", "yes"}

// Encoder one-hot encodes categorical columns.
//
// Output order: columns that are not encoded keep their relative order and
// come first, followed by one indicator group per encoded column in the order
// those columns appeared. Inside a group, categories are sorted.
type Encoder struct {
	Mode     EncodeMode
	Declared []string
	// Fixed pins the full category set of a column. Fixed columns are always
	// encoded and any value outside the set is an EncodingMismatchError.
	Fixed map[string][]string
}

// NewEncoder returns an Encoder with the label column pinned to LabelClasses.
// Declared names are normalized the same way as column headers.
func NewEncoder(mode EncodeMode, declared []string) *Encoder {
	names := make([]string, 0, len(declared))
	for _, d := range declared {
		if d = NormalizeName(d); d != "" {
			names = append(names, d)
		}
	}
	return &Encoder{
		Mode:     mode,
		Declared: names,
		Fixed:    map[string][]string{LabelColumn: LabelClasses},
	}
}

// Columns returns the names Encode would expand, in frame order.
func (e *Encoder) Columns(df dataframe.DataFrame) ([]string, error) {
	var required []string
	for name := range e.Fixed {
		required = append(required, name)
	}
	sort.Strings(required)
	if e.Mode == EncodeDeclared {
		required = append(required, e.Declared...)
	}
	if err := RequireColumns(df, "encode", required...); err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(e.Declared)+len(e.Fixed))
	for _, d := range e.Declared {
		wanted[d] = struct{}{}
	}
	for name := range e.Fixed {
		wanted[name] = struct{}{}
	}

	var cols []string
	for _, name := range df.Names() {
		if _, ok := wanted[name]; ok {
			cols = append(cols, name)
			continue
		}
		if e.Mode == EncodeAll && df.Col(name).Type() == series.String && !IsNumeric(df.Col(name).Records()) {
			cols = append(cols, name)
		}
	}
	return cols, nil
}

// Encode replaces every selected column by its indicator columns.
func (e *Encoder) Encode(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	cols, err := e.Columns(df)
	if err != nil {
		return df, err
	}
	if len(cols) == 0 {
		return df, nil
	}
	encode := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		encode[c] = struct{}{}
	}

	var kept, indicators []series.Series
	for _, name := range df.Names() {
		col := df.Col(name)
		if _, ok := encode[name]; !ok {
			kept = append(kept, col)
			continue
		}
		values := col.Records()
		categories, err := e.categories(name, values)
		if err != nil {
			return df, err
		}
		indicators = append(indicators, EncodeCategorical(name, values, categories)...)
	}

	all := append(kept, indicators...)
	seen := make(map[string]struct{}, len(all))
	for _, s := range all {
		if _, ok := seen[s.Name]; ok {
			return df, &DuplicateColumnError{Name: s.Name}
		}
		seen[s.Name] = struct{}{}
	}

	out := dataframe.New(all...)
	return out, out.Err
}

func (e *Encoder) categories(name string, values []string) ([]string, error) {
	fixed, ok := e.Fixed[name]
	if !ok {
		return Categories(values), nil
	}
	allowed := make(map[string]struct{}, len(fixed))
	for _, c := range fixed {
		allowed[c] = struct{}{}
	}
	unexpected := map[string]struct{}{}
	for _, v := range values {
		if _, ok := allowed[v]; !ok {
			unexpected[v] = struct{}{}
		}
	}
	if len(unexpected) > 0 {
		found := make([]string, 0, len(unexpected))
		for v := range unexpected {
			found = append(found, v)
		}
		sort.Strings(found)
		return nil, &EncodingMismatchError{Column: name, Expected: fixed, Found: found}
	}
	return fixed, nil
}

// Categories returns the sorted distinct non-missing values.
func Categories(values []string) []string {
	unique := map[string]struct{}{}
	for _, v := range values {
		if IsMissing(v) {
			continue
		}
		unique[v] = struct{}{}
	}
	out := make([]string, 0, len(unique))
	for v := range unique {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// EncodeCategorical builds one 0/1 column named <name>_<category> per
// category. Rows holding a missing value are 0 in every column.
func EncodeCategorical(name string, values []string, categories []string) []series.Series {
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c] = i
	}
	columns := make([][]int, len(categories))
	for i := range columns {
		columns[i] = make([]int, len(values))
	}
	for row, v := range values {
		if i, ok := index[v]; ok {
			columns[i][row] = 1
		}
	}

	out := make([]series.Series, len(categories))
	for i, c := range categories {
		out[i] = series.New(columns[i], series.Int, name+"_"+c)
	}
	return out
}
