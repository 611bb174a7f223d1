package data

import (
	"bufio"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/spf13/afero"
)

// ReadCSV loads a comma-separated file with a header row. Every column is
// kept as text so numbers are written back exactly as they were read.
func ReadCSV(fs afero.Fs, path string) (dataframe.DataFrame, error) {
	file, err := fs.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	df := dataframe.ReadCSV(bufio.NewReader(file),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return df, fmt.Errorf("read %s: %w", path, df.Err)
	}
	return df, nil
}
