package data

import (
	"encoding/csv"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"featureprep/pkg/dataprep"
)

func encodedFrame(t *testing.T, rows int) dataframe.DataFrame {
	t.Helper()
	ages := []string{"56", "24", "63"}[:rows]
	yes := []int{0, 1, 1}[:rows]
	no := []int{1, 0, 0}[:rows]
	student := []int{0, 1, 0}[:rows]
	df := dataframe.New(
		series.New(ages, series.String, "age"),
		series.New(student, series.Int, "job_student"),
		series.New(no, series.Int, LabelNo),
		series.New(yes, series.Int, LabelYes),
	)
	require.NoError(t, df.Err)
	return df
}

func readAll(t *testing.T, fs afero.Fs, path string) [][]string {
	t.Helper()
	raw, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	if len(raw) == 0 {
		return nil
	}
	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)
	return records
}

func TestLabelFirst(t *testing.T) {
	t.Run("Should put y_yes first and drop y_no", func(t *testing.T) {
		out, err := LabelFirst(encodedFrame(t, 3))

		require.NoError(t, err)
		assert.Equal(t, []string{LabelYes, "age", "job_student"}, out.Names())
	})

	t.Run("Should fail without label columns", func(t *testing.T) {
		df := encodedFrame(t, 3).Drop(LabelNo)

		_, err := LabelFirst(df)

		var missing *dataprep.MissingColumnError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, []string{LabelNo}, missing.Columns)
	})
}

func TestFeaturesAndLabels(t *testing.T) {
	t.Run("Should split labels from features", func(t *testing.T) {
		df := encodedFrame(t, 3)

		labels, err := Labels(df)
		require.NoError(t, err)
		features, err := Features(df)
		require.NoError(t, err)

		assert.Equal(t, []string{LabelYes}, labels.Names())
		assert.Equal(t, []string{"age", "job_student"}, features.Names())
	})
}

func TestWriteArtifacts(t *testing.T) {
	t.Run("Should write headerless files in the output layout", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		df := encodedFrame(t, 3)
		artifacts, err := Assemble(df, df, df)
		require.NoError(t, err)

		require.NoError(t, WriteArtifacts(fs, "/out", artifacts))

		train := readAll(t, fs, filepath.Join("/out", TrainFile))
		assert.Equal(t, [][]string{
			{"0", "56", "0"},
			{"1", "24", "1"},
			{"1", "63", "0"},
		}, train)
		assert.Equal(t, train, readAll(t, fs, filepath.Join("/out", ValidationFile)))
		assert.Equal(t, [][]string{{"0"}, {"1"}, {"1"}}, readAll(t, fs, filepath.Join("/out", TestLabelsFile)))
		assert.Equal(t, [][]string{
			{"56", "0"},
			{"24", "1"},
			{"63", "0"},
		}, readAll(t, fs, filepath.Join("/out", TestFeaturesFile)))
	})

	t.Run("Should write an empty file for an empty partition", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		full := encodedFrame(t, 3)
		empty := dataframe.New(
			series.New([]string{}, series.String, "age"),
			series.New([]string{}, series.Int, "job_student"),
			series.New([]string{}, series.Int, LabelNo),
			series.New([]string{}, series.Int, LabelYes),
		)
		require.NoError(t, empty.Err)
		artifacts, err := Assemble(full, empty, full)
		require.NoError(t, err)

		require.NoError(t, WriteArtifacts(fs, "/out", artifacts))

		assert.Empty(t, readAll(t, fs, filepath.Join("/out", ValidationFile)))
		assert.Len(t, readAll(t, fs, filepath.Join("/out", TrainFile)), 3)
	})

	t.Run("Should not assemble when a partition lacks labels", func(t *testing.T) {
		df := encodedFrame(t, 3)

		_, err := Assemble(df, df, df.Drop(LabelYes))

		var missing *dataprep.MissingColumnError
		require.True(t, errors.As(err, &missing))
		assert.Contains(t, err.Error(), "test")
	})
}
