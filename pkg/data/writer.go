package data

import (
	"bufio"
	"fmt"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/afero"

	"featureprep/pkg/dataprep"
)

const (
	// LabelYes is the positive-class indicator written as the label.
	LabelYes = dataprep.LabelColumn + "_yes"
	// LabelNo is never written; it is implied by LabelYes.
	LabelNo = dataprep.LabelColumn + "_no"
)

// Output file locations relative to the output directory.
const (
	TrainFile        = "train/train_script.csv"
	ValidationFile   = "validation/validation_script.csv"
	TestLabelsFile   = "test/test_script_y.csv"
	TestFeaturesFile = "test/test_script_x.csv"
)

// Artifacts are the four frames written by WriteArtifacts.
type Artifacts struct {
	// Train and Validation carry y_yes first, then the features.
	Train      dataframe.DataFrame
	Validation dataframe.DataFrame
	// TestLabels holds y_yes only; TestFeatures everything but the labels.
	TestLabels   dataframe.DataFrame
	TestFeatures dataframe.DataFrame
}

// Assemble orders the columns of each partition for output. It fails before
// anything is written if a partition lacks the label columns.
func Assemble(train, validation, test dataframe.DataFrame) (*Artifacts, error) {
	var err error
	a := &Artifacts{}
	if a.Train, err = LabelFirst(train); err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	if a.Validation, err = LabelFirst(validation); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if a.TestLabels, err = Labels(test); err != nil {
		return nil, fmt.Errorf("test: %w", err)
	}
	if a.TestFeatures, err = Features(test); err != nil {
		return nil, fmt.Errorf("test: %w", err)
	}
	return a, nil
}

// LabelFirst puts y_yes first followed by every feature column in order.
func LabelFirst(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := dataprep.RequireColumns(df, "assemble", LabelYes, LabelNo); err != nil {
		return df, err
	}
	order := []string{LabelYes}
	order = append(order, featureNames(df)...)
	out := df.Select(order)
	return out, out.Err
}

// Labels keeps y_yes only.
func Labels(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := dataprep.RequireColumns(df, "assemble", LabelYes, LabelNo); err != nil {
		return df, err
	}
	out := df.Select([]string{LabelYes})
	return out, out.Err
}

// Features drops y_yes and y_no.
func Features(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := dataprep.RequireColumns(df, "assemble", LabelYes, LabelNo); err != nil {
		return df, err
	}
	out := df.Select(featureNames(df))
	return out, out.Err
}

func featureNames(df dataframe.DataFrame) []string {
	var names []string
	for _, name := range df.Names() {
		if name != LabelYes && name != LabelNo {
			names = append(names, name)
		}
	}
	return names
}

// WriteArtifacts writes the four artifacts under outputPath without header
// or index, creating the sub-directories as needed.
func WriteArtifacts(fs afero.Fs, outputPath string, a *Artifacts) error {
	files := []struct {
		path string
		df   dataframe.DataFrame
	}{
		{TrainFile, a.Train},
		{ValidationFile, a.Validation},
		{TestLabelsFile, a.TestLabels},
		{TestFeaturesFile, a.TestFeatures},
	}
	for _, f := range files {
		if err := writeCSV(fs, filepath.Join(outputPath, f.path), f.df); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(fs afero.Fs, path string, df dataframe.DataFrame) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	file, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	if err := df.WriteCSV(bw, dataframe.WriteHeader(false)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return file.Close()
}
