package config

import (
	"path/filepath"

	"featureprep/pkg/dataprep"
	"featureprep/pkg/loader"
	"featureprep/pkg/pipeline"
)

// Config is the run configuration of the job. Keys are flat and match the
// command-line flag names.
type Config struct {
	FilePath            string   `koanf:"filepath"             validate:"required"`
	FileName            string   `koanf:"filename"             validate:"required"`
	OutputPath          string   `koanf:"outputpath"           validate:"required"`
	CategoricalFeatures []string `koanf:"categorical_features"`
	EncodeMode          string   `koanf:"encode_mode"          validate:"required,oneof=all declared"`
	StrictPrune         bool     `koanf:"strict_prune"`
	DropColumns         []string `koanf:"drop_columns"`
	Seed                int64    `koanf:"seed"`
	TrainCut            float64  `koanf:"train_cut"            validate:"gte=0,lte=1"`
	ValidationCut       float64  `koanf:"validation_cut"       validate:"gte=0,lte=1,gtefield=TrainCut"`
	LogLevel            string   `koanf:"log_level"            validate:"oneof=debug info warn error disabled"`
	LogJSON             bool     `koanf:"log_json"`
	LogSource           bool     `koanf:"log_source"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	opts := pipeline.DefaultOptions()
	return &Config{
		FilePath:            "/opt/ml/processing/input/",
		FileName:            "bank-additional-full.csv",
		OutputPath:          "/opt/ml/processing/output/",
		CategoricalFeatures: opts.CategoricalFeatures,
		EncodeMode:          string(opts.EncodeMode),
		StrictPrune:         opts.StrictPrune,
		DropColumns:         opts.DropColumns,
		Seed:                opts.Seed,
		TrainCut:            opts.Cuts.Train,
		ValidationCut:       opts.Cuts.Validation,
		LogLevel:            "info",
	}
}

// InputFile joins the input directory and file name.
func (c *Config) InputFile() string {
	return filepath.Join(c.FilePath, c.FileName)
}

// Options converts the configuration into transform options.
func (c *Config) Options() pipeline.Options {
	return pipeline.Options{
		CategoricalFeatures: c.CategoricalFeatures,
		EncodeMode:          dataprep.EncodeMode(c.EncodeMode),
		StrictPrune:         c.StrictPrune,
		DropColumns:         c.DropColumns,
		Seed:                c.Seed,
		Cuts:                loader.Cuts{Train: c.TrainCut, Validation: c.ValidationCut},
	}
}
