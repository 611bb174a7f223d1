package pipeline

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"featureprep/pkg/dataprep"
	"featureprep/pkg/loader"
)

// DefaultCategoricalFeatures are the text columns of the bank marketing dataset.
var DefaultCategoricalFeatures = []string{
	"y", "job", "marital", "education", "default", "housing",
	"loan", "contact", "month", "day_of_week", "poutcome",
}

// Options control Transform. The seed is explicit so the result depends only
// on the input and these options.
type Options struct {
	CategoricalFeatures []string
	EncodeMode          dataprep.EncodeMode
	StrictPrune         bool
	DropColumns         []string
	Seed                int64
	Cuts                loader.Cuts
}

func DefaultOptions() Options {
	return Options{
		CategoricalFeatures: append([]string(nil), DefaultCategoricalFeatures...),
		EncodeMode:          dataprep.EncodeAll,
		StrictPrune:         true,
		DropColumns:         append([]string(nil), dataprep.UninformativeColumns...),
		Seed:                loader.DefaultSeed,
		Cuts:                loader.DefaultCuts,
	}
}

func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.EncodeMode,
			validation.Required,
			validation.In(dataprep.EncodeAll, dataprep.EncodeDeclared),
		),
		validation.Field(&o.CategoricalFeatures,
			validation.When(o.EncodeMode == dataprep.EncodeDeclared, validation.Required),
			validation.Each(validation.Required),
		),
		validation.Field(&o.DropColumns, validation.Each(validation.Required)),
		validation.Field(&o.Cuts),
	)
}
