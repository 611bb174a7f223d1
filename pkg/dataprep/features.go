package dataprep

import (
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	// NoPreviousContact is 1 when pdays holds the "never contacted" sentinel.
	NoPreviousContact = "no_previous_contact"
	// NotWorking is 1 when job is student, retired or unemployed.
	NotWorking = "not_working"

	PdaysColumn = "pdays"
	JobColumn   = "job"

	pdaysNeverContacted = 999
)

var notWorkingJobs = map[string]struct{}{
	"student":    {},
	"retired":    {},
	"unemployed": {},
}

// NoPreviousContactIndicator marks pdays values equal to 999. Values that do
// not parse as numbers are never equal to the sentinel.
func NoPreviousContactIndicator(pdays []string) []int {
	out := make([]int, len(pdays))
	for i, v := range pdays {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil && f == pdaysNeverContacted {
			out[i] = 1
		}
	}
	return out
}

// NotWorkingIndicator marks jobs in the not-working set.
func NotWorkingIndicator(jobs []string) []int {
	out := make([]int, len(jobs))
	for i, v := range jobs {
		if _, ok := notWorkingJobs[v]; ok {
			out[i] = 1
		}
	}
	return out
}

// DeriveIndicators appends the no_previous_contact and not_working columns.
func DeriveIndicators(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := RequireColumns(df, "derive", PdaysColumn, JobColumn); err != nil {
		return df, err
	}
	noContact := NoPreviousContactIndicator(df.Col(PdaysColumn).Records())
	notWorking := NotWorkingIndicator(df.Col(JobColumn).Records())

	df = df.Mutate(series.New(noContact, series.Int, NoPreviousContact)).
		Mutate(series.New(notWorking, series.Int, NotWorking))
	return df, df.Err
}
