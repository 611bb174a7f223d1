// Command featureprep turns the bank marketing campaign CSV into headerless
// train, validation and test files ready for a gradient-boosting trainer.
//
// Example:
//
//	featureprep --filepath ./data --filename bank-additional-full.csv --outputpath ./out
package main

import (
	"os"

	"github.com/spf13/afero"

	"featureprep/pkg/config"
)

func main() {
	cmd := NewRootCmd(afero.NewOsFs(), config.NewLoader())
	os.Exit(execute(cmd, os.Args[1:], os.Stderr))
}
