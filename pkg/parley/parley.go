// Package parley is the caller-facing entry point: analyze a transcript
// file with the built-in resources and export its top-K summary.
package parley

import (
	"github.com/cognicore/parley/pkg/parley/analysis"
	"github.com/cognicore/parley/pkg/parley/capability"
	"github.com/cognicore/parley/pkg/parley/config"
	"github.com/cognicore/parley/pkg/parley/summary"
)

// FailureMessage is shown to users when a run yields no result.
const FailureMessage = "analysis was not completed due to an error or file not found"

// RunAnalysis analyzes the file at path with the embedded stop words, issue
// categories and resolution phrases, scoring sentiment with the full VADER
// lexicon. A nil recognizer
// finds no entities. A missing file returns internalerr.ErrFileNotAccessible.
func RunAnalysis(path string, recognizer capability.EntityRecognizer, ngramSize int) (*analysis.Result, error) {
	comp, err := (&config.Loader{}).Load()
	if err != nil {
		return nil, err
	}
	a, err := analysis.New(analysis.Options{
		StopWords:         comp.StopWords,
		Recognizer:        recognizer,
		Scorer:            comp.Scorer(),
		Classifier:        comp.Classifier,
		ResolutionPhrases: comp.ResolutionPhrases,
		NGramSize:         ngramSize,
	})
	if err != nil {
		return nil, err
	}
	return a.Run(path)
}

// ExportSummary writes the top-K summary of result to outputPath.
func ExportSummary(result *analysis.Result, outputPath string, topK int) error {
	return summary.Export(result, outputPath, topK)
}
