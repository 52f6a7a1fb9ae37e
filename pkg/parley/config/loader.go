package config

import (
	"fmt"

	"github.com/cognicore/parley/pkg/parley/capability"
	"github.com/cognicore/parley/pkg/parley/classify"
	"github.com/cognicore/parley/pkg/parley/entities"
	"github.com/cognicore/parley/pkg/parley/sentiment"
)

// Loader loads all configuration files and constructs components.
// Empty paths fall back to the embedded defaults.
type Loader struct {
	StoplistPath    string
	IssuesPath      string
	ResolutionsPath string
	GazetteerPath   string
	LexiconPath     string
}

// Components holds all loaded configuration components
type Components struct {
	StopWords         capability.StopSet
	Classifier        *classify.Classifier
	ResolutionPhrases []string
	Gazetteer         *entities.Gazetteer // nil without GazetteerPath
	Lexicon           *sentiment.Lexicon // nil without LexiconPath
}

// Scorer returns the sentiment scorer: Vader over a custom lexicon when
// one was loaded, the full VADER lexicon otherwise.
func (c *Components) Scorer() capability.SentimentScorer {
	if c.Lexicon != nil {
		return sentiment.NewVader(c.Lexicon)
	}
	return sentiment.NewIntensity()
}

// Load reads all configuration files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	// Load stoplist
	stoplist := DefaultStoplist()
	if l.StoplistPath != "" {
		var err error
		if stoplist, err = LoadStoplist(l.StoplistPath); err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
	}
	comp.StopWords = capability.NewStopSet(stoplist.Terms)

	// Load issue categories
	issues := DefaultIssues()
	if l.IssuesPath != "" {
		var err error
		if issues, err = LoadIssues(l.IssuesPath); err != nil {
			return nil, fmt.Errorf("load issues: %w", err)
		}
	}
	classifier, err := classify.New(issues.Categories)
	if err != nil {
		return nil, fmt.Errorf("load issues: %w", err)
	}
	comp.Classifier = classifier

	// Load resolution phrases
	resolutions := DefaultResolutions()
	if l.ResolutionsPath != "" {
		if resolutions, err = LoadResolutions(l.ResolutionsPath); err != nil {
			return nil, fmt.Errorf("load resolutions: %w", err)
		}
	}
	comp.ResolutionPhrases = resolutions.Phrases

	if l.GazetteerPath != "" {
		if comp.Gazetteer, err = entities.LoadGazetteer(l.GazetteerPath); err != nil {
			return nil, fmt.Errorf("load gazetteer: %w", err)
		}
	}

	if l.LexiconPath != "" {
		if comp.Lexicon, err = sentiment.LoadLexicon(l.LexiconPath); err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
	}

	return comp, nil
}
