package cli

import (
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/cognicore/parley/pkg/parley/analysis"
)

// Viper keys. Nested keys map to PARLEY_<SECTION>_<NAME> environment
// variables.
const (
	keyOutput    = "output"
	keySave      = "save"
	keyTop       = "top"
	keyNGramSize = "ngram_size"
	keyNER       = "ner"
	keyStripHTML = "strip_html"
	keyDB        = "db"

	keyStoplist    = "resources.stoplist"
	keyIssues      = "resources.issues"
	keyResolutions = "resources.resolutions"
	keyGazetteer   = "resources.gazetteer"
	keyLexicon     = "resources.lexicon"

	keyLLMBaseURL = "llm.base_url"
	keyLLMModel   = "llm.model"
	keyLLMAPIKey  = "llm.api_key"
	keyLLMTimeout = "llm.timeout"
)

// Settings is the effective CLI configuration.
type Settings struct {
	Output    string    `yaml:"output"`
	Save      int       `yaml:"save"`
	Top       int       `yaml:"top"`
	NGramSize int       `yaml:"ngram_size"`
	NER       string    `yaml:"ner"`
	StripHTML bool      `yaml:"strip_html"`
	DB        string    `yaml:"db"`
	Resources Resources `yaml:"resources"`
	LLM       LLM       `yaml:"llm"`
}

// Resources points at optional YAML resource files. Empty paths use the
// embedded defaults.
type Resources struct {
	Stoplist    string `yaml:"stoplist"`
	Issues      string `yaml:"issues"`
	Resolutions string `yaml:"resolutions"`
	Gazetteer   string `yaml:"gazetteer"`
	Lexicon     string `yaml:"lexicon"`
}

// LLM configures the OpenAI-compatible entity recognizer.
type LLM struct {
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Save:      10,
		Top:       10,
		NGramSize: analysis.DefaultNGramSize,
		NER:       "statistical",
		LLM: LLM{
			Model:   "gpt-4o-mini",
			Timeout: 30 * time.Second,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault(keyOutput, d.Output)
	v.SetDefault(keySave, d.Save)
	v.SetDefault(keyTop, d.Top)
	v.SetDefault(keyNGramSize, d.NGramSize)
	v.SetDefault(keyNER, d.NER)
	v.SetDefault(keyStripHTML, d.StripHTML)
	v.SetDefault(keyDB, d.DB)
	v.SetDefault(keyStoplist, "")
	v.SetDefault(keyIssues, "")
	v.SetDefault(keyResolutions, "")
	v.SetDefault(keyGazetteer, "")
	v.SetDefault(keyLexicon, "")
	v.SetDefault(keyLLMBaseURL, d.LLM.BaseURL)
	v.SetDefault(keyLLMModel, d.LLM.Model)
	v.SetDefault(keyLLMAPIKey, "")
	v.SetDefault(keyLLMTimeout, d.LLM.Timeout)
}

// currentSettings reads the merged flags, environment, config file and
// defaults.
func currentSettings(v *viper.Viper) Settings {
	s := Settings{
		Output:    v.GetString(keyOutput),
		Save:      v.GetInt(keySave),
		Top:       v.GetInt(keyTop),
		NGramSize: v.GetInt(keyNGramSize),
		NER:       v.GetString(keyNER),
		StripHTML: v.GetBool(keyStripHTML),
		DB:        v.GetString(keyDB),
		Resources: Resources{
			Stoplist:    v.GetString(keyStoplist),
			Issues:      v.GetString(keyIssues),
			Resolutions: v.GetString(keyResolutions),
			Gazetteer:   v.GetString(keyGazetteer),
			Lexicon:     v.GetString(keyLexicon),
		},
		LLM: LLM{
			BaseURL: v.GetString(keyLLMBaseURL),
			Model:   v.GetString(keyLLMModel),
			APIKey:  v.GetString(keyLLMAPIKey),
			Timeout: v.GetDuration(keyLLMTimeout),
		},
	}
	if s.LLM.APIKey == "" {
		s.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	return s
}

// redacted hides secrets for display.
func (s Settings) redacted() Settings {
	if s.LLM.APIKey != "" {
		s.LLM.APIKey = "********"
	}
	return s
}
