package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cognicore/parley/internal/htmltext"
	"github.com/cognicore/parley/internal/llm"
	"github.com/cognicore/parley/pkg/parley"
	"github.com/cognicore/parley/pkg/parley/analysis"
	"github.com/cognicore/parley/pkg/parley/capability"
	"github.com/cognicore/parley/pkg/parley/config"
	"github.com/cognicore/parley/pkg/parley/entities"
	"github.com/cognicore/parley/pkg/parley/internalerr"
	"github.com/cognicore/parley/pkg/parley/store"
	"github.com/cognicore/parley/pkg/parley/store/sqlite"
	"github.com/cognicore/parley/pkg/parley/summary"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a transcript and optionally export a top-K summary",
	Long: `Analyze reads a transcript file line by line and prints the most
frequent words, n-grams, entities and questions together with the issue
category tally.

With --output, the top --save results of every table are written as JSON.
With --db, the exported summary is also recorded in the run history.

Entity recognizers (--ner, comma separated to combine):
  statistical named entities tagged by the prose model (default)
  heuristic   capitalized word runs that do not start a sentence
  gazetteer   phrases from --gazetteer
  llm         OpenAI-compatible chat model (--llm-base-url, OPENAI_API_KEY)
  none        no entities

Example:
  parley analyze chat.log
  parley analyze chat.log --output out/summary.json --save 20
  parley analyze chat.log --ner gazetteer,heuristic --gazetteer names.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	f := analyzeCmd.Flags()

	// Output flags
	f.StringP("output", "o", "", "write the JSON summary to this path")
	f.Int("save", 10, "results kept per table in the exported summary")
	f.Int("top", 10, "results shown per table on the console")

	// Analysis flags
	f.Int("ngram-size", analysis.DefaultNGramSize, "n-gram window size")
	f.String("ner", "statistical", "entity recognizers: statistical, heuristic, gazetteer, llm, none")
	f.Bool("strip-html", false, "strip HTML markup from line text")

	// Resource flags
	f.String("stoplist", "", "stop word list (YAML terms:)")
	f.String("issues", "", "issue categories (YAML categories:)")
	f.String("resolutions", "", "resolution phrases (YAML phrases:)")
	f.String("gazetteer", "", "entity gazetteer (YAML entities:)")
	f.String("lexicon", "", "custom sentiment lexicon replacing the VADER lexicon (YAML lexicon:)")

	// LLM flags
	f.String("llm-base-url", "", "OpenAI-compatible API base URL")
	f.String("llm-model", "", "LLM model name")

	bind := map[string]string{
		keyOutput:      "output",
		keySave:        "save",
		keyTop:         "top",
		keyNGramSize:   "ngram-size",
		keyNER:         "ner",
		keyStripHTML:   "strip-html",
		keyStoplist:    "stoplist",
		keyIssues:      "issues",
		keyResolutions: "resolutions",
		keyGazetteer:   "gazetteer",
		keyLexicon:     "lexicon",
		keyLLMBaseURL:  "llm-base-url",
		keyLLMModel:    "llm-model",
	}
	for key, flag := range bind {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	settings := currentSettings(viper.GetViper())
	logger := newLogger(cmd.ErrOrStderr())

	if settings.Save < 0 {
		return fmt.Errorf("%w: --save must not be negative", internalerr.ErrInvalidInput)
	}

	a, err := buildAnalyzer(settings, &logger)
	if err != nil {
		return err
	}

	res, err := a.Run(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("analysis failed")
		return fmt.Errorf("%s: %w", parley.FailureMessage, err)
	}

	out := cmd.OutOrStdout()
	printReport(out, res, settings.Top)

	if settings.Output == "" {
		return nil
	}

	s, err := summary.Build(res, settings.Save)
	if err != nil {
		return err
	}
	if err := summary.WriteFile(settings.Output, s); err != nil {
		logger.Error().Err(err).Str("output", settings.Output).Msg("export failed")
		return err
	}
	fmt.Fprintf(out, "\nSummary saved to %s\n", settings.Output)

	if settings.DB != "" {
		id, err := recordRun(commandContext(cmd), settings, res, s)
		if err != nil {
			logger.Warn().Err(err).Str("db", settings.DB).Msg("run not recorded")
		} else {
			logger.Debug().Str("id", id).Str("db", settings.DB).Msg("run recorded")
			fmt.Fprintf(out, "Recorded as run %s\n", id)
		}
	}
	return nil
}

// buildAnalyzer wires resources and capabilities from settings.
func buildAnalyzer(s Settings, logger *zerolog.Logger) (*analysis.Analyzer, error) {
	loader := config.Loader{
		StoplistPath:    s.Resources.Stoplist,
		IssuesPath:      s.Resources.Issues,
		ResolutionsPath: s.Resources.Resolutions,
		GazetteerPath:   s.Resources.Gazetteer,
		LexiconPath:     s.Resources.Lexicon,
	}
	comp, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load configs: %w", err)
	}

	recognizer, err := buildRecognizer(s, comp)
	if err != nil {
		return nil, err
	}

	opts := analysis.Options{
		StopWords:         comp.StopWords,
		Recognizer:        recognizer,
		Scorer:            capability.NewCachedScorer(comp.Scorer(), 0),
		Classifier:        comp.Classifier,
		ResolutionPhrases: comp.ResolutionPhrases,
		NGramSize:         s.NGramSize,
		Logger:            logger,
	}
	if s.StripHTML {
		opts.Preprocess = htmltext.Strip
	}
	return analysis.New(opts)
}

// buildRecognizer turns a comma-separated --ner value into a recognizer.
func buildRecognizer(s Settings, comp *config.Components) (capability.EntityRecognizer, error) {
	var chain entities.Chain
	for _, name := range strings.Split(s.NER, ",") {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "", "none":
		case "statistical":
			chain = append(chain, capability.NewCachedRecognizer(entities.NewStatistical(), 0))
		case "heuristic":
			chain = append(chain, entities.NewCapitalized())
		case "gazetteer":
			if comp.Gazetteer == nil {
				return nil, fmt.Errorf("%w: --ner gazetteer needs --gazetteer", internalerr.ErrInvalidConfig)
			}
			chain = append(chain, comp.Gazetteer)
		case "llm":
			client := &llm.Client{
				BaseURL: s.LLM.BaseURL,
				APIKey:  s.LLM.APIKey,
				Model:   s.LLM.Model,
				Timeout: s.LLM.Timeout,
			}
			if client.APIKey == "" && client.BaseURL == "" {
				return nil, fmt.Errorf("%w: --ner llm needs OPENAI_API_KEY or --llm-base-url", internalerr.ErrInvalidConfig)
			}
			chain = append(chain, capability.NewCachedRecognizer(llm.NewRecognizer(client), 0))
		default:
			return nil, fmt.Errorf("%w: unknown recognizer %q", internalerr.ErrInvalidConfig, name)
		}
	}

	switch len(chain) {
	case 0:
		return capability.NoEntities, nil
	case 1:
		return chain[0], nil
	default:
		return chain, nil
	}
}

func recordRun(ctx context.Context, s Settings, res *analysis.Result, sum *summary.Summary) (string, error) {
	data, err := summary.Marshal(sum)
	if err != nil {
		return "", err
	}

	st, err := sqlite.OpenSQLite(ctx, s.DB)
	if err != nil {
		return "", err
	}
	defer st.Close()

	run := store.Run{
		ID:        store.NewID(),
		Source:    res.Source,
		Output:    s.Output,
		CreatedAt: res.StartedAt,
		TopK:      s.Save,
		NGramSize: res.NGramSize,
		Lines:     res.Lines,
		Summary:   data,
	}
	if err := st.SaveRun(ctx, run); err != nil {
		return "", err
	}
	return run.ID, nil
}
