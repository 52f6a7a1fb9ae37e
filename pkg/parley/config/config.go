package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/parley/pkg/parley/classify"
)

var (
	//go:embed stoplist.yaml
	defaultStoplistYAML []byte
	//go:embed issues.yaml
	defaultIssuesYAML []byte
	//go:embed resolutions.yaml
	defaultResolutionsYAML []byte
)

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	var sl Stoplist
	if err := loadYAML(path, &sl); err != nil {
		return nil, err
	}
	return &sl, nil
}

// DefaultStoplist returns the embedded English stop words.
func DefaultStoplist() *Stoplist {
	var sl Stoplist
	mustParse("stoplist", defaultStoplistYAML, &sl)
	return &sl
}

// Issues holds the ordered issue categories.
type Issues struct {
	Categories []classify.Category `yaml:"categories"`
}

// LoadIssues loads issue categories from a YAML file
func LoadIssues(path string) (*Issues, error) {
	var is Issues
	if err := loadYAML(path, &is); err != nil {
		return nil, err
	}
	return &is, nil
}

// DefaultIssues returns the embedded billing/technical/support categories.
func DefaultIssues() *Issues {
	var is Issues
	mustParse("issues", defaultIssuesYAML, &is)
	return &is
}

// Resolutions lists the phrases that mark a resolution statement.
type Resolutions struct {
	Phrases []string `yaml:"phrases"`
}

// LoadResolutions loads resolution phrases from a YAML file
func LoadResolutions(path string) (*Resolutions, error) {
	var rs Resolutions
	if err := loadYAML(path, &rs); err != nil {
		return nil, err
	}
	rs.Phrases = compact(rs.Phrases)
	return &rs, nil
}

// DefaultResolutions returns the embedded resolution phrases.
func DefaultResolutions() *Resolutions {
	var rs Resolutions
	mustParse("resolutions", defaultResolutionsYAML, &rs)
	return &rs
}

// Defaults returns the embedded resource files keyed by the file name
// `config init` writes them under.
func Defaults() map[string][]byte {
	return map[string][]byte{
		"stoplist.yaml":    defaultStoplistYAML,
		"issues.yaml":      defaultIssuesYAML,
		"resolutions.yaml": defaultResolutionsYAML,
	}
}

func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func mustParse(name string, data []byte, out any) {
	if err := yaml.Unmarshal(data, out); err != nil {
		panic(fmt.Sprintf("config: embedded %s: %v", name, err))
	}
}

// compact drops blank entries. Phrases keep their case.
func compact(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
