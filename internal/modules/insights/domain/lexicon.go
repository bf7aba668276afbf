package domain

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

type ThemeGroup string

const (
	GroupEmotion  ThemeGroup = "emotion"
	GroupLifeArea ThemeGroup = "life-area"
)

type ThemeDef struct {
	Name     string     `yaml:"name"`
	Group    ThemeGroup `yaml:"group"`
	Keywords []string   `yaml:"keywords"`
}

// Lexicon is the static word data the analyzer is built from.
// Themes are kept in declaration order.
type Lexicon struct {
	Positive   []string   `yaml:"positive"`
	Negative   []string   `yaml:"negative"`
	Themes     []ThemeDef `yaml:"themes"`
	Stopwords  []string   `yaml:"stopwords"`
	Excluded   []string   `yaml:"excluded"`
	Meaningful []string   `yaml:"meaningful"`
}

//go:embed lexicon.yaml
var defaultLexiconYAML []byte

var loadDefault = sync.OnceValues(func() (Lexicon, error) {
	return ParseLexicon(defaultLexiconYAML)
})

// DefaultLexicon returns the lexicon shipped with the binary.
func DefaultLexicon() Lexicon {
	lex, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("embedded lexicon: %v", err))
	}
	return lex
}

func ParseLexicon(payload []byte) (Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(payload, &lex); err != nil {
		return Lexicon{}, fmt.Errorf("decode lexicon: %w", err)
	}
	if err := lex.Validate(); err != nil {
		return Lexicon{}, err
	}
	return lex, nil
}

// Validate checks the structural rules of the tables. Positive and negative
// words must not overlap since a shared word would cancel itself out.
func (l Lexicon) Validate() error {
	if len(l.Themes) == 0 {
		return fmt.Errorf("lexicon has no themes")
	}
	names := map[string]struct{}{}
	for _, def := range l.Themes {
		if def.Name == "" {
			return fmt.Errorf("theme name is required")
		}
		if _, dup := names[def.Name]; dup {
			return fmt.Errorf("duplicate theme %q", def.Name)
		}
		names[def.Name] = struct{}{}
		if def.Group != GroupEmotion && def.Group != GroupLifeArea {
			return fmt.Errorf("theme %q: unsupported group %q", def.Name, def.Group)
		}
		if len(def.Keywords) == 0 {
			return fmt.Errorf("theme %q has no keywords", def.Name)
		}
	}
	negative := toSet(l.Negative)
	for _, word := range l.Positive {
		if _, ok := negative[word]; ok {
			return fmt.Errorf("word %q is both positive and negative", word)
		}
	}
	return nil
}

// EmotionNames lists the emotion-group theme names in declaration order.
func (l Lexicon) EmotionNames() []string {
	out := make([]string, 0, len(l.Themes))
	for _, def := range l.Themes {
		if def.Group == GroupEmotion {
			out = append(out, def.Name)
		}
	}
	return out
}

type compiledTheme struct {
	name     string
	emotion  bool
	keywords map[string]struct{}
}

type compiledLexicon struct {
	positive   map[string]struct{}
	negative   map[string]struct{}
	themes     []compiledTheme
	emotions   map[string]struct{}
	keywords   map[string]struct{}
	stopwords  map[string]struct{}
	excluded   map[string]struct{}
	meaningful map[string]struct{}
}

func compile(l Lexicon) compiledLexicon {
	c := compiledLexicon{
		positive:   toSet(l.Positive),
		negative:   toSet(l.Negative),
		themes:     make([]compiledTheme, 0, len(l.Themes)),
		emotions:   map[string]struct{}{},
		keywords:   map[string]struct{}{},
		stopwords:  toSet(l.Stopwords),
		excluded:   toSet(l.Excluded),
		meaningful: toSet(l.Meaningful),
	}
	for _, def := range l.Themes {
		emotion := def.Group == GroupEmotion
		if emotion {
			c.emotions[def.Name] = struct{}{}
		}
		for _, kw := range def.Keywords {
			c.keywords[kw] = struct{}{}
		}
		c.themes = append(c.themes, compiledTheme{name: def.Name, emotion: emotion, keywords: toSet(def.Keywords)})
	}
	return c
}

func toSet(words []string) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}
