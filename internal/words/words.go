// Package words provides word lists for the word-guessing game.
package words

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rogersnm/labkit/internal/markdown"
)

// Dictionary is a list of lowercase words of one length.
type Dictionary struct {
	Name   string   `yaml:"name"`
	Length int      `yaml:"length"`
	Words  []string `yaml:"-"`
}

// Default is the built-in list of five-letter Russian words.
func Default() *Dictionary {
	return &Dictionary{
		Name:   "default",
		Length: 5,
		Words: []string{
			"лотос", "весна", "комод", "пирог", "ручка",
			"книга", "домик", "дрова", "берег", "банан",
			"актер", "авеню", "варяг", "жилье", "заряд",
			"изъян", "ладья", "шляпа", "тезка", "упрек",
		},
	}
}

// Load reads a markdown dictionary file: YAML frontmatter with name and
// length, then one word per line. Blank lines and lines starting with # are
// ignored.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	d, body, err := markdown.Parse[Dictionary](f)
	if err != nil {
		return nil, err
	}
	if d.Length <= 0 {
		d.Length = 5
	}
	if d.Name == "" {
		d.Name = path
	}
	for i, line := range strings.Split(body, "\n") {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if err := checkWord(w, d.Length); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
		}
		d.Words = append(d.Words, w)
	}
	if len(d.Words) == 0 {
		return nil, fmt.Errorf("dictionary %s has no words", path)
	}
	return &d, nil
}

// Save writes d in the format Load reads.
func Save(path string, d *Dictionary) error {
	data, err := markdown.Marshal(d, strings.Join(d.Words, "\n"))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func checkWord(w string, length int) error {
	if n := utf8.RuneCountInString(w); n != length {
		return fmt.Errorf("word %q has %d letters, want %d", w, n, length)
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("word %q contains %q", w, r)
		}
	}
	return nil
}
