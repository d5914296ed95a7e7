// Package textstats computes simple word statistics over a block of text.
package textstats

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// MinLength is the minimum number of characters accepted for analysis.
const MinLength = 100

const topN = 5

// punctuation is ASCII punctuation plus the typographic marks common in
// Russian text.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~—…“”«»"

// WordCount is a word with its number of occurrences.
type WordCount struct {
	Word  string
	Count int
}

// Report holds the statistics for one text.
type Report struct {
	TotalChars    int
	CharsNoSpaces int
	WordCount     int
	MostCommon    []WordCount
	Longest       []string
	AverageLength float64
}

// CheckLength rejects texts shorter than MinLength characters.
func CheckLength(text string) error {
	if utf8.RuneCountInString(text) < MinLength {
		return fmt.Errorf("text is too short: need at least %d characters", MinLength)
	}
	return nil
}

// Preprocess lowercases text and strips punctuation.
func Preprocess(text string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, strings.ToLower(text))
}

// Analyze computes statistics over already preprocessed text. It returns nil
// when the text contains no words.
func Analyze(text string) *Report {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	letters := 0
	for _, w := range words {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
		letters += utf8.RuneCountInString(w)
	}

	common := make([]WordCount, len(order))
	for i, w := range order {
		common[i] = WordCount{Word: w, Count: counts[w]}
	}
	slices.SortStableFunc(common, func(a, b WordCount) int {
		return b.Count - a.Count
	})

	longest := slices.Clone(order)
	slices.SortFunc(longest, func(a, b string) int {
		if d := utf8.RuneCountInString(b) - utf8.RuneCountInString(a); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	return &Report{
		TotalChars:    utf8.RuneCountInString(text),
		CharsNoSpaces: utf8.RuneCountInString(strings.ReplaceAll(text, " ", "")),
		WordCount:     len(words),
		MostCommon:    common[:min(topN, len(common))],
		Longest:       longest[:min(topN, len(longest))],
		AverageLength: float64(letters) / float64(len(words)),
	}
}

// String renders the report as plain text.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total characters: %d (without spaces: %d)\n", r.TotalChars, r.CharsNoSpaces)
	fmt.Fprintf(&sb, "Word count: %d\n", r.WordCount)
	sb.WriteString("Most common words:\n")
	for _, wc := range r.MostCommon {
		fmt.Fprintf(&sb, "- '%s': %d times\n", wc.Word, wc.Count)
	}
	sb.WriteString("Longest words:\n")
	for _, w := range r.Longest {
		fmt.Fprintf(&sb, "- '%s' (%d letters)\n", w, utf8.RuneCountInString(w))
	}
	fmt.Fprintf(&sb, "Average word length: %.1f characters\n", r.AverageLength)
	return sb.String()
}

// Markdown renders the report as a markdown document.
func (r *Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# Text statistics\n\n")
	fmt.Fprintf(&sb, "- **Characters:** %d (%d without spaces)\n", r.TotalChars, r.CharsNoSpaces)
	fmt.Fprintf(&sb, "- **Words:** %d\n", r.WordCount)
	fmt.Fprintf(&sb, "- **Average length:** %.1f\n\n", r.AverageLength)

	sb.WriteString("## Most common\n\n| Word | Count |\n| --- | --- |\n")
	for _, wc := range r.MostCommon {
		fmt.Fprintf(&sb, "| %s | %d |\n", wc.Word, wc.Count)
	}
	sb.WriteString("\n## Longest\n\n| Word | Letters |\n| --- | --- |\n")
	for _, w := range r.Longest {
		fmt.Fprintf(&sb, "| %s | %d |\n", w, utf8.RuneCountInString(w))
	}
	return sb.String()
}
