// Package content holds the game's text and catalog data: the environmental
// phrases shown on the sign and the placeholder look of each trash category.
package content

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
)

// DefaultPhrase is shown when no phrase file can be read.
const DefaultPhrase = "Preserve a natureza!"

// LoadPhrases reads one phrase per line, skipping blank lines. A missing or
// empty file yields the default phrase.
func LoadPhrases(path string) []string {
	phrases, err := readPhrases(path)
	if err != nil {
		slog.Warn("phrase file unavailable, using default phrase", "path", path, "error", err)
		return []string{DefaultPhrase}
	}
	if len(phrases) == 0 {
		slog.Warn("phrase file is empty, using default phrase", "path", path)
		return []string{DefaultPhrase}
	}
	slog.Debug("phrases loaded", "path", path, "count", len(phrases))
	return phrases
}

func readPhrases(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("no phrase file configured")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening phrase file: %w", err)
	}
	defer f.Close()

	var phrases []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			phrases = append(phrases, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading phrase file: %w", err)
	}
	return phrases, nil
}

// Pick returns a random phrase, or the default one when the list is empty.
func Pick(phrases []string, rng *rand.Rand) string {
	if len(phrases) == 0 {
		return DefaultPhrase
	}
	return phrases[rng.Intn(len(phrases))]
}

// Wrap breaks text into lines no wider than maxWidth as reported by measure.
// Words are kept whole; a single word wider than maxWidth gets its own line.
func Wrap(text string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if measure(text) <= maxWidth {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
