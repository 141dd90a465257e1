package wordlist

import (
	"fmt"
	"strings"

	"github.com/vytor/phonicsplay/internal/errors"
	"github.com/vytor/phonicsplay/internal/models"
)

// splitLines splits on "\n" and drops a trailing "\r" so CRLF files behave
// like LF files. Nothing else is removed from a line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ParseWords turns a word-list resource into words. Blank and
// whitespace-only lines are skipped; kept lines are stored untrimmed.
func ParseWords(text string) []models.Word {
	var words []models.Word
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		words = append(words, line)
	}
	return words
}

// ParseManifest parses "<source>=<label>" lines. Lines missing either part
// are returned as MALFORMED_ENTRY errors and skipped; they never stop the
// parse. Anything after a second "=" is dropped from the label. A repeated
// source keeps its first position and takes the later label.
func ParseManifest(text string) (models.Manifest, []error) {
	var (
		manifest models.Manifest
		skipped  []error
		position = map[string]int{}
	)

	for n, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		source, label, ok := strings.Cut(line, "=")
		label, _, _ = strings.Cut(label, "=")
		source, label = strings.TrimSpace(source), strings.TrimSpace(label)
		if !ok || source == "" || label == "" {
			skipped = append(skipped, errors.NewMalformedEntryError(
				fmt.Sprintf("manifest line %d: %q", n+1, strings.TrimSpace(line)), nil))
			continue
		}
		if i, seen := position[source]; seen {
			manifest[i].Label = label
			continue
		}
		position[source] = len(manifest)
		manifest = append(manifest, models.ManifestEntry{Source: source, Label: label})
	}
	return manifest, skipped
}
