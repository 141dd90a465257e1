// Package speech turns words into spoken utterances.
package speech

import (
	"strings"
	"unicode/utf8"

	"github.com/vytor/phonicsplay/internal/models"
)

// Compose builds the utterance for word. With spell set, the letters are
// read one by one before the whole word, and single-letter words produce
// nothing at all. ok is false when there is nothing to say.
func Compose(word models.Word, spell bool) (string, bool) {
	if word == "" {
		return "", false
	}
	if !spell {
		return word, true
	}
	if utf8.RuneCountInString(word) <= 1 {
		return "", false
	}

	letters := make([]string, 0, len(word))
	for _, r := range word {
		letters = append(letters, string(r))
	}
	return strings.Join(letters, " ") + " " + word, true
}
