package models

// Word is one drill entry. It is compared by exact value; case and
// surrounding whitespace are preserved as read from the source.
type Word = string

// WordList is an ordered, never-mutated sequence of words loaded from one source.
type WordList struct {
	Source string `json:"source"`
	Label  string `json:"label"`
	Words  []Word `json:"words"`
}

// Len returns the number of entries.
func (l WordList) Len() int {
	return len(l.Words)
}

// At returns the word at index i, or "" when i is out of range.
func (l WordList) At(i int) Word {
	if i < 0 || i >= len(l.Words) {
		return ""
	}
	return l.Words[i]
}

// ManifestEntry maps a word-list source identifier to its menu label.
type ManifestEntry struct {
	Source string `json:"source"`
	Label  string `json:"label"`
}

// Manifest is the ordered list of sections offered in the menu.
type Manifest []ManifestEntry

// Label returns the label for source, falling back to the source itself.
func (m Manifest) Label(source string) string {
	for _, e := range m {
		if e.Source == source {
			return e.Label
		}
	}
	return source
}
