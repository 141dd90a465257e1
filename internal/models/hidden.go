package models

// HiddenWordSet is an immutable set of words the learner has mastered.
// Membership is global: it is not scoped to a word list.
type HiddenWordSet struct {
	order []Word
	index map[Word]struct{}
}

// NewHiddenWordSet builds a set from words, dropping duplicates and keeping first-seen order.
func NewHiddenWordSet(words ...Word) HiddenWordSet {
	s := HiddenWordSet{index: make(map[Word]struct{}, len(words))}
	for _, w := range words {
		if _, ok := s.index[w]; ok {
			continue
		}
		s.index[w] = struct{}{}
		s.order = append(s.order, w)
	}
	return s
}

// Contains reports whether w is hidden.
func (s HiddenWordSet) Contains(w Word) bool {
	_, ok := s.index[w]
	return ok
}

// Len returns the number of hidden words.
func (s HiddenWordSet) Len() int {
	return len(s.order)
}

// Words returns a copy of the hidden words in the order they were hidden.
func (s HiddenWordSet) Words() []Word {
	out := make([]Word, len(s.order))
	copy(out, s.order)
	return out
}

// With returns a new set including w. The receiver is not modified.
func (s HiddenWordSet) With(w Word) HiddenWordSet {
	if s.Contains(w) {
		return s
	}
	return NewHiddenWordSet(append(s.Words(), w)...)
}
