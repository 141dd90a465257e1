// Package navigation moves through a word list while skipping hidden words.
//
// Every function is pure: it takes the active list, the current hidden set
// and a State, and returns a new State. Scans run strictly in one direction
// and never wrap; when nothing visible lies ahead the state is returned
// unchanged.
package navigation

import (
	"github.com/vytor/phonicsplay/internal/errors"
	"github.com/vytor/phonicsplay/internal/models"
)

// Kind is the engine's state.
type Kind int

const (
	// Empty: no list selected, the list has no words, or it could not be loaded.
	Empty Kind = iota
	// AllHidden: the list has words but every one of them is hidden.
	AllHidden
	// Active: Index points at a visible word.
	Active
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case AllHidden:
		return "all_hidden"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// HiddenSet is the membership test the engine needs.
type HiddenSet interface {
	Contains(models.Word) bool
}

// State is an immutable snapshot of the engine.
type State struct {
	Kind  Kind        `json:"kind"`
	Index int         `json:"index"`
	Word  models.Word `json:"word,omitempty"`
	// Total is the list length, Visible the number of entries not hidden.
	Total   int `json:"total"`
	Visible int `json:"visible"`
	// Reason qualifies Empty: "" (nothing selected), EMPTY_LIST or RESOURCE_UNAVAILABLE.
	Reason string `json:"reason,omitempty"`
}

// None is the state before any list has been selected.
func None() State {
	return State{Kind: Empty}
}

// Unavailable is the state after a list failed to load.
func Unavailable() State {
	return State{Kind: Empty, Reason: errors.ErrCodeResourceUnavailable}
}

// Position is the 1-based display position, or 0 when no word is shown.
func (s State) Position() int {
	if s.Kind != Active {
		return 0
	}
	return s.Index + 1
}

// Message is the text shown instead of a word.
func (s State) Message() string {
	switch {
	case s.Kind == Active:
		return ""
	case s.Kind == AllHidden:
		return "All words are hidden"
	case s.Reason == "":
		return "Select a section to begin"
	default:
		return "No words to display"
	}
}

// Initialize selects the first visible word of list.
func Initialize(list models.WordList, hidden HiddenSet) State {
	if list.Len() == 0 {
		if list.Source == "" {
			return None()
		}
		return State{Kind: Empty, Reason: errors.ErrCodeEmptyList}
	}
	if i, ok := scanForward(list, hidden, 0); ok {
		return active(list, hidden, i)
	}
	return allHidden(list)
}

// Reset recomputes the state from scratch; use it after the hidden set was cleared.
func Reset(list models.WordList, hidden HiddenSet) State {
	return Initialize(list, hidden)
}

// Next moves to the first visible word after the current one. With none
// left, or outside Active, s is returned unchanged.
func Next(list models.WordList, hidden HiddenSet, s State) State {
	if s.Kind != Active {
		return s
	}
	if j, ok := scanForward(list, hidden, s.Index+1); ok {
		return active(list, hidden, j)
	}
	return s
}

// Previous is Next in the other direction.
func Previous(list models.WordList, hidden HiddenSet, s State) State {
	if s.Kind != Active {
		return s
	}
	if j, ok := scanBackward(list, hidden, s.Index-1); ok {
		return active(list, hidden, j)
	}
	return s
}

// HideFunc hides a word and returns the updated set.
type HideFunc func(models.Word) (HiddenSet, error)

// HideCurrent hides the current word and advances like Next. When the hidden
// word was the last visible one ahead, it falls back to the nearest visible
// word behind, and to AllHidden when there is none. On error s is returned.
func HideCurrent(list models.WordList, s State, hide HideFunc) (State, error) {
	if s.Kind != Active {
		return s, nil
	}
	hidden, err := hide(list.At(s.Index))
	if err != nil {
		return s, err
	}
	return relocate(list, hidden, s.Index), nil
}

// Revalidate repairs s after the hidden set changed underneath it: an
// Active state whose word is now hidden moves on, and AllHidden becomes
// Active again once a word is visible.
func Revalidate(list models.WordList, hidden HiddenSet, s State) State {
	switch s.Kind {
	case AllHidden:
		return Initialize(list, hidden)
	case Active:
		if s.Index < 0 || s.Index >= list.Len() {
			return Initialize(list, hidden)
		}
		if !hidden.Contains(list.At(s.Index)) {
			return active(list, hidden, s.Index)
		}
		return relocate(list, hidden, s.Index)
	default:
		return s
	}
}

func relocate(list models.WordList, hidden HiddenSet, from int) State {
	if j, ok := scanForward(list, hidden, from+1); ok {
		return active(list, hidden, j)
	}
	if j, ok := scanBackward(list, hidden, from-1); ok {
		return active(list, hidden, j)
	}
	return allHidden(list)
}

func scanForward(list models.WordList, hidden HiddenSet, from int) (int, bool) {
	for i := max(from, 0); i < list.Len(); i++ {
		if !hidden.Contains(list.Words[i]) {
			return i, true
		}
	}
	return 0, false
}

func scanBackward(list models.WordList, hidden HiddenSet, from int) (int, bool) {
	for i := min(from, list.Len()-1); i >= 0; i-- {
		if !hidden.Contains(list.Words[i]) {
			return i, true
		}
	}
	return 0, false
}

func countVisible(list models.WordList, hidden HiddenSet) int {
	n := 0
	for _, w := range list.Words {
		if !hidden.Contains(w) {
			n++
		}
	}
	return n
}

func active(list models.WordList, hidden HiddenSet, i int) State {
	return State{
		Kind:    Active,
		Index:   i,
		Word:    list.Words[i],
		Total:   list.Len(),
		Visible: countVisible(list, hidden),
	}
}

func allHidden(list models.WordList) State {
	return State{Kind: AllHidden, Total: list.Len()}
}
