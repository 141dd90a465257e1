package store

// Persisted keys. Values are JSON encoded.
const (
	KeyHiddenWords     = "hiddenWords"
	KeyAutoRead        = "autoRead"
	KeySpellBeforeRead = "spellBeforeRead"
)
