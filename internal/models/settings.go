package models

// PlaybackSettings are the two global speech toggles.
type PlaybackSettings struct {
	AutoRead        bool `json:"auto_read"`
	SpellBeforeRead bool `json:"spell_before_read"`
}
