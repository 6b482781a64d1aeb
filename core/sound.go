package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundToggle   SoundType = iota // Input button flipped
	SoundClick                     // Menu button pressed
	SoundComplete                  // Level solved
	SoundTypeCount
)
