package render

import "time"

// Context provides frame state for renderers, passed by value
type Context struct {
	FrameTime time.Time
	DeltaTime float64

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Debug overlay visibility
	Debug bool
}
