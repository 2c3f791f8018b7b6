package parameter

// Frame Loop Timing
const (
	// FramesPerSecond is the nominal refresh rate all tick counts are expressed in
	FramesPerSecond = 60

	// MinFPS and MaxFPS bound the configurable refresh rate
	MinFPS = 10
	MaxFPS = 240
)
