package cli

const (
	FlagHome       = "home"
	FlagLogLevel   = "log-level"
	FlagOutfile    = "outfile"
	FlagWidth      = "width"
	FlagHeight     = "height"
	FlagSquare     = "square"
	FlagNoProgress = "no-progress"
	FlagResize     = "resize"
	FlagFilter     = "filter"
)
