package config

// Color constants for logger name tags
const (
	ColorGreen   = "\033[32m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorPurple  = ColorMagenta
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
)
