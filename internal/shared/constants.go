package shared

import "time"

// Server Configuration
const (
	DefaultPort            = "8000"
	DefaultShutdownTimeout = 10 * time.Second
)
