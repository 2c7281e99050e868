package constant

// runtime.GOOS values with a known package manager.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
