package instance

import "os"

// ID returns an identifier for the running process, taken from the
// platform dyno name or the host name.
func ID() string {
	if id := os.Getenv("SWIPESHOP_INSTANCE_ID"); id != "" {
		return id
	}
	if id := os.Getenv("DYNO"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
