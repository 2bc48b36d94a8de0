package config

import "os"

// Server captures HTTP server level configuration. The SDN URL, cache TTL,
// and fuzzy defaults are engine policy constants, not configuration.
type Server struct {
	Addr string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("REGGUARD_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Server{Addr: addr}
}
