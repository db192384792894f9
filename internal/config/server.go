package config

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	ListenAddr string
	// AllowOrigins is a comma separated CORS origin list. Empty disables CORS.
	AllowOrigins string
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{ListenAddr: ":3000"}
}
