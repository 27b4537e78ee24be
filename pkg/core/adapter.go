package core

// AdapterConfig holds configuration for connecting to a database
// whose version is probed.
type AdapterConfig struct {
	Type     string
	DSN      string // Used verbatim when set
	Path     string
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Options  map[string]string
}
