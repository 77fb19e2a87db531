package flags

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Config holds all command-line configuration
type Config struct {
	Port string
	Help bool
}

// DefaultConfig returns default configuration values
func DefaultConfig() Config {
	return Config{
		Port: "",
		Help: false,
	}
}

// Parse parses command-line flags and returns configuration
func Parse() Config {
	config := DefaultConfig()

	var (
		port = flag.String("port", config.Port, "Port number")
		help = flag.Bool("help", false, "Show this screen")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Smart Restaurant API\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  smart-restaurant [--port <N>]\n")
		fmt.Fprintf(os.Stderr, "  smart-restaurant --help\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fmt.Fprintf(os.Stderr, "  --help       Show this screen.\n")
		fmt.Fprintf(os.Stderr, "  --port N     Port number (1-65535). Overrides the PORT env var.\n")
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	// Empty means "defer to the PORT env var"
	if *port != "" {
		if err := validatePort(*port); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	return Config{
		Port: *port,
		Help: *help,
	}
}

// validatePort validates the port number
func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port number '%s': must be a number", port)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("port number %d is out of range: must be between 1 and 65535", portNum)
	}

	if portNum < 1024 {
		fmt.Fprintf(os.Stderr, "Warning: Port %d is a privileged port (1-1023). You may need administrator privileges.\n", portNum)
	}

	return nil
}

// Validate validates the parsed configuration
func (c Config) Validate() error {
	if c.Port != "" {
		return validatePort(c.Port)
	}
	return nil
}
