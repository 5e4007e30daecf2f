package config

import (
	"errors"
	"strconv"
)

// DefaultPort is used when no port was passed on the command line.
const DefaultPort uint16 = 8080

var ErrBadPort = errors.New("invalid port number")

// ParsePort parses a decimal TCP port. Anything outside 1..65535, including non-numeric input,
// results in ErrBadPort.
func ParsePort(arg string) (uint16, error) {
	port, err := strconv.Atoi(arg)
	if err != nil || port <= 0 || port > 65535 {
		return 0, ErrBadPort
	}

	return uint16(port), nil
}
