// Package env exposes the process environment as a domain.Environment.
package env

import (
	"os"

	"github.com/runoshun/fixed-skips/internal/domain"
)

// OS reads variables from the process environment.
type OS struct{}

// Ensure OS implements domain.Environment interface.
var _ domain.Environment = OS{}

// LookupEnv returns the value of key and whether it is set.
func (OS) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
