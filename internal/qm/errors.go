package qm

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrConfig is matched by every error New returns.
	ErrConfig = errors.New("invalid configuration")

	// ErrCandidateLimit is returned by a run whose covering search grew past
	// the limit set with WithMaxCandidates.
	ErrCandidateLimit = errors.New("candidate limit exceeded")
)

// ConfigError describes input that cannot define a function.
type ConfigError struct {
	msg string
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string { return e.msg }

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }
