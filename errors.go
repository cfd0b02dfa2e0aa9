// SPDX-License-Identifier: EPL-2.0

package ears

import "errors"

var (
	ErrUnsupportedFormat   = errors.New("unsupported audio format")
	ErrUnsupportedChannels = errors.New("only mono and stereo are supported")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrAlreadyInitialized  = errors.New("engine already initialized")
	ErrClosed              = errors.New("closed")
	ErrNoSamples           = errors.New("no samples captured")
	ErrRecorderRunning     = errors.New("recorder already running")
	ErrRecorderNotStarted  = errors.New("recorder not started")
	ErrNoInputDevice       = errors.New("no input device")
)
