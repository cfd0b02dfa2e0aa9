// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	ErrInvalidOptions = errors.New("invalid device options")
	ErrDeviceNotReady = errors.New("output device not ready")
)
