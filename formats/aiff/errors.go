// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

// Decode failure modes, usable with errors.Is.
var (
	ErrNotAiffFile           = errors.New("not an AIFF file")
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
