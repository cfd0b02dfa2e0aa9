// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

// Decode failure modes, usable with errors.Is.
var (
	ErrNotFlacFile         = errors.New("not a FLAC file")
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
)
