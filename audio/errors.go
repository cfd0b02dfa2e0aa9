// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

// ErrInvalidDstSize reports a ReadSamples destination whose length is
// not a whole number of frames.
var ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
