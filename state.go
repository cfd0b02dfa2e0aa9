// SPDX-License-Identifier: EPL-2.0

package ears

// State of a playable source.
type State int32

const (
	// Initial means the source was constructed and never played.
	Initial State = iota
	Playing
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Initial:
		return "initial"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}
