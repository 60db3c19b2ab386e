package domain

// VerboseLevel controls how chatty a component is. Session simulation
// logging and storage lifecycle logging carry independent levels.
type VerboseLevel int

const (
	VerboseSilent VerboseLevel = iota
	VerboseInfo
	VerboseDebug
)

func (v VerboseLevel) String() string {
	switch v {
	case VerboseInfo:
		return "info"
	case VerboseDebug:
		return "debug"
	default:
		return "silent"
	}
}
