package session

type State int

const (
	StateRunning State = iota
	StateTeaching
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTeaching:
		return "teaching"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
