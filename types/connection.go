package types

// ConnectionPhase is the lifecycle phase of the proxy stream session.
type ConnectionPhase int

const (
	PhaseDisconnected ConnectionPhase = iota
	PhaseConnecting
	PhaseConnected
	PhaseReconnecting
	PhaseError
)

// ConnectionState is a phase plus, for PhaseError, the reason. It is a plain
// comparable value so re-setting the same state can be detected.
type ConnectionState struct {
	Phase ConnectionPhase
	Err   string
}

func (s ConnectionState) String() string {
	switch s.Phase {
	case PhaseDisconnected:
		return "Disconnected"
	case PhaseConnecting:
		return "Connecting..."
	case PhaseConnected:
		return "Connected"
	case PhaseReconnecting:
		return "Reconnecting..."
	case PhaseError:
		return "Error: " + s.Err
	default:
		return "Unknown"
	}
}

func Disconnected() ConnectionState  { return ConnectionState{Phase: PhaseDisconnected} }
func Connecting() ConnectionState    { return ConnectionState{Phase: PhaseConnecting} }
func Connected() ConnectionState     { return ConnectionState{Phase: PhaseConnected} }
func Reconnecting() ConnectionState  { return ConnectionState{Phase: PhaseReconnecting} }
func Errored(reason string) ConnectionState {
	return ConnectionState{Phase: PhaseError, Err: reason}
}
