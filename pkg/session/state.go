package session

// State is the connection phase of a session.
type State uint8

const (
	StateDisconnected State = iota
	StateConnecting
	StateAwaitingHandshake
	StateAwaitingLogin
	StateReady
	StateEnded
)

var stateNames = [...]string{
	StateDisconnected:      "Disconnected",
	StateConnecting:        "Connecting",
	StateAwaitingHandshake: "AwaitingHandshake",
	StateAwaitingLogin:     "AwaitingLogin",
	StateReady:             "Ready",
	StateEnded:             "Ended",
}

// String returns the string representation of the state.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}
