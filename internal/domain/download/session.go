package download

import "errors"

// State is the lifecycle position of a download session.
type State int

const (
	// StatePending means the engine has promoted a navigation but no destination is decided.
	StatePending State = iota
	// StateDeciding means the host is being asked for a destination.
	StateDeciding
	// StateDecided means the destination decision has been delivered.
	StateDecided
	// StateCompleted means the completion callback has fired.
	StateCompleted
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateDeciding:
		return "deciding"
	case StateDecided:
		return "decided"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

var (
	// ErrAlreadyDecided is returned when a second destination decision is attempted.
	ErrAlreadyDecided = errors.New("destination already decided")
	// ErrDecisionInFlight is returned when a decision is begun while another one is pending.
	ErrDecisionInFlight = errors.New("destination decision in progress")
	// ErrAlreadyCompleted is returned when a session is completed twice or decided after completion.
	ErrAlreadyCompleted = errors.New("download already completed")
)

// Session tracks one download from promotion to completion.
// A destination is decided at most once and strictly before completion;
// completion happens at most once.
type Session struct {
	URL   string
	State State
	// DecidedPath is the path handed back to the engine.
	DecidedPath string
	// Accepted is false when the decision was a cancel. An accepted
	// decision may carry an empty path.
	Accepted  bool
	Succeeded bool
}

// NewSession starts a pending session for url.
func NewSession(url string) *Session {
	return &Session{URL: url, State: StatePending}
}

// BeginDecision reserves the destination decision so only one caller asks
// the host.
func (s *Session) BeginDecision() error {
	switch s.State {
	case StateDeciding:
		return ErrDecisionInFlight
	case StateDecided:
		return ErrAlreadyDecided
	case StateCompleted:
		return ErrAlreadyCompleted
	}
	s.State = StateDeciding
	return nil
}

// Decide records the destination decision. A rejected decision clears path.
func (s *Session) Decide(path string, accepted bool) error {
	switch s.State {
	case StateDecided:
		return ErrAlreadyDecided
	case StateCompleted:
		return ErrAlreadyCompleted
	}
	if !accepted {
		path = ""
	}
	s.State = StateDecided
	s.DecidedPath = path
	s.Accepted = accepted
	return nil
}

// Complete records the outcome. A session may complete without a prior
// decision when the engine fails before asking for a destination.
func (s *Session) Complete(success bool) error {
	if s.State == StateCompleted {
		return ErrAlreadyCompleted
	}
	s.State = StateCompleted
	s.Succeeded = success
	return nil
}
