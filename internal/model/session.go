package model

// SessionState describes the lifecycle position of the client session.
type SessionState string

const (
	StateAnonymous      SessionState = "anonymous"
	StateAuthenticating SessionState = "authenticating"
	StateAuthenticated  SessionState = "authenticated"
	// StateError is transient; the next operation returns the session
	// to anonymous.
	StateError SessionState = "error"
)

// Session is the in-memory representation of the currently signed-in
// user and auth flags. It is an explicit context object with
// single-writer discipline: one owner constructs it at startup and
// hands a reference to consumers. It is not safe for concurrent use.
type Session struct {
	State           SessionState
	User            *User
	Token           string
	TokenExpiresAt  int64 // epoch milliseconds, 0 when absent
	IsAuthenticated bool
	Loading         bool
	// LastError holds the most recent operation's user-facing message,
	// empty when the last operation succeeded.
	LastError string
}

// NewSession creates an empty anonymous session.
func NewSession() *Session {
	return &Session{State: StateAnonymous}
}

// Reset returns the session to the empty anonymous state.
func (s *Session) Reset() {
	s.State = StateAnonymous
	s.User = nil
	s.Token = ""
	s.TokenExpiresAt = 0
	s.IsAuthenticated = false
	s.Loading = false
	s.LastError = ""
}

// StoredCredentials is the durable triple kept by the credential store.
type StoredCredentials struct {
	Token     string
	ExpiresAt int64 // epoch milliseconds
	User      *User
}
