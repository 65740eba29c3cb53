package entities

type User struct {
	ID    string
	Name  string
	Email string
}

// Session is the persisted authentication state. ReturnTo holds the argv of
// a command that was refused for lack of a session; a successful login
// replays it so the user lands back where they started.
type Session struct {
	Token    string
	User     User
	ReturnTo []string
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}
