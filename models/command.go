package models

// Command names accepted on the client command line.
const (
	CommandLogin    = "login"
	CommandLogout   = "logout"
	CommandIdentity = "identity"
)

// Command is one call requested on the command line, e.g.
// "login alice secret" becomes {Name: "login", Args: ["alice", "secret"]}.
type Command struct {
	Name string
	Args []string
}

// Arity returns how many arguments the named command takes, or -1 for an
// unknown name.
func Arity(name string) int {
	switch name {
	case CommandLogin:
		return 2
	case CommandLogout, CommandIdentity:
		return 0
	default:
		return -1
	}
}

// Credentials returns the login credentials carried by a login command.
// It must only be called on a validated login command.
func (c Command) Credentials() Credentials {
	return Credentials{Username: c.Args[0], Password: c.Args[1]}
}
