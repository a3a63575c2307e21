package client

import "github.com/MKhiriev/nim-client/models"

// ParseCommands splits positional arguments into commands. A known command
// name consumes as many following arguments as it takes, so a password equal
// to a command name is still read as a password. Unknown names become
// commands of their own and are rejected later by validation.
func ParseCommands(args []string) []models.Command {
	commands := make([]models.Command, 0, len(args))

	for i := 0; i < len(args); {
		name := args[i]
		i++

		n := max(models.Arity(name), 0)
		end := min(i+n, len(args))

		commands = append(commands, models.Command{Name: name, Args: args[i:end]})
		i = end
	}

	return commands
}
