package domain

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// ExecResult holds the captured output of a finished command.
// Fields are ordered to minimize memory padding.
type ExecResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the command exited with status 0.
func (r *ExecResult) Success() bool {
	return r.ExitCode == 0
}

// NewCommand creates an ExecCommand running program with args in dir.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}
