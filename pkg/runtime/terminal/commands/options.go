package commands

import "io"

// Options carries the CLI-level dependencies shared by every command.
type Options struct {
	Version   string
	Output    io.Writer
	ErrOutput io.Writer
}
