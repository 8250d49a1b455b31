package app

import (
	"io"
	"log"
)

type App struct {
	verbose *bool
	output  io.Writer
	logger  *log.Logger
}

// New wires an app writing generated text to output. Progress lines go
// to diagnostic, and only when verbose is set.
func New(verbose bool, output io.Writer, diagnostic io.Writer) *App {
	if !verbose {
		diagnostic = io.Discard
	}

	return &App{
		verbose: &verbose,
		output:  output,
		logger:  log.New(diagnostic, "catalog: ", 0),
	}
}

func (r *App) Verbose() *bool {
	return r.verbose
}

func (r *App) Output() io.Writer {
	return r.output
}

func (r *App) Logger() *log.Logger {
	return r.logger
}
