package index

import (
	"io"
	"log"
)

type App interface {
	Verbose() *bool
	Output() io.Writer
	Logger() *log.Logger
}
