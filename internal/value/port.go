package value

import (
	"bufio"
	"io"
)

// Port is a handle to an opened file or standard stream. Ports are owned
// by the caller; nothing in the interpreter closes one automatically. The
// load special form reads its file in one go and never creates a Port.
type Port struct {
	Name   string
	Reader *bufio.Reader
	Writer *bufio.Writer
	Closer io.Closer
	Input  bool
	Closed bool
}

func (p *Port) Tag() Tag      { return TagPort }
func (p *Port) String() string { return "<IO port>" }

// Close closes the underlying handle, if any, and marks the port closed.
// It reports whether a close actually occurred.
func (p *Port) Close() bool {
	if p.Closed {
		return false
	}
	if p.Writer != nil {
		p.Writer.Flush()
	}
	if p.Closer != nil {
		p.Closer.Close()
	}
	p.Closed = true
	return true
}
