package parutil

import (
	"bytes"
	"io"
)

// WriteBuffer combines a byte buffer with a destination writer and flush
// policy, used by the Driver as its output sink so that a mid-IP error can
// discard buffered-but-unflushed output (see Driver.Run).
type WriteBuffer struct {
	FlushPolicy
	To io.Writer
	bytes.Buffer
}

// FlushPolicy determines when a WriteBuffer should flush during its main
// write phase.
type FlushPolicy interface {
	ShouldFlush(b []byte) int
}

// FlushPolicyFunc is a convenience adaptor for FlushPolicy around a
// compatible anonymous function.
type FlushPolicyFunc func(b []byte) int

// ShouldFlush calls the receiver function pointer.
func (f FlushPolicyFunc) ShouldFlush(b []byte) int { return f(b) }

// Flush writes all of the receiver buffer's contents to To, regardless of
// FlushPolicy.
func (buf *WriteBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// MaybeFlush writes N bytes into To if FlushPolicy returns N > 0, discarding
// the written bytes from the receiver buffer. If FlushPolicy is nil, it is
// set to FlushLineChunks.
func (buf *WriteBuffer) MaybeFlush() error {
	if buf.FlushPolicy == nil {
		buf.FlushPolicy = FlushPolicyFunc(FlushLineChunks)
	}
	b := buf.Bytes()
	if n := buf.ShouldFlush(b); n > 0 {
		m, err := buf.To.Write(b[:n])
		buf.Next(m)
		return err
	}
	return nil
}

// FlushLineChunks is a FlushPolicy(Func) that flushes as large a chunk as
// possible, through the last written newline byte.
func FlushLineChunks(b []byte) int {
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		return i + 1
	}
	return 0
}
