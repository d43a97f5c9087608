package source

import (
	"bufio"
	"io"
)

// lineReader only hands out whole newline-terminated lines. A trailing
// partial line is held back and reported as io.EOF until the rest of it
// arrives, so a CSV file that is still being written is never parsed
// mid-record.
type lineReader struct {
	r *bufio.Reader
	// partial is an unterminated line seen at EOF.
	partial []byte
	// pending is complete data that did not fit the caller's buffer.
	pending []byte
}

var _ io.Reader = (*lineReader)(nil)

func NewLineReader(r io.Reader) io.Reader {
	return &lineReader{
		r: bufio.NewReader(r),
	}
}

func (l *lineReader) Read(b []byte) (int, error) {
	if len(l.pending) == 0 {
		data, err := l.r.ReadBytes('\n')
		if err != nil {
			l.partial = append(l.partial, data...)
			return 0, io.EOF
		}
		l.pending = append(append(l.pending, l.partial...), data...)
		l.partial = l.partial[:0]
	}
	n := copy(b, l.pending)
	l.pending = l.pending[:copy(l.pending, l.pending[n:])]
	return n, nil
}
