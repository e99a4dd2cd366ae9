package console

import (
	"bufio"
	"io"
	"strings"
)

// TokenReader splits an input stream into whitespace-delimited tokens. Like
// a shell's word reader it crosses line boundaries while looking for the
// next token, but it can also drop whatever is left of the current line.
type TokenReader struct {
	r *bufio.Reader
}

func NewTokenReader(r io.Reader) *TokenReader {
	return &TokenReader{r: bufio.NewReader(r)}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Next blocks until a whole token is available. The delimiter that ends the
// token is left unread so DiscardLine still sees a trailing newline.
func (t *TokenReader) Next() (string, error) {
	var (
		b   byte
		err error
	)
	for {
		if b, err = t.r.ReadByte(); err != nil {
			return "", err
		}
		if !isSpace(b) {
			break
		}
	}

	var sb strings.Builder
	sb.WriteByte(b)
	for {
		b, err = t.r.ReadByte()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			_ = t.r.UnreadByte()
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}

// DiscardLine consumes input up to and including the next newline.
func (t *TokenReader) DiscardLine() error {
	for {
		b, err := t.r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}
