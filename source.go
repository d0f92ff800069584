// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/tailscale/hujson"
)

// A Source delivers the text of a document as a sequence of chunks.
//
// Next returns the next chunk of the input, which may be empty. When the input
// is exhausted, Next returns io.EOF; any other error is reported to the
// caller of the decoder that is consuming the source. A Source must not split
// a UTF-8 encoded rune across two chunks.
type Source interface {
	Next() (string, error)
}

// Chunks returns a Source that delivers the given chunks in order.
func Chunks(chunks ...string) Source { return &chunkSource{chunks: chunks} }

type chunkSource struct{ chunks []string }

func (c *chunkSource) Next() (string, error) {
	if len(c.chunks) == 0 {
		return "", io.EOF
	}
	next := c.chunks[0]
	c.chunks = c.chunks[1:]
	return next, nil
}

// A ReaderSource is a Source that reads chunks from an io.Reader.
type ReaderSource struct {
	r    io.Reader
	buf  []byte
	tail int // bytes of an incomplete rune carried into the next read
	err  error
}

// NewReaderSource constructs a ReaderSource that delivers chunks of at most
// size bytes read from r. Chunks are trimmed so that they end on a rune
// boundary; the remainder is carried into the following chunk.
func NewReaderSource(r io.Reader, size int) *ReaderSource {
	if size < utf8.UTFMax {
		size = utf8.UTFMax
	}
	return &ReaderSource{r: r, buf: make([]byte, size)}
}

// Next implements the Source interface.
func (s *ReaderSource) Next() (string, error) {
	for {
		if s.err != nil && s.tail == 0 {
			return "", s.err
		}
		n := s.tail
		if s.err == nil {
			nr, err := s.r.Read(s.buf[s.tail:])
			n += nr
			s.err = err
		}

		// Once the reader is done, flush whatever remains, complete or not.
		cut := n
		if s.err == nil {
			cut = runeBoundary(s.buf[:n])
		}
		if cut == 0 {
			s.tail = n
			continue
		}
		out := string(s.buf[:cut])
		s.tail = copy(s.buf, s.buf[cut:n])
		return out, nil
	}
}

// runeBoundary returns the length of the longest prefix of buf that does not
// end with an incomplete UTF-8 sequence.
func runeBoundary(buf []byte) int {
	n := len(buf)
	for i := n - 1; i >= 0 && i >= n-utf8.UTFMax; i-- {
		if utf8.RuneStart(buf[i]) {
			if !utf8.FullRune(buf[i:n]) {
				return i
			}
			break
		}
	}
	return n
}

// A ChanSource is a Source that receives chunks from a channel. Closing the
// channel marks the end of the input. A call to Next blocks until a chunk is
// available, the channel is closed, or the context ends.
type ChanSource struct {
	ctx context.Context
	ch  <-chan string
}

// NewChanSource constructs a ChanSource that receives chunks from ch. If ctx
// ends before a chunk arrives, Next reports the context's error.
func NewChanSource(ctx context.Context, ch <-chan string) ChanSource {
	return ChanSource{ctx: ctx, ch: ch}
}

// Next implements the Source interface.
func (c ChanSource) Next() (string, error) {
	select {
	case <-c.ctx.Done():
		return "", c.ctx.Err()
	case s, ok := <-c.ch:
		if !ok {
			return "", io.EOF
		}
		return s, nil
	}
}

// NewStandardSource returns a Source that delivers the contents of data after
// removing comments and trailing commas. The input must be a single HuJSON
// value. Comments are replaced by spaces, so offsets and line numbers in
// errors reported for the result refer to the original input.
func NewStandardSource(data []byte) (Source, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("standardize input: %w", err)
	}
	return Chunks(string(std)), nil
}
