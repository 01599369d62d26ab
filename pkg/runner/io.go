package runner

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

type line struct {
	text string
	err  error
}

// readLines streams the lines of r without their "\n" or "\r\n" endings.
// A last line without a newline is still delivered. The channel is closed at
// end of stream or after a read error; the reader goroutine exits early when
// done is closed.
func readLines(r io.Reader, done <-chan struct{}) <-chan line {
	out := make(chan line)
	go func() {
		defer close(out)
		reader := bufio.NewReader(r)
		for {
			text, err := reader.ReadString('\n')

			var l line
			switch {
			case err != nil && !errors.Is(err, io.EOF):
				l = line{err: err}
			case text == "":
				return
			default:
				l = line{text: strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")}
			}

			select {
			case out <- l:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return out
}
