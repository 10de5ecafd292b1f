package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineReader is a Prompter over a plain reader, for piped input where line
// editing is unavailable. Prompts are echoed to out.
type LineReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLineReader creates a LineReader.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(in), out: out}
}

// Prompt implements Prompter.
func (r *LineReader) Prompt(prompt string) (string, error) {
	_, _ = fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(r.scanner.Text(), "\r"), nil
}

// AppendHistory implements Prompter. Piped input keeps no history.
func (r *LineReader) AppendHistory(string) {}
