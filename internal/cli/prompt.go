package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// errQuit is returned when input ends or the user asks to leave.
var errQuit = errors.New("quit")

// prompter reads one line per question from the command's input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// line prints label and returns the trimmed answer.
func (p *prompter) line(label string) (string, error) {
	_, _ = fmt.Fprint(p.out, label)
	text, err := p.in.ReadString('\n')
	if err != nil && (text == "" || !errors.Is(err, io.EOF)) {
		if errors.Is(err, io.EOF) {
			return "", errQuit
		}
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// choice asks for a 1-based index into n options and returns it 0-based.
// Any non-numeric answer is returned as cmd for the caller to interpret.
func (p *prompter) choice(label string, n int) (idx int, cmd string, err error) {
	answer, err := p.line(label)
	if err != nil {
		return -1, "", err
	}
	num, convErr := strconv.Atoi(answer)
	if convErr != nil {
		return -1, strings.ToLower(answer), nil
	}
	if num < 1 || num > n {
		return -1, "", fmt.Errorf("pick a number between 1 and %d", n)
	}
	return num - 1, "", nil
}
