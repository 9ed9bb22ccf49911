package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// ClearMarker entered in an edit prompt clears the field.
const ClearMarker = "-"

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The line is trimmed. If EOF occurs after some input was read, the partial
// line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLineContext is readLine that gives up when ctx is done. Exactly one
// line is read per call, so prompts issued by handlers still see their
// input. A read abandoned on cancellation finishes in the background.
func readLineContext(ctx context.Context, reader *bufio.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := readLine(reader)
		ch <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// GetOptionalText is GetSimpleText for edit forms. An empty answer returns
// nil (keep the field); ClearMarker returns a pointer to "" (clear it).
func GetOptionalText(reader *bufio.Reader, prompt, current string, w io.Writer) (*string, error) {
	text, err := GetSimpleText(reader, fmt.Sprintf("%s [%s] (Enter keeps, %s clears)", prompt, current, ClearMarker), w)
	if err != nil {
		return nil, err
	}
	switch text {
	case "":
		return nil, nil
	case ClearMarker:
		text = ""
	}
	return &text, nil
}

// GetPassword prints a password prompt to w and reads a password from the
// terminal without echo. When stdin is not a terminal the password is read
// as a plain line from reader.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(reader *bufio.Reader, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}

	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		line, err := readLine(reader)
		if err != nil {
			return nil, err
		}
		return []byte(line), nil
	}

	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
