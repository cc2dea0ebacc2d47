package search

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Manual prompts a human to run the query themselves and paste the
// result URL back. An empty line means no result.
type Manual struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewManual(in io.Reader, out io.Writer) *Manual {
	return &Manual{in: bufio.NewScanner(in), out: out}
}

func (m *Manual) Search(ctx context.Context, query string) ([]string, error) {
	fmt.Fprintf(m.out, "Search for: %s\n", query)
	fmt.Fprint(m.out, "Result URL: ")

	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	line := strings.TrimSpace(m.in.Text())
	if line == "" {
		return nil, nil
	}
	return []string{line}, nil
}
