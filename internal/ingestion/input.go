// Package ingestion reads the job posting text from the operator, a file, or
// a URL.
package ingestion

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadInteractive prompts on w and collects pasted lines from r until the
// first blank line, returning the joined posting text.
func ReadInteractive(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprintln(w, "Paste the job posting below. End with an empty line:")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read job posting: %w", err)
	}

	return strings.Join(lines, "\n"), nil
}

// ReadFile loads the job posting text from a plain-text file.
func ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job posting file %s: %w", path, err)
	}
	return strings.TrimSpace(string(content)), nil
}
