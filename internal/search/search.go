// Package search filters the lines of a text file by substring match and
// writes the matching lines out in file order.
package search

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/f4ah6o/minigrep-go/internal/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lines splits contents on '\n'. A "\r\n" pair also ends a line; a lone
// '\r' at the very end of contents is kept. A final line break does not
// start a new line. The returned lines share storage with contents.
func Lines(contents string) []string {
	var lines []string
	for len(contents) > 0 {
		i := strings.IndexByte(contents, '\n')
		if i < 0 {
			lines = append(lines, contents)
			break
		}
		lines = append(lines, strings.TrimSuffix(contents[:i], "\r"))
		contents = contents[i+1:]
	}
	return lines
}

// Search returns the lines of contents that contain query, in order.
func Search(query, contents string) []string {
	var results []string
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive returns the lines of contents whose lowercase form
// contains the lowercase form of query. Lines keep their original case.
func SearchCaseInsensitive(query, contents string) []string {
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	var results []string
	for _, line := range Lines(contents) {
		if strings.Contains(lower.String(line), query) {
			results = append(results, line)
		}
	}
	return results
}

// Run reads the configured file, searches it and writes each matching line
// to w. Nothing is written if the file cannot be read.
func Run(cfg config.Config, w io.Writer) error {
	contents, err := readText(cfg.FilePath)
	if err != nil {
		return err
	}

	var results []string
	if cfg.IgnoreCase {
		results = SearchCaseInsensitive(cfg.Query, contents)
	} else {
		results = Search(cfg.Query, contents)
	}

	bw := bufio.NewWriter(w)
	for _, line := range results {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	return nil
}

// readText loads the whole file and checks that it is UTF-8.
func readText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &FileReadError{Err: err}
	}
	if !utf8.Valid(content) {
		return "", &FileReadError{Err: ErrInvalidUTF8}
	}
	return string(content), nil
}
