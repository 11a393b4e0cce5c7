package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineBytes = 1024 * 1024

// Read returns the last maxLines lines of the file at path. A non-positive
// maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	return ReadMatching(path, maxLines, "")
}

// ReadMatching is Read restricted to lines containing substr, compared
// case-insensitively. An empty substr matches every line.
func ReadMatching(path string, maxLines int, substr string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	lines, err := tail(file, maxLines, strings.ToLower(substr))
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

func tail(r io.Reader, maxLines int, needle string) ([]string, error) {
	reader := bufio.NewReaderSize(r, 64*1024)

	var lines []string
	for {
		line, err := readLine(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if needle != "" && !strings.Contains(strings.ToLower(line), needle) {
			continue
		}
		lines = append(lines, line)
		// Never hold more than 2*maxLines lines.
		if maxLines > 0 && len(lines) >= 2*maxLines {
			lines = append(lines[:0], lines[len(lines)-maxLines:]...)
		}
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines, nil
}

// readLine returns the next line without its line ending. Lines longer than
// maxLineBytes are cut to that length and the rest is discarded. It returns
// io.EOF only when no bytes remain.
func readLine(r *bufio.Reader) (string, error) {
	var buf []byte
	read := false
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if err == io.EOF && read {
				return string(buf), nil
			}
			return "", err
		}
		read = true
		if room := maxLineBytes - len(buf); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			buf = append(buf, chunk...)
		}
		if !isPrefix {
			return string(buf), nil
		}
	}
}
