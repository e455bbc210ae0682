package rcfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Parse returns the keywords of sec found in r, in file order without
// duplicates. Comment lines inside the section are skipped; the first line
// that is neither a comment nor one of the section's color rules ends it.
func Parse(r io.Reader, sec Section) ([]string, error) {
	scanner := bufio.NewScanner(r)
	seen := make(map[string]bool)
	var keywords []string
	inSection := false

	for scanner.Scan() {
		line := scanner.Text()
		if !inSection {
			inSection = sec.isHeader(line)
			continue
		}
		if isComment(line) {
			continue
		}
		if !sec.ownsRule(line) {
			break
		}
		for _, kw := range ruleKeywords(line) {
			if !seen[kw] {
				seen[kw] = true
				keywords = append(keywords, kw)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading rc file: %w", err)
	}
	return keywords, nil
}

// Patch copies r to w with the color rules of sec replaced by rules for
// keywords. Lines outside the section are copied unchanged. When r has no
// such section one is appended.
func Patch(r io.Reader, w io.Writer, sec Section, keywords []string) error {
	lines, err := readLines(r)
	if err != nil {
		return err
	}

	var out []string
	found := false
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if found || !sec.isHeader(line) {
			out = append(out, line)
			continue
		}

		found = true
		out = append(out, line)
		j := i + 1
		for ; j < len(lines); j++ {
			if isComment(lines[j]) {
				out = append(out, lines[j])
				continue
			}
			if !sec.ownsRule(lines[j]) {
				break
			}
		}
		out = append(out, sec.GroupLines(keywords)...)
		if j >= len(lines) || strings.TrimSpace(lines[j]) != "" {
			out = append(out, "")
		}
		i = j - 1
	}

	if !found {
		if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
		out = append(out, sec.Header())
		out = append(out, sec.GroupLines(keywords)...)
		out = append(out, "")
	}

	bw := bufio.NewWriter(w)
	for _, line := range out {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Load reads the keywords of sec from the file at path. A missing file holds
// no keywords.
func Load(path string, sec Section) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening rc file: %w", err)
	}
	defer f.Close()
	return Parse(f, sec)
}

// Save rewrites the section of sec in the file at path, creating the file if
// needed. The new content is written to a temporary file in the same
// directory and renamed over the original.
func Save(path string, sec Section, keywords []string) error {
	mode := fs.FileMode(0o644)
	var existing []byte
	info, err := os.Stat(path)
	switch {
	case err == nil:
		mode = info.Mode().Perm()
		existing, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading rc file: %w", err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat rc file: %w", err)
	}

	var buf bytes.Buffer
	if err := Patch(bytes.NewReader(existing), &buf, sec, keywords); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp rc file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing rc file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("writing rc file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing rc file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing rc file: %w", err)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading rc file: %w", err)
	}
	return lines, nil
}
