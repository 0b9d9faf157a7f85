// Package content loads the six text lines printed on the badge.
package content

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rakyll/statik/fs"

	_ "github.com/kubesail/pibox-badge/statik"
)

//go:generate statik -src=../assets/static -dest=.. -f

const DefaultPath = "/var/lib/pibox-badge/content.txt"

// Record is the badge text, in file order.
type Record struct {
	Company      string
	Name         string
	Detail1Title string
	Detail1Text  string
	Detail2Title string
	Detail2Text  string
}

// Fields returns the six values in file order.
func (r Record) Fields() []string {
	return []string{r.Company, r.Name, r.Detail1Title, r.Detail1Text, r.Detail2Title, r.Detail2Text}
}

func fromFields(f []string) Record {
	for len(f) < 6 {
		f = append(f, "")
	}
	return Record{
		Company:      f[0],
		Name:         f[1],
		Detail1Title: f[2],
		Detail1Text:  f[3],
		Detail2Title: f[4],
		Detail2Text:  f[5],
	}
}

// DefaultText returns the placeholder document written when no content file
// exists.
func DefaultText() (string, error) {
	statikFS, err := fs.New()
	if err != nil {
		return "", err
	}
	b, err := fs.ReadFile(statikFS, "/content.txt")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Default returns the placeholder record.
func Default() (Record, error) {
	text, err := DefaultText()
	if err != nil {
		return Record{}, err
	}
	return Read(strings.NewReader(text))
}

// Read parses up to six lines of any length. Trailing whitespace is removed
// from each line and missing lines are left empty.
func Read(r io.Reader) (Record, error) {
	fields := make([]string, 0, 6)
	br := bufio.NewReader(r)
	for len(fields) < 6 {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return Record{}, err
		}
		if err == io.EOF && line == "" {
			break
		}
		fields = append(fields, strings.TrimRightFunc(line, unicode.IsSpace))
		if err == io.EOF {
			break
		}
	}
	return fromFields(fields), nil
}

// Load reads the content file at path. A missing file is first created with
// the default text, along with its parent directories.
func Load(path string) (Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Creating default content at %s\n", path)
		if err := writeDefault(path); err != nil {
			return Record{}, err
		}
		f, err = os.Open(path)
	}
	if err != nil {
		return Record{}, fmt.Errorf("content: %w", err)
	}
	defer f.Close()

	r, err := Read(f)
	if err != nil {
		return Record{}, fmt.Errorf("content: reading %s: %w", path, err)
	}
	return r, nil
}

// Write stores rec at path, one field per line.
func Write(path string, rec Record) error {
	return writeText(path, strings.Join(rec.Fields(), "\n")+"\n")
}

func writeDefault(path string) error {
	text, err := DefaultText()
	if err != nil {
		return fmt.Errorf("content: %w", err)
	}
	return writeText(path, text)
}

func writeText(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("content: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("content: %w", err)
	}
	return nil
}
