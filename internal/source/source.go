package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// LineSeparator terminates a logical CSV record
const LineSeparator = '\n'

// CompressedSuffix marks CSV files that are lz4 frame compressed
const CompressedSuffix = ".lz4"

// Lines yields one logical CSV record at a time, without its separator
type Lines interface {
	// Next returns the next record; false once input is exhausted or failed
	Next() (string, bool)
	// Err returns the first read error, if any
	Err() error
	Close() error
}

// stringLines iterates over the records of an in-memory CSV string
type stringLines struct {
	rest string
	done bool
}

// FromString returns the records of csv split on LineSeparator
func FromString(csv string) Lines {
	return &stringLines{rest: csv}
}

func (s *stringLines) Next() (string, bool) {
	if s.done {
		return "", false
	}
	line, rest, found := strings.Cut(s.rest, string(LineSeparator))
	if !found {
		s.done = true
	}
	s.rest = rest
	return line, true
}

func (s *stringLines) Err() error   { return nil }
func (s *stringLines) Close() error { return nil }

// FileLines reads records from a file through a buffered reader
type FileLines struct {
	file   *os.File
	path   string
	reader *bufio.Reader
	err    error
	eof    bool
}

// Open opens path for record reading
// Files ending in CompressedSuffix are decompressed on the fly
func Open(path string) (*FileLines, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}

	var r io.Reader = file
	if strings.HasSuffix(path, CompressedSuffix) {
		r = lz4.NewReader(file)
	}

	return &FileLines{
		file:   file,
		path:   path,
		reader: bufio.NewReader(r),
	}, nil
}

// Next reassembles one record regardless of how the reader buffers bytes
// A final record without a trailing separator is still returned
func (f *FileLines) Next() (string, bool) {
	if f.eof || f.err != nil || f.file == nil {
		return "", false
	}

	line, err := f.reader.ReadString(LineSeparator)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			f.err = fmt.Errorf("failed to read %s: %w", f.path, err)
			return "", false
		}
		f.eof = true
		if line == "" {
			return "", false
		}
		return line, true
	}

	return strings.TrimSuffix(line, string(LineSeparator)), true
}

// Err returns the first non-EOF read error
func (f *FileLines) Err() error {
	return f.err
}

// Close closes the underlying file; safe to call more than once
func (f *FileLines) Close() error {
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}
