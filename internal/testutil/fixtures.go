package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

// SampleCSV is the three column, three row table most tests run against
const SampleCSV = "header1,header2,header3\n1,2,3\n4,5,6\n7,8,9"

// WriteCSVFile writes content to a file in a per-test temp directory and returns its path
func WriteCSVFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "writing csv fixture")
	return path
}

// WriteLZ4File writes content lz4 compressed and returns the path, which ends in .lz4
func WriteLZ4File(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv.lz4")

	f, err := os.Create(path)
	require.NoError(t, err, "creating lz4 fixture")
	defer f.Close()

	zw := lz4.NewWriter(f)
	_, err = zw.Write([]byte(content))
	require.NoError(t, err, "writing lz4 fixture")
	require.NoError(t, zw.Close(), "flushing lz4 fixture")

	return path
}
