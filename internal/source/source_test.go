package source_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/csvfilter/internal/source"
	"github.com/leengari/csvfilter/internal/testutil"
)

func collect(t *testing.T, lines source.Lines) []string {
	t.Helper()
	var got []string
	for {
		line, ok := lines.Next()
		if !ok {
			break
		}
		got = append(got, line)
	}
	require.NoError(t, lines.Err())
	return got
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromString(t *testing.T) {
	got := collect(t, source.FromString("a,b\n1,2\n\n3,4"))
	assert.Equal(t, []string{"a,b", "1,2", "", "3,4"}, got)
}

func TestFromString_TrailingSeparator(t *testing.T) {
	got := collect(t, source.FromString("a\n1\n"))
	assert.Equal(t, []string{"a", "1", ""}, got)
}

func TestOpen_ReadsRecords(t *testing.T) {
	path := writeFile(t, "data.csv", "a,b\n1,2\n3,4\n")

	lines, err := source.Open(path)
	require.NoError(t, err)
	defer lines.Close()

	assert.Equal(t, []string{"a,b", "1,2", "3,4"}, collect(t, lines))
}

func TestOpen_NoTrailingNewline(t *testing.T) {
	path := writeFile(t, "data.csv", "a,b\n1,2\n3,4")

	lines, err := source.Open(path)
	require.NoError(t, err)
	defer lines.Close()

	assert.Equal(t, []string{"a,b", "1,2", "3,4"}, collect(t, lines))
}

func TestOpen_LongRecordSpansBuffers(t *testing.T) {
	long := strings.Repeat("x", 64*1024)
	path := writeFile(t, "data.csv", "h\n"+long+"\nshort\n")

	lines, err := source.Open(path)
	require.NoError(t, err)
	defer lines.Close()

	got := collect(t, lines)
	require.Len(t, got, 3)
	assert.Equal(t, long, got[1])
	assert.Equal(t, "short", got[2])
}

func TestOpen_Missing(t *testing.T) {
	_, err := source.Open(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestOpen_LZ4(t *testing.T) {
	path := testutil.WriteLZ4File(t, "a,b\n1,2\n")

	lines, err := source.Open(path)
	require.NoError(t, err)
	defer lines.Close()

	assert.Equal(t, []string{"a,b", "1,2"}, collect(t, lines))
}

func TestClose_Twice(t *testing.T) {
	lines, err := source.Open(writeFile(t, "data.csv", "a\n"))
	require.NoError(t, err)

	require.NoError(t, lines.Close())
	require.NoError(t, lines.Close())

	_, ok := lines.Next()
	assert.False(t, ok)
}
