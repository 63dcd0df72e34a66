package testutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertOutput checks the primary output against the expected CSV text
func AssertOutput(t *testing.T, out *bytes.Buffer, expected, context string) {
	t.Helper()
	assert.Equal(t, expected, out.String(), "%s: unexpected csv output", context)
}

// AssertNoOutput checks that nothing was written to the primary output
func AssertNoOutput(t *testing.T, out *bytes.Buffer, context string) {
	t.Helper()
	assert.Zero(t, out.Len(), "%s: expected no output, got %q", context, out.String())
}

// AssertDiagnostic checks that err carries exactly the expected diagnostic line
func AssertDiagnostic(t *testing.T, err error, expected, context string) {
	t.Helper()
	if assert.Error(t, err, "%s: expected an error", context) {
		assert.Equal(t, expected, err.Error(), "%s: wrong diagnostic", context)
	}
}
