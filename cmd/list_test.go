package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LinusU/emoji-commit-type/pkg/committype"
)

const expectedListing = `The emoji commit types are:
💥  - Breaking change
🎉  - New functionality
🐛  - Bugfix
🔥  - Cleanup / Performance
🌹  - Meta
`

func TestPrintCommitTypes(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printCommitTypes(&buf, false))
	assert.Equal(t, expectedListing, buf.String())
}

func TestPrintCommitTypesLineCount(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printCommitTypes(&buf, false))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1+len(committype.AllVariants()))
}

func TestCommitTypeLine(t *testing.T) {
	assert.Equal(t, "💥  - Breaking change", commitTypeLine(committype.First(), false))

	colored := commitTypeLine(committype.Bugfix, true)
	assert.True(t, strings.HasPrefix(colored, "🐛  - "))
	assert.Equal(t, "🐛  - "+picocolors.Cyan("Bugfix"), colored)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestPrintCommitTypesWriteError(t *testing.T) {
	err := printCommitTypes(failingWriter{}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
}
