package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/samber/lo"

	"github.com/LinusU/emoji-commit-type/pkg/committype"
)

const listHeader = "The emoji commit types are:"

// commitTypeLine renders a single "<emoji>  - <description>" line.
func commitTypeLine(t committype.CommitType, colored bool) string {
	description := t.Description()
	if colored {
		description = picocolors.Cyan(description)
	}
	return fmt.Sprintf("%s  - %s", t.Emoji(), description)
}

func printCommitTypes(w io.Writer, colored bool) error {
	header := listHeader
	if colored {
		header = picocolors.Bold(header)
	}

	lines := lo.Map(committype.AllVariants(), func(t committype.CommitType, _ int) string {
		return commitTypeLine(t, colored)
	})

	out := header + "\n" + strings.Join(lines, "\n") + "\n"
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("failed to write commit types: %w", err)
	}
	return nil
}
