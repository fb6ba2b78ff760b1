// Package report renders an error and everything beneath it as an indented
// tree, one error per line. It is the multi-level counterpart to the shallow
// Error() strings of apperrors.
package report

import (
	"fmt"
	"strings"

	"github.com/agbru/errtree/internal/config"
	apperrors "github.com/agbru/errtree/internal/errors"
	"github.com/charmbracelet/lipgloss"
)

var nameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))

// Render returns the tree rooted at err, one error per line. NamedErrors
// render as "name: message", AggregateErrors as a count of their children,
// and any other error as its Error() text.
//
// Parameters:
//   - err: The root of the tree.
//   - cfg: Indentation, depth limit and color settings.
//
// Returns:
//   - string: The rendered lines joined by newlines, or "" for a nil err.
func Render(err error, cfg config.ReportConfig) string {
	var lines []string
	apperrors.Walk(err, func(e error, depth int) bool {
		lines = append(lines, strings.Repeat(cfg.Indent, depth)+label(e, cfg.Color))
		return cfg.MaxDepth == 0 || depth+1 < cfg.MaxDepth
	})
	return strings.Join(lines, "\n")
}

func label(err error, color bool) string {
	switch e := err.(type) {
	case *apperrors.NamedError:
		name := e.Name()
		if color {
			name = nameStyle.Render(name)
		}
		return name + ": " + e.Message()
	case *apperrors.AggregateError:
		if e.Len() == 1 {
			return "1 error"
		}
		return fmt.Sprintf("%d errors", e.Len())
	default:
		return err.Error()
	}
}
