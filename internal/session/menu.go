package session

import (
	"fmt"
	"strconv"
	"strings"

	"doxhub/internal/output"
	"doxhub/internal/registry"
	"doxhub/internal/theme"
	"doxhub/pkg/doxtypes"
)

const breadcrumbSeparator = " > "

// RenderMenu draws category as a numbered menu. The header shows the breadcrumb trail
// of state; the footer shows what the reserved back token does. Descriptions line up
// in one column after the longest label.
func RenderMenu(reg *registry.Registry, category doxtypes.Category, state *doxtypes.SessionState, printer *output.Printer) string {
	var b strings.Builder

	b.WriteString(printer.Styled(output.SemanticTitle, category.Title()))
	b.WriteString("\n")
	if state.CanGoBack() {
		b.WriteString(printer.Styled(output.SemanticBreadcrumb, Breadcrumbs(reg, state)))
		b.WriteString("\n")
	}
	if category.Description != "" {
		b.WriteString(printer.Styled(output.SemanticDescription, category.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	width, labelWidth := 1, 0
	for pos, cmd := range category.Commands {
		if w := len(strconv.Itoa(cmd.Number(pos))); w > width {
			width = w
		}
		if w := theme.Width(cmd.Label); w > labelWidth {
			labelWidth = w
		}
	}

	for pos, cmd := range category.Commands {
		number := fmt.Sprintf("%*d)", width, cmd.Number(pos))
		label := printer.Styled(output.SemanticLabel, cmd.Label)
		if cmd.Description != "" {
			label = theme.PadRight(label, labelWidth) + "  " + printer.Styled(output.SemanticDescription, cmd.Description)
		}
		line := fmt.Sprintf("  %s %s", printer.Styled(output.SemanticNumber, number), label)
		b.WriteString(line)
		b.WriteString("\n")
	}

	footer := "exit"
	if state.CanGoBack() {
		footer = "back"
	}
	b.WriteString("\n")
	b.WriteString(printer.Styled(output.SemanticDescription,
		fmt.Sprintf("  %*s) %s, q) quit", width, "0", footer)))
	b.WriteString("\n")

	return b.String()
}

// Breadcrumbs joins the titles of the visited categories.
func Breadcrumbs(reg *registry.Registry, state *doxtypes.SessionState) string {
	ids := state.Breadcrumbs()
	titles := make([]string, 0, len(ids))
	for _, id := range ids {
		title := id
		if category, err := reg.Get(id); err == nil {
			title = category.Title()
		}
		titles = append(titles, title)
	}
	return strings.Join(titles, breadcrumbSeparator)
}
