package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"doxhub/internal/output"
	"doxhub/internal/registry"
	"doxhub/pkg/doxtypes"
)

// CatalogTree renders the categories reachable from the registry root as a tree.
// A category already shown on the current branch is not expanded again. Categories
// that no menu leads to follow as separate trees marked unreachable.
func CatalogTree(reg *registry.Registry, printer *output.Printer) string {
	root, err := reg.Get(reg.Root())
	if err != nil {
		return err.Error()
	}

	reached := map[string]bool{}
	trees := []string{render(categoryTree(reg, root, printer, map[string]bool{}, reached))}

	// Unreachable trees link back into the main tree without repeating it
	shown := map[string]bool{}
	for id := range reached {
		shown[id] = true
	}
	for _, category := range reg.Categories() {
		if reached[category.ID] {
			continue
		}
		t := categoryTree(reg, category, printer, shown, reached)
		t.Root(printer.Styled(output.SemanticTitle, category.Title()) + " " +
			printer.Styled(output.SemanticDescription, "(unreachable)"))
		trees = append(trees, render(t))
	}
	return strings.Join(trees, "\n\n")
}

func render(t *tree.Tree) string {
	t.Enumerator(tree.RoundedEnumerator)
	return t.String()
}

func categoryTree(reg *registry.Registry, category doxtypes.Category, printer *output.Printer, path, reached map[string]bool) *tree.Tree {
	path[category.ID] = true
	reached[category.ID] = true
	defer delete(path, category.ID)

	t := tree.Root(printer.Styled(output.SemanticTitle, category.Title()))
	for pos, cmd := range category.Commands {
		label := fmt.Sprintf("%s %s",
			printer.Styled(output.SemanticNumber, fmt.Sprintf("%d)", cmd.Number(pos))),
			printer.Styled(output.SemanticLabel, cmd.Label))

		switch cmd.Action.Kind {
		case doxtypes.ActionEnterCategory:
			id := cmd.Action.CategoryID
			if !reg.Has(id) || path[id] {
				t.Child(label + " " + printer.Styled(output.SemanticDescription, "-> "+id))
				continue
			}
			next, _ := reg.Get(id)
			sub := categoryTree(reg, next, printer, path, reached)
			sub.Root(label + " " + printer.Styled(output.SemanticDescription, "-> "+next.Title()))
			t.Child(sub)
		case doxtypes.ActionOpenResource:
			t.Child(label + " " + printer.Styled(output.SemanticDescription, cmd.Action.URLTemplate))
		default:
			t.Child(label + " " + printer.Styled(output.SemanticDescription, "("+cmd.Action.Kind.String()+")"))
		}
	}
	return t
}
