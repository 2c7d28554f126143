// Package registry holds the category registry of DoxHub.
// Categories are registered once through a Builder; the Registry it produces has no
// mutators, so the catalog stays read-only for the lifetime of the process.
package registry

import (
	"fmt"
	"strings"

	"doxhub/pkg/doxtypes"
)

// Builder collects categories before the session starts.
type Builder struct {
	categories map[string]doxtypes.Category
	order      []string
}

// NewBuilder creates an empty registry builder.
func NewBuilder() *Builder {
	return &Builder{
		categories: make(map[string]doxtypes.Category),
	}
}

// Register adds a category. Returns an error if the identifier is empty or
// if a category with the same identifier is already registered.
func (b *Builder) Register(category doxtypes.Category) error {
	if strings.TrimSpace(category.ID) == "" {
		return fmt.Errorf("category identifier cannot be empty")
	}

	if _, exists := b.categories[category.ID]; exists {
		return &doxtypes.DuplicateCategoryError{ID: category.ID}
	}

	b.categories[category.ID] = category.Clone()
	b.order = append(b.order, category.ID)
	return nil
}

// RegisterAll registers categories in order, stopping at the first failure.
func (b *Builder) RegisterAll(categories ...doxtypes.Category) error {
	for _, category := range categories {
		if err := b.Register(category); err != nil {
			return err
		}
	}
	return nil
}

// Build validates cross-category references and returns the read-only registry.
// Every EnterCategory action must name a registered category and rootID must exist.
func (b *Builder) Build(rootID string) (*Registry, error) {
	var problems []string

	if _, ok := b.categories[rootID]; !ok {
		problems = append(problems, fmt.Sprintf("root category %q is not defined", rootID))
	}

	for _, id := range b.order {
		for _, cmd := range b.categories[id].Commands {
			if cmd.Action.Kind != doxtypes.ActionEnterCategory {
				continue
			}
			if _, ok := b.categories[cmd.Action.CategoryID]; !ok {
				problems = append(problems, fmt.Sprintf("category %q: command %q enters unknown category %q",
					id, cmd.Label, cmd.Action.CategoryID))
			}
		}
	}

	if len(problems) > 0 {
		return nil, &doxtypes.CatalogLoadError{Problems: problems}
	}

	categories := make(map[string]doxtypes.Category, len(b.categories))
	for id, category := range b.categories {
		categories[id] = category.Clone()
	}
	order := make([]string, len(b.order))
	copy(order, b.order)

	return &Registry{
		root:       rootID,
		categories: categories,
		order:      order,
	}, nil
}

// Registry is the immutable category registry used by the session loop.
// It is safe to share because it exposes no way to modify its contents.
type Registry struct {
	root       string
	categories map[string]doxtypes.Category
	order      []string
}

// Root returns the identifier of the main menu category.
func (r *Registry) Root() string {
	return r.root
}

// Get retrieves a category by identifier.
func (r *Registry) Get(id string) (doxtypes.Category, error) {
	category, exists := r.categories[id]
	if !exists {
		return doxtypes.Category{}, &doxtypes.UnknownCategoryError{ID: id}
	}
	return category.Clone(), nil
}

// Has reports whether a category is registered.
func (r *Registry) Has(id string) bool {
	_, exists := r.categories[id]
	return exists
}

// Categories returns all categories in registration order.
// The returned slice is a copy and can be safely modified.
func (r *Registry) Categories() []doxtypes.Category {
	categories := make([]doxtypes.Category, 0, len(r.order))
	for _, id := range r.order {
		categories = append(categories, r.categories[id].Clone())
	}
	return categories
}

// Len returns the number of registered categories.
func (r *Registry) Len() int {
	return len(r.order)
}
