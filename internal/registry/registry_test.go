package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doxhub/pkg/doxtypes"
)

func mainCategory(commands ...doxtypes.Command) doxtypes.Category {
	return doxtypes.Category{ID: "main", Label: "Main Menu", Commands: commands}
}

func TestBuilder_RegisterAndGet(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Register(mainCategory(
		doxtypes.Command{Label: "Username", Action: doxtypes.EnterCategory("username")},
	)))
	require.NoError(t, b.Register(doxtypes.Category{ID: "username", Label: "Username Search"}))

	reg, err := b.Build("main")
	require.NoError(t, err)

	assert.Equal(t, "main", reg.Root())
	assert.Equal(t, 2, reg.Len())
	assert.True(t, reg.Has("username"))

	cat, err := reg.Get("username")
	require.NoError(t, err)
	assert.Equal(t, "Username Search", cat.Label)

	ids := []string{}
	for _, c := range reg.Categories() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"main", "username"}, ids)
}

func TestBuilder_DuplicateCategory(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Register(mainCategory()))

	err := b.Register(mainCategory())
	require.Error(t, err)

	var dupErr *doxtypes.DuplicateCategoryError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "main", dupErr.ID)
}

func TestBuilder_EmptyIdentifier(t *testing.T) {
	err := NewBuilder().Register(doxtypes.Category{Label: "nameless"})
	assert.EqualError(t, err, "category identifier cannot be empty")
}

func TestBuilder_RegisterAllStopsAtFirstError(t *testing.T) {
	b := NewBuilder()
	err := b.RegisterAll(mainCategory(), mainCategory(), doxtypes.Category{ID: "never"})
	require.Error(t, err)

	_, err = b.Build("main")
	require.NoError(t, err)
}

func TestBuilder_DanglingReference(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Register(mainCategory(
		doxtypes.Command{Label: "Leaks", Action: doxtypes.EnterCategory("leaks")},
	)))

	reg, err := b.Build("main")
	require.Error(t, err)
	assert.Nil(t, reg)

	var loadErr *doxtypes.CatalogLoadError
	require.True(t, errors.As(err, &loadErr))
	require.Len(t, loadErr.Problems, 1)
	assert.Contains(t, loadErr.Problems[0], `enters unknown category "leaks"`)
}

func TestBuilder_MissingRoot(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Register(doxtypes.Category{ID: "email"}))

	_, err := b.Build("main")
	var loadErr *doxtypes.CatalogLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), `root category "main" is not defined`)
}

func TestBuilder_CyclesAllowed(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Register(mainCategory(
		doxtypes.Command{Label: "Tools", Action: doxtypes.EnterCategory("tools")},
	)))
	require.NoError(t, b.Register(doxtypes.Category{ID: "tools", Commands: []doxtypes.Command{
		{Label: "Home", Action: doxtypes.EnterCategory("main")},
	}}))

	_, err := b.Build("main")
	assert.NoError(t, err)
}

func TestRegistry_GetUnknown(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Register(mainCategory()))
	reg, err := b.Build("main")
	require.NoError(t, err)

	_, err = reg.Get("missing")
	var unkErr *doxtypes.UnknownCategoryError
	require.True(t, errors.As(err, &unkErr))
	assert.Equal(t, "missing", unkErr.ID)
}

func TestRegistry_IsolatedFromCallerMutation(t *testing.T) {
	commands := []doxtypes.Command{{Label: "Google", Action: doxtypes.OpenResource("https://google.com")}}
	b := NewBuilder()
	require.NoError(t, b.Register(mainCategory(commands...)))
	reg, err := b.Build("main")
	require.NoError(t, err)

	commands[0].Label = "mutated"
	cat, err := reg.Get("main")
	require.NoError(t, err)
	assert.Equal(t, "Google", cat.Commands[0].Label)

	cat.Commands[0].Label = "mutated again"
	again, err := reg.Get("main")
	require.NoError(t, err)
	assert.Equal(t, "Google", again.Commands[0].Label)
}
