package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doxhub/internal/output"
	"doxhub/internal/registry"
	"doxhub/internal/testutils"
	"doxhub/pkg/doxtypes"
)

func TestRenderMenu_Root(t *testing.T) {
	reg := testRegistry(t)
	root, err := reg.Get("main")
	require.NoError(t, err)

	printer := output.NewPrinter(output.TestMode())
	menu := RenderMenu(reg, root, doxtypes.NewSessionState("s", "main"), printer)

	testutils.AssertGolden(t, `Main Menu
Pick a research area

   1) UsernameSearch
   2) Search
   3) About
  10) Quit

   0) exit, q) quit
`, menu)
}

func TestRenderMenu_NestedShowsBreadcrumbs(t *testing.T) {
	reg := testRegistry(t)
	username, err := reg.Get("username")
	require.NoError(t, err)

	state := doxtypes.NewSessionState("s", "main")
	state.Push("username")

	printer := output.NewPrinter(output.TestMode())
	menu := RenderMenu(reg, username, state, printer)

	testutils.AssertGolden(t, `Username Search
Main Menu > Username Search

  1) Lookup  example.com
  2) Back

  0) back, q) quit
`, menu)
}

func TestRenderMenu_Styled(t *testing.T) {
	reg := testRegistry(t)
	username, err := reg.Get("username")
	require.NoError(t, err)

	printer := output.NewPrinter(output.WithStyles(testutils.NewMockStyleProvider()))
	menu := RenderMenu(reg, username, doxtypes.NewSessionState("s", "username"), printer)

	assert.Contains(t, menu, "[title]Username Search[/title]")
	assert.Contains(t, menu, "[number]1)[/number] [label]Lookup[/label]")
}

func TestRenderMenu_AlignsDescriptions(t *testing.T) {
	b := registry.NewBuilder()
	require.NoError(t, b.Register(doxtypes.Category{ID: "main", Label: "Sites", Commands: []doxtypes.Command{
		{Label: "GitHub", Description: "code hosting", Action: doxtypes.OpenResource("https://github.com/{}")},
		{Label: "X", Description: "microblog", Action: doxtypes.OpenResource("https://x.com/{}")},
		{Label: "KeybaseDirectory", Action: doxtypes.OpenResource("https://keybase.io/{}")},
	}}))
	reg, err := b.Build("main")
	require.NoError(t, err)
	root, err := reg.Get("main")
	require.NoError(t, err)

	menu := RenderMenu(reg, root, doxtypes.NewSessionState("s", "main"), output.NewPrinter(output.TestMode()))

	testutils.AssertGolden(t, `Sites

  1) GitHub            code hosting
  2) X                 microblog
  3) KeybaseDirectory

  0) exit, q) quit
`, menu)
}

func TestBreadcrumbs_UnknownIDFallsBackToID(t *testing.T) {
	reg := testRegistry(t)
	state := doxtypes.NewSessionState("s", "main")
	state.Push("ghost")
	assert.Equal(t, "Main Menu > ghost", Breadcrumbs(reg, state))
}
