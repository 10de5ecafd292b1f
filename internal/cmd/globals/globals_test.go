package globals

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFlagsAndParse(t *testing.T) {
	root := &cobra.Command{Use: "bibliotheque"}
	flags := AddFlags(root)
	child := &cobra.Command{Use: "list", RunE: func(*cobra.Command, []string) error { return nil }}
	root.AddCommand(child)

	root.SetArgs([]string{"list", "-f", "books.json", "--format", "json", "-v", "--strict"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "books.json", flags.File)
	assert.Equal(t, "json", flags.Output)
	assert.True(t, flags.Verbose)
	assert.True(t, flags.Strict)

	parsed := Parse(child)
	assert.Equal(t, *flags, *parsed)
}
