package fx

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestModuleGraph(t *testing.T) {
	var root *cobra.Command
	require.NoError(t, fx.ValidateApp(Module, fx.Populate(&root), fx.NopLogger))
}
