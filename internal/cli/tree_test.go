package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lasif-tools/cli/internal/dispatchers"
)

func TestBuildTree_ReturnsRoot(t *testing.T) {
	root := BuildTree()

	require.NotNil(t, root)
	assert.Equal(t, "lasif", root.Name)
	assert.NotEmpty(t, root.Usage)
	assert.NotEmpty(t, root.Flags)
}

func TestBuildTree_HasExpectedCommands(t *testing.T) {
	root := BuildTree()

	expected := []string{
		"init_project",
		"info",
		"list_events",
		"event_info",
		"add_spud_event",
		"plot_domain",
		"plot_event",
		"plot_events",
		"plot_stf",
		"list_models",
		"plot_model",
		"download_waveforms",
		"download_stations",
		"download_history",
		"list_input_file_templates",
		"generate_input_file_template",
		"generate_input_files",
		"list_stf",
		"generate_dummy_data",
		"version",
		"help",
	}

	require.Len(t, root.Children, len(expected))
	for _, name := range expected {
		assert.Contains(t, root.Children, name)
	}
}

func TestBuildTree_NodesAreDescribed(t *testing.T) {
	root := BuildTree()

	for name, node := range root.Children {
		assert.NotEmpty(t, node.Summary, "command %s has no summary", name)
		assert.NotEmpty(t, node.Usage, "command %s has no usage line", name)
	}
}

func TestBuildTree_CommandsAreCategorized(t *testing.T) {
	root := BuildTree()

	for name, node := range root.Children {
		if name == "help" {
			continue
		}
		assert.NotEqual(t, dispatchers.CategoryUncategorized, node.Category,
			"command %s has no category", name)
	}
}

func TestBuildTree_ActionsAreWired(t *testing.T) {
	root := BuildTree()

	for name, node := range root.Children {
		if name == "help" {
			// resolved by the dispatcher itself
			continue
		}
		assert.NotNil(t, node.Action, "command %s has no action", name)
	}
}

func TestBuildTree_DownloadCommandsAcceptProviderFlag(t *testing.T) {
	root := BuildTree()

	for _, name := range []string{"download_waveforms", "download_stations"} {
		node := root.Children[name]
		require.NotNil(t, node)

		found := false
		for _, f := range node.Flags {
			for _, n := range f.Names {
				if n == "--provider" {
					found = true
				}
			}
		}
		assert.True(t, found, "command %s does not accept --provider", name)
	}
}

func TestBuildTree_IsDeterministic(t *testing.T) {
	a := BuildTree()
	b := BuildTree()

	require.Len(t, b.Children, len(a.Children))
	for name := range a.Children {
		assert.Contains(t, b.Children, name)
	}
}
