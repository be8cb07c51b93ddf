package cli

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestHelp(t *testing.T) {
	assert := assert.New(t)

	rootCmd := newRootCmd(&Cli{})

	rootCmd.SetArgs([]string{})
	assert.NoError(rootCmd.Execute())

	rootCmd.SetArgs([]string{"model", "--help"})
	assert.NoError(rootCmd.Execute())
	rootCmd.SetArgs([]string{"warnings", "--help"})
	assert.NoError(rootCmd.Execute())
}

func TestVersion(t *testing.T) {
	assert := assert.New(t)

	out := mustExecute(t, []string{"version"})
	assert.Equal("test-version\n", out)
}

func TestModel(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	t.Run("text", func(t *testing.T) {
		out := mustExecute(t, []string{
			"model",
			"--bpmn-file",
			"../test/bpmn/process/start-task-end.bpmn",
			"--disable-console-log",
		})

		assert.Contains(out, "BPMN ELEMENT ID")
		assert.Contains(out, "startEvent")
		assert.Contains(out, "START_EVENT")
		assert.Contains(out, "serviceTask")
		assert.Contains(out, "SEQUENCE_FLOW")
	})

	t.Run("json", func(t *testing.T) {
		out := mustExecute(t, []string{
			"model",
			"--bpmn-file",
			"../test/bpmn/process/start-task-end.bpmn",
			"--disable-console-log",
			"--output",
			"json",
		})

		var v map[string]any
		require.NoError(json.Unmarshal([]byte(out), &v))

		flowNodes, ok := v["FlowNodes"].([]any)
		require.True(ok)
		assert.Len(flowNodes, 3)

		edges, ok := v["Edges"].([]any)
		require.True(ok)
		assert.Len(edges, 2)
	})

	t.Run("yaml", func(t *testing.T) {
		out := mustExecute(t, []string{
			"model",
			"--bpmn-file",
			"../test/json/start-task-end.json",
			"--disable-console-log",
			"--output",
			"yaml",
		})

		var v map[string]any
		require.NoError(yaml.Unmarshal([]byte(out), &v))

		flowNodes, ok := v["FlowNodes"].([]any)
		require.True(ok)
		assert.Len(flowNodes, 3)
	})

	t.Run("type", func(t *testing.T) {
		out := mustExecute(t, []string{
			"model",
			"--bpmn-file",
			"../test/bpmn/process/start-task-end.bpmn",
			"--disable-console-log",
			"--type",
			"SERVICE_TASK",
		})

		assert.Contains(out, "serviceTask")
		assert.NotContains(out, "START_EVENT")
		assert.NotContains(out, "SEQUENCE_FLOW")
	})

	t.Run("invalid type", func(t *testing.T) {
		err := mustFail(t, []string{
			"model",
			"--bpmn-file",
			"../test/bpmn/process/start-task-end.bpmn",
			"--type",
			"NOT_EXISTING",
		})
		assert.ErrorContains(err, "invalid element type NOT_EXISTING")
	})

	t.Run("not existing file", func(t *testing.T) {
		err := mustFail(t, []string{"model", "--bpmn-file", "../test/bpmn/not-existing.bpmn"})
		assert.ErrorContains(err, "failed to read BPMN file")
	})

	t.Run("invalid output", func(t *testing.T) {
		err := mustFail(t, []string{
			"model",
			"--bpmn-file",
			"../test/bpmn/process/start-task-end.bpmn",
			"--output",
			"xml",
		})
		assert.ErrorContains(err, "invalid options")
	})
}

func TestWarnings(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	t.Run("text", func(t *testing.T) {
		out := mustExecute(t, []string{
			"warnings",
			"--bpmn-file",
			"../test/bpmn/group/group-unknown-category-value.bpmn",
			"--disable-console-log",
		})

		assert.Contains(out, "GROUP_UNKNOWN_CATEGORY_VALUE")
		assert.Contains(out, "SHAPE_UNKNOWN_BPMN_ELEMENT")
	})

	t.Run("json", func(t *testing.T) {
		out := mustExecute(t, []string{
			"warnings",
			"--bpmn-file",
			"../test/bpmn/group/group-unknown-category-value.bpmn",
			"--disable-console-log",
			"--output",
			"json",
			"--type",
			"GROUP_UNKNOWN_CATEGORY_VALUE",
		})

		var v []map[string]any
		require.NoError(json.Unmarshal([]byte(out), &v))
		require.Len(v, 1)

		assert.Equal("GROUP_UNKNOWN_CATEGORY_VALUE", v[0]["Type"])
		assert.Equal([]any{"group", "unknownCategoryValue"}, v[0]["Args"])
		assert.Equal("group group: unable to find category value ref unknownCategoryValue", v[0]["Message"])
	})
}

func TestConfig(t *testing.T) {
	assert := assert.New(t)

	configFileName := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configFileName, []byte("output = \"yaml\"\ndisable-console-log = true\n"), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Run("config file", func(t *testing.T) {
		out := mustExecute(t, []string{
			"warnings",
			"--bpmn-file",
			"../test/bpmn/group/group-unknown-category-value.bpmn",
			"--config",
			configFileName,
		})

		assert.Contains(out, "Type: GROUP_UNKNOWN_CATEGORY_VALUE")
	})

	t.Run("flag overrides config file", func(t *testing.T) {
		out := mustExecute(t, []string{
			"warnings",
			"--bpmn-file",
			"../test/bpmn/group/group-unknown-category-value.bpmn",
			"--config",
			configFileName,
			"--output",
			"text",
		})

		assert.Contains(out, "MESSAGE")
	})

	t.Run("environment variable overrides config file", func(t *testing.T) {
		t.Setenv(envPrefix+"OUTPUT", "json")

		out := mustExecute(t, []string{
			"warnings",
			"--bpmn-file",
			"../test/bpmn/group/group-unknown-category-value.bpmn",
			"--config",
			configFileName,
		})

		assert.Contains(out, `"Type": "GROUP_UNKNOWN_CATEGORY_VALUE"`)
	})

	t.Run("invalid config file", func(t *testing.T) {
		invalidConfigFileName := filepath.Join(t.TempDir(), "invalid.toml")
		if err := os.WriteFile(invalidConfigFileName, []byte("output = "), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		err := mustFail(t, []string{"version", "--config", invalidConfigFileName})
		assert.ErrorContains(err, "failed to decode config file")
	})
}
