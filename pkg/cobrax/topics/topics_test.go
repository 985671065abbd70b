// pkg/cobrax/topics/topics_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: testing/fstest in-memory filesystems
// PURPOSE: Verify topic scanning, lookup, and help command installation

package topics

import (
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTopics(t *testing.T) {
	fsys := fstest.MapFS{
		"simulate.md":     {Data: []byte("# Simulate mode\n\nDetails")},
		"backups.txt":     {Data: []byte("How backups work")},
		"notes.json":      {Data: []byte("not a topic")},
		"deep/nested.md":  {Data: []byte("nested topic")},
		"option-force.md": {Data: []byte("the force flag")},
	}

	t.Run("default extensions", func(t *testing.T) {
		tm := New(fsys)
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"simulate", true, "# Simulate mode\n\nDetails"},
			{"backups", true, "How backups work"},
			{"nested", true, "nested topic"},
			{"notes", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(fsys, Options{Extensions: []string{".md"}})
		require.NoError(t, tm.scanTopics())

		_, exists := tm.GetTopic("backups")
		assert.False(t, exists)
		_, exists = tm.GetTopic("simulate")
		assert.True(t, exists)
	})
}

func TestGetTopicFlagStyle(t *testing.T) {
	fsys := fstest.MapFS{
		"simulate.md":     {Data: []byte("simulate docs")},
		"option-force.md": {Data: []byte("force docs")},
	}
	tm := New(fsys)
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{input: "simulate", expected: "simulate", exists: true},
		{input: "--simulate", expected: "simulate", exists: true},
		{input: "--force", expected: "option-force", exists: true},
		{input: "-force", expected: "option-force", exists: true},
		{input: "--unknown", exists: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestListTopics(t *testing.T) {
	fsys := fstest.MapFS{
		"one.md":   {Data: []byte("1")},
		"two.txt":  {Data: []byte("2")},
		"skip.bin": {Data: []byte("3")},
	}
	tm := New(fsys)
	require.NoError(t, tm.scanTopics())

	assert.ElementsMatch(t, []string{"one", "two"}, tm.ListTopics())
}

func TestNilFilesystemHasNoTopics(t *testing.T) {
	tm := New(nil)
	require.NoError(t, tm.scanTopics())
	assert.Empty(t, tm.ListTopics())
}

func TestInitialize(t *testing.T) {
	fsys := fstest.MapFS{
		"simulate.md": {Data: []byte("simulate docs")},
	}

	rootCmd := &cobra.Command{Use: "testapp", Short: "Test application"}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "link",
		Short: "Create a link",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	require.NoError(t, Initialize(rootCmd, fsys))

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help", helpCmd.Name())
	assert.Equal(t, "help [command or topic]", helpCmd.Use)
}
