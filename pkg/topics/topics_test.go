package topics_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tagtint/pkg/errors"
	"github.com/arthur-debert/tagtint/pkg/topics"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/dry-run.txt":      {Data: []byte("Information about dry-run mode")},
		"help/architecture.md":  {Data: []byte("# Architecture\n\nDetails")},
		"help/config.txxt":      {Data: []byte("Configuration Guide")},
		"help/ignore.json":      {Data: []byte("{}")},
		"help/option-width.txt": {Data: []byte("Width help")},
	}
}

func TestLoad(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := topics.New(testFS())
		require.NoError(t, tm.Load())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"dry-run", true, "Information about dry-run mode"},
			{"architecture", true, "# Architecture\n\nDetails"},
			{"config", false, ""},
			{"ignore", false, ""},
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
		tm := topics.NewWithOptions(testFS(), topics.Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.Load())
		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})
}

func TestGetTopic(t *testing.T) {
	tm := topics.New(testFS())
	require.NoError(t, tm.Load())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"architecture", "architecture", true},
		{"option-width", "option-width", true},
		{"width", "option-width", true},
		{"--width", "option-width", true},
		{"-w", "", false},
		{"nonexistent", "", false},
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

func TestWriteList(t *testing.T) {
	tm := topics.New(testFS())
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	tm.WriteList(&buf, "tagtint")
	out := buf.String()

	assert.Contains(t, out, "General topics:\n  architecture\n  dry-run\n")
	assert.Contains(t, out, "Option topics:\n  --width\n")
	assert.Contains(t, out, "'tagtint help <topic>'")

	var empty bytes.Buffer
	topics.New(fstest.MapFS{}).WriteList(&empty, "tagtint")
	assert.Equal(t, "No help topics available.\n", empty.String())
}

func TestShow(t *testing.T) {
	tm := topics.New(testFS())
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	require.NoError(t, tm.Show(&buf, "dry-run"))
	assert.Equal(t, "Information about dry-run mode", buf.String())

	err := tm.Show(&buf, "missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestEmbedded(t *testing.T) {
	tm := topics.New(topics.Embedded())
	require.NoError(t, tm.Load())
	assert.Equal(t, []string{"colors", "config", "formats", "tags"}, tm.ListTopics())
}

func TestGlamourRenderer(t *testing.T) {
	r := &topics.GlamourRenderer{Style: "notty", Width: 40}

	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	out := r.Render("# Title\n\nSome *body* text.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
}

func TestInitialize(t *testing.T) {
	rootCmd := &cobra.Command{Use: "testapp", Short: "Test application"}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "render",
		Short: "Render something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	_, err := topics.Initialize(rootCmd, testFS(), topics.Options{})
	require.NoError(t, err)

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help [command or topic]", helpCmd.Use)

	t.Run("shows a topic", func(t *testing.T) {
		var buf bytes.Buffer
		rootCmd.SetOut(&buf)
		rootCmd.SetArgs([]string{"help", "dry-run"})
		require.NoError(t, rootCmd.Execute())
		assert.Equal(t, "Information about dry-run mode", buf.String())
	})

	t.Run("lists topics", func(t *testing.T) {
		var buf bytes.Buffer
		rootCmd.SetOut(&buf)
		rootCmd.SetArgs([]string{"help", "topics"})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, buf.String(), "Available help topics:")
	})
}
