package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, paths []string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("a,b\n1,2\n"), 0644))
	}
}

func TestIsTabular(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"chat.csv", true},
		{"chat.CSV", true},
		{"export.xlsx", true},
		{"export.XLSX", true},
		{"~$export.xlsx", false},
		{"notes.txt", false},
		{"archive.csv.gz", false},
		{"csv", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTabular(tt.name))
		})
	}
}

func TestFindMessageExports(t *testing.T) {
	tests := []struct {
		name          string
		files         []string
		expectedCount int
		description   string
	}{
		{
			name: "nested conversations",
			files: []string{
				"alice/messages.csv",
				"bob/messages.csv",
				"group/holiday planning/messages.csv",
			},
			expectedCount: 3,
			description:   "Should find CSV files at any depth",
		},
		{
			name: "mixed file types",
			files: []string{
				"alice/messages.csv",
				"alice/attachments.zip",
				"bob/export.xlsx",
				"readme.txt",
			},
			expectedCount: 2,
			description:   "Should find only tabular files",
		},
		{
			name:          "empty tree",
			files:         []string{},
			expectedCount: 0,
			description:   "Should handle an empty directory",
		},
		{
			name: "lock files ignored",
			files: []string{
				"bob/export.xlsx",
				"bob/~$export.xlsx",
			},
			expectedCount: 1,
			description:   "Excel lock files are not exports",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFiles(t, root, tt.files)

			discovery := NewDiscovery(root)
			found, err := discovery.FindMessageExports(".")
			require.NoError(t, err)
			assert.Len(t, found, tt.expectedCount, tt.description)
		})
	}
}

func TestFindMessageExports_ParentDir(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{"alice smith/messages.csv"})

	discovery := NewDiscovery(root)
	found, err := discovery.FindMessageExports(".")
	require.NoError(t, err)
	require.Len(t, found, 1)

	assert.Equal(t, "alice smith", found[0].ParentDir)
	assert.Equal(t, "messages.csv", found[0].Name)
}

func TestFindMessageExports_Exclude(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{
		"alice/messages.csv",
		"combined_messages.csv",
	})

	discovery := NewDiscovery(root)
	found, err := discovery.FindMessageExports(".", filepath.Join(root, "combined_messages.csv"))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "alice", found[0].ParentDir)
}

func TestFindMessageExports_MissingDir(t *testing.T) {
	discovery := NewDiscovery(t.TempDir())
	_, err := discovery.FindMessageExports("does-not-exist")
	assert.Error(t, err)
}
