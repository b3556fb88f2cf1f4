package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeClass(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte{0xCA, 0xFE, 0xBA, 0xBE}, 0644))
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		rel      string
		includes []string
		excludes []string
		want     bool
	}{
		{"no patterns matches everything", "com/example/Foo.class", nil, nil, true},
		{"include match", "com/example/Foo.class", []string{"com/example/**"}, nil, true},
		{"include miss", "org/other/Bar.class", []string{"com/example/**"}, nil, false},
		{"exclude wins over include", "com/example/generated/Gen.class",
			[]string{"com/example/**"}, []string{"**/generated/**"}, false},
		{"exclude without includes", "com/example/Foo.class", nil, []string{"com/**"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.rel, tt.includes, tt.excludes))
		})
	}
}

func TestStage(t *testing.T) {
	root := t.TempDir()
	dest := t.TempDir()
	writeClass(t, root, "com/example/Foo.class")
	writeClass(t, root, "com/example/generated/Gen.class")
	writeClass(t, root, "org/other/Bar.class")
	// Non-class files are never staged.
	require.NoError(t, os.WriteFile(filepath.Join(root, "com", "example", "notes.txt"), []byte("x"), 0644))

	n, err := Stage([]string{root}, []string{"com/**"}, []string{"**/generated/**"}, dest)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.FileExists(t, filepath.Join(dest, "com", "example", "Foo.class"))
	assert.NoFileExists(t, filepath.Join(dest, "com", "example", "generated", "Gen.class"))
	assert.NoFileExists(t, filepath.Join(dest, "org", "other", "Bar.class"))
	assert.NoFileExists(t, filepath.Join(dest, "com", "example", "notes.txt"))
}

func TestStage_MissingRoot(t *testing.T) {
	_, err := Stage([]string{filepath.Join(t.TempDir(), "missing")}, nil, nil, t.TempDir())
	assert.Error(t, err)
}
