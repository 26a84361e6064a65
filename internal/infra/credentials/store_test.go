package credentials

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// readKey parses the written file the way config loading does.
func readKey(t *testing.T, path string) string {
	t.Helper()

	values, err := godotenv.Read(path)
	require.NoError(t, err)

	return values[APIKeyVar]
}

func TestSaveAPIKey_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	store := NewEnvFileStore(path, zap.NewNop())

	require.NoError(t, store.SaveAPIKey(context.Background(), "abc123"))

	assert.Equal(t, "abc123", readKey(t, path))
}

func TestSaveAPIKey_ReplacesPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OTHER=value\nYOUTUBE_API_KEY=old\n"), 0o600))

	store := NewEnvFileStore(path, zap.NewNop())
	require.NoError(t, store.SaveAPIKey(context.Background(), "new-key"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "OTHER")
	assert.NotContains(t, string(content), "old")

	assert.Equal(t, "new-key", readKey(t, path))
}

func TestSaveAPIKey_SpecialCharacters(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	store := NewEnvFileStore(path, zap.NewNop())

	require.NoError(t, store.SaveAPIKey(context.Background(), `AIza"with spaces#and=signs`))

	assert.Equal(t, `AIza"with spaces#and=signs`, readKey(t, path))
}

func TestSaveAPIKey_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", ".env")
	store := NewEnvFileStore(path, zap.NewNop())

	err := store.SaveAPIKey(context.Background(), "abc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing")
}
