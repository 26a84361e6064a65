// Package credentials persists the YouTube API key to a dotenv file.
package credentials

import (
	"context"
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// APIKeyVar is the variable name the key is stored under.
const APIKeyVar = "YOUTUBE_API_KEY"

// EnvFileStore implements domain.CredentialStore.
type EnvFileStore struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

// NewEnvFileStore creates a store writing to path.
func NewEnvFileStore(path string, logger *zap.Logger) *EnvFileStore {
	return &EnvFileStore{path: path, logger: logger}
}

// SaveAPIKey replaces the file content with a single APIKeyVar entry.
// The running process keeps its current key; the new one is read on the next
// start.
func (s *EnvFileStore) SaveAPIKey(_ context.Context, apiKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := godotenv.Write(map[string]string{APIKeyVar: apiKey}, s.path); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}

	s.logger.Info("api key saved", zap.String("path", s.path))

	return nil
}
