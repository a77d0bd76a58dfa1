package config

import (
	"os"
	"path/filepath"

	"fjacquet/iban-book/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file from the working directory or its parent into the
// process environment. Variables already set win. It returns the file that
// was loaded, or "" when none was found.
func LoadEnv(logger logging.Logger) string {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			logger.WithError(err).Warn("Error loading .env file", logging.F(logging.FieldFile, candidate))
			return ""
		}
		logger.Debug("Loaded environment variables", logging.F(logging.FieldFile, candidate))
		return candidate
	}
	return ""
}
