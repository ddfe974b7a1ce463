package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ============================================================================
// USER SOURCE — array of JSON objects
// ============================================================================

// userRecord tolerates numeric or string user ids in the source.
type userRecord struct {
	UserID     json.Number `json:"user_id"`
	Membership string      `json:"membership"`
	City       string      `json:"city"`
}

// LoadUsers reads the user source and maps it 1:1 to User records.
func LoadUsers(path string, log *zap.Logger) ([]User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read user source: %w", err)
	}

	var raw []userRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("user source %s: %w", path, err)
	}

	users := make([]User, 0, len(raw))
	for _, r := range raw {
		users = append(users, User{
			UserID:     r.UserID.String(),
			Membership: r.Membership,
			City:       r.City,
		})
	}

	log.Info("loaded user source",
		zap.String("path", path),
		zap.Int("users", len(users)))

	return users, nil
}
