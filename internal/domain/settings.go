package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Settings is the platform-specific bag of bidding and targeting options.
// The orchestrator never looks inside; each adapter decodes the keys it needs.
type Settings map[string]any

func (s Settings) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}
	return string(b), nil
}

func (s *Settings) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*s = Settings{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan settings: unsupported type %T", src)
	}
	return json.Unmarshal(data, s)
}
