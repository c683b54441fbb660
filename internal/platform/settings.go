package platform

import (
	"fmt"

	"campaign_syncer/internal/domain"
)

// Float reads a numeric setting. JSON numbers decode to float64 while
// settings built in code may carry ints, so both are accepted.
func Float(s domain.Settings, key string) (float64, bool, error) {
	raw, ok := s[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	default:
		return 0, false, fmt.Errorf("setting %q: expected number, got %T", key, raw)
	}
}

func String(s domain.Settings, key string) (string, bool, error) {
	raw, ok := s[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	v, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("setting %q: expected string, got %T", key, raw)
	}
	return v, true, nil
}

func Strings(s domain.Settings, key string) ([]string, error) {
	raw, ok := s[key]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("setting %q[%d]: expected string, got %T", key, i, item)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("setting %q: expected list of strings, got %T", key, raw)
	}
}

// Section returns a nested settings object, e.g. "targeting".
func Section(s domain.Settings, key string) (domain.Settings, error) {
	raw, ok := s[key]
	if !ok || raw == nil {
		return domain.Settings{}, nil
	}
	switch v := raw.(type) {
	case map[string]any:
		return domain.Settings(v), nil
	case domain.Settings:
		return v, nil
	default:
		return nil, fmt.Errorf("setting %q: expected object, got %T", key, raw)
	}
}
