package repositories

import "encoding/json"

// encodeJSON serializes a value for a jsonb column, falling back to the
// given literal when the value is nil or unserializable.
func encodeJSON(v interface{}, fallback string) string {
	if v == nil {
		return fallback
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fallback
	}
	return string(b)
}

// decodeJSON deserializes a jsonb column, treating empty as absent.
func decodeJSON(s string, v interface{}) error {
	if s == "" {
		return nil
	}
	return json.Unmarshal([]byte(s), v)
}
