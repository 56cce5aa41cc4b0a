package util

import "encoding/json"

// ToJSONColumn serializes a value for a map-based gorm update against a
// jsonb column. The model's json serializer only runs on the struct path,
// so map updates must carry the already-encoded payload.
func ToJSONColumn(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
