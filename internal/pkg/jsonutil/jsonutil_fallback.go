//go:build !amd64 && !arm64

package jsonutil

import (
	"encoding/json"
)

// Marshal serializes v to JSON bytes.
func Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal deserializes JSON bytes into v.
func Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// MarshalString serializes v to a JSON string.
func MarshalString(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UnmarshalString deserializes a JSON string into v.
func UnmarshalString(data string, v interface{}) error {
	return json.Unmarshal([]byte(data), v)
}
