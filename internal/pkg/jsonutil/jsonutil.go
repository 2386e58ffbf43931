//go:build amd64 || arm64

// Package jsonutil wraps the JSON codec used across the project.
// 在 amd64/arm64 上使用 sonic, 其他架构回退到标准库.
package jsonutil

import (
	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Marshal serializes v to JSON bytes.
func Marshal(v interface{}) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal deserializes JSON bytes into v.
func Unmarshal(data []byte, v interface{}) error {
	return api.Unmarshal(data, v)
}

// MarshalString serializes v to a JSON string.
func MarshalString(v interface{}) (string, error) {
	return api.MarshalToString(v)
}

// UnmarshalString deserializes a JSON string into v.
func UnmarshalString(data string, v interface{}) error {
	return api.UnmarshalFromString(data, v)
}
