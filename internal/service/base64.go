package service

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// Base64Result is the outcome of an encode or decode operation.
type Base64Result struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	URLSafe bool   `json:"urlSafe"`
	// Binary is set when decoded bytes are not valid UTF-8 and the output is
	// rendered as a hex dump instead.
	Binary bool `json:"binary,omitempty"`
}

// Base64Service encodes and decodes Base64 text, in the standard or URL-safe alphabet.
type Base64Service interface {
	Encode(input string, urlSafe bool) (*Base64Result, error)
	Decode(input string, urlSafe bool) (*Base64Result, error)
}

type base64Service struct{}

// NewBase64Service constructs a new Base64Service.
func NewBase64Service() Base64Service {
	return &base64Service{}
}

func (s *base64Service) Encode(input string, urlSafe bool) (*Base64Result, error) {
	if input == "" {
		return nil, newValidationError("Input is required")
	}
	enc := base64.StdEncoding
	if urlSafe {
		enc = base64.URLEncoding
	}
	return &Base64Result{
		Input:   input,
		Output:  enc.EncodeToString([]byte(input)),
		URLSafe: urlSafe,
	}, nil
}

func (s *base64Service) Decode(input string, urlSafe bool) (*Base64Result, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, newValidationError("Input is required")
	}
	enc := base64.StdEncoding
	if urlSafe {
		enc = base64.URLEncoding
	}
	decoded, err := enc.DecodeString(trimmed)
	if err != nil {
		return nil, newDecodeError("Invalid Base64 input: %v", err)
	}

	res := &Base64Result{Input: trimmed, URLSafe: urlSafe}
	if utf8.Valid(decoded) {
		res.Output = string(decoded)
	} else {
		res.Output = hexDump(decoded)
		res.Binary = true
	}
	return res, nil
}

const hexDigits = "0123456789abcdef"

func hexDump(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(hexDigits[c>>4])
		sb.WriteByte(hexDigits[c&0x0f])
	}
	return sb.String()
}
