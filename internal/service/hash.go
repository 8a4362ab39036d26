package service

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"math/big"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128

	// passwordCharset is the printable set used for generated passwords.
	passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+"
)

// HashResult carries hex digests of a single input across all supported algorithms.
type HashResult struct {
	Input  string `json:"input"`
	MD5    string `json:"md5"`
	SHA1   string `json:"sha1"`
	SHA256 string `json:"sha256"`
	SHA512 string `json:"sha512"`
}

// PasswordResult carries one randomly generated password.
type PasswordResult struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// HashService computes message digests and generates random passwords.
// MD5 and SHA-1 are provided for checksum comparison with legacy systems,
// not for protecting secrets.
type HashService interface {
	Generate(input string) (*HashResult, error)
	Password(length int) (*PasswordResult, error)
}

type hashService struct{}

// NewHashService constructs a new HashService.
func NewHashService() HashService {
	return &hashService{}
}

func (s *hashService) Generate(input string) (*HashResult, error) {
	if input == "" {
		return nil, newValidationError("Input is required")
	}

	md5Sum := md5.Sum([]byte(input))
	sha1Sum := sha1.Sum([]byte(input))
	sha256Sum := sha256.Sum256([]byte(input))
	sha512Sum := sha512.Sum512([]byte(input))

	return &HashResult{
		Input:  input,
		MD5:    hex.EncodeToString(md5Sum[:]),
		SHA1:   hex.EncodeToString(sha1Sum[:]),
		SHA256: hex.EncodeToString(sha256Sum[:]),
		SHA512: hex.EncodeToString(sha512Sum[:]),
	}, nil
}

func (s *hashService) Password(length int) (*PasswordResult, error) {
	if length < minPasswordLength || length > maxPasswordLength {
		return nil, newValidationError("Length must be between %d and %d", minPasswordLength, maxPasswordLength)
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return nil, &Error{Kind: KindInternal, Message: "Failed to generate password: " + err.Error()}
		}
		out[i] = passwordCharset[n.Int64()]
	}
	return &PasswordResult{Password: string(out), Length: length}, nil
}
