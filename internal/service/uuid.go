package service

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// maxUUIDBatch caps batch size to keep responses small and allocation bounded.
	maxUUIDBatch = 100

	uuidV4Description = "Random UUID (version 4)"
	uuidV7Description = "Time-ordered UUID (version 7) - sortable by timestamp"
)

// canonicalUUIDPattern matches the canonical textual form only: 32 hex digits
// grouped 8-4-4-4-12. uuid.Parse is more lenient (URN, braces, compact form),
// which the tool must reject.
var canonicalUUIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// UUIDGenerateResult is the outcome of a batch generation.
type UUIDGenerateResult struct {
	UUIDs       []string `json:"uuids"`
	Count       int      `json:"count"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	// Timestamp is the RFC3339 generation time, set for time-ordered batches only.
	Timestamp string `json:"timestamp,omitempty"`
}

// UUIDParseResult is the decomposition of a single identifier.
type UUIDParseResult struct {
	UUID         string `json:"uuid"`
	Version      int    `json:"version"`
	Variant      int    `json:"variant"`
	Type         string `json:"type"`
	MostSigBits  string `json:"mostSigBits"`
	LeastSigBits string `json:"leastSigBits"`
	// HasTimestamp/Timestamp carry the embedded 60-bit timestamp (100ns intervals
	// since 1582-10-15) for legacy time-based (version 1) identifiers.
	HasTimestamp bool  `json:"hasTimestamp"`
	Timestamp    int64 `json:"timestamp,omitempty"`
}

// UUIDService generates and parses RFC 9562 identifiers.
type UUIDService interface {
	// GenerateV4 produces count cryptographically random identifiers. Count must be in [1,100].
	GenerateV4(count int) (*UUIDGenerateResult, error)

	// GenerateV7 produces count time-ordered identifiers. Identifiers within a batch
	// are strictly increasing; across calls they are non-decreasing for a
	// non-decreasing wall clock. Count must be in [1,100].
	GenerateV7(count int) (*UUIDGenerateResult, error)

	// Parse validates the canonical textual form and extracts version, variant,
	// type label, the two 64-bit halves, and the v1 timestamp when present.
	Parse(s string) (*UUIDParseResult, error)
}

// uuidService is a concrete implementation of UUIDService. A single instance is
// created at process start and shared; the mutex serializes v7 generation so
// concurrent callers cannot interleave batches.
type uuidService struct {
	v7mu sync.Mutex
}

// NewUUIDService constructs a new UUIDService.
func NewUUIDService() UUIDService {
	return &uuidService{}
}

func (s *uuidService) GenerateV4(count int) (*UUIDGenerateResult, error) {
	if count < 1 || count > maxUUIDBatch {
		return nil, newValidationError("Count must be between 1 and %d", maxUUIDBatch)
	}

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, uuid.New().String())
	}
	return &UUIDGenerateResult{
		UUIDs:       out,
		Count:       count,
		Version:     "4",
		Description: uuidV4Description,
	}, nil
}

func (s *uuidService) GenerateV7(count int) (*UUIDGenerateResult, error) {
	if count < 1 || count > maxUUIDBatch {
		return nil, newValidationError("Count must be between 1 and %d", maxUUIDBatch)
	}

	s.v7mu.Lock()
	defer s.v7mu.Unlock()

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		u, err := uuid.NewV7()
		if err != nil {
			return nil, &Error{Kind: KindInternal, Message: "Failed to generate UUID v7: " + err.Error()}
		}
		out = append(out, u.String())
	}
	return &UUIDGenerateResult{
		UUIDs:       out,
		Count:       count,
		Version:     "7",
		Description: uuidV7Description,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *uuidService) Parse(raw string) (*UUIDParseResult, error) {
	trimmed := strings.TrimSpace(raw)
	if !canonicalUUIDPattern.MatchString(trimmed) {
		return nil, newFormatError("Invalid UUID format: expected 8-4-4-4-12 hexadecimal digits")
	}
	u, err := uuid.Parse(trimmed)
	if err != nil {
		return nil, newFormatError("Invalid UUID format: %v", err)
	}

	version := int(u.Version())
	res := &UUIDParseResult{
		UUID:         u.String(),
		Version:      version,
		Variant:      variantNumber(u.Variant()),
		MostSigBits:  fmt.Sprintf("0x%016X", binary.BigEndian.Uint64(u[0:8])),
		LeastSigBits: fmt.Sprintf("0x%016X", binary.BigEndian.Uint64(u[8:16])),
	}

	switch version {
	case 4:
		res.Type = "Random UUID (version 4)"
	case 7:
		res.Type = "Time-ordered UUID (version 7)"
	case 1:
		res.Type = "Time-based UUID (version 1)"
		// 60-bit count of 100ns intervals since the Gregorian epoch.
		res.HasTimestamp = true
		res.Timestamp = int64(u.Time())
	default:
		res.Type = fmt.Sprintf("UUID version %d", version)
	}
	return res, nil
}

// variantNumber maps the library's variant constants to the conventional
// variant numbers (NCS=0, RFC 4122=2, Microsoft=6, future=7).
func variantNumber(v uuid.Variant) int {
	switch v {
	case uuid.RFC4122:
		return 2
	case uuid.Microsoft:
		return 6
	case uuid.Future:
		return 7
	default:
		return 0
	}
}
