package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"hash"
	"strings"
	"time"
)

// claimTimeLayout mirrors the display format used across the tool pages.
const claimTimeLayout = "2006-01-02 15:04:05 MST"

// hmacAlgorithms maps the header-declared algorithm names to their hash
// constructors. Only symmetric HMAC variants are supported; asymmetric
// algorithms need key material this tool does not handle.
var hmacAlgorithms = map[string]func() hash.Hash{
	"HS256": sha256.New,
	"HS384": sha512.New384,
	"HS512": sha512.New,
}

// JWTDecodeResult carries the decoded structure of a token. The signature is
// surfaced but never verified here; verification is a separate operation.
type JWTDecodeResult struct {
	Header     string `json:"header"`
	HeaderRaw  string `json:"headerRaw"`
	Payload    string `json:"payload"`
	PayloadRaw string `json:"payloadRaw"`

	Signature    string `json:"signature,omitempty"`
	HasSignature bool   `json:"hasSignature"`

	HasExpiry    bool   `json:"hasExpiry"`
	IsExpired    bool   `json:"isExpired,omitempty"`
	ExpFormatted string `json:"expFormatted,omitempty"`
	IatFormatted string `json:"iatFormatted,omitempty"`
	NbfFormatted string `json:"nbfFormatted,omitempty"`
}

// JWTVerifyResult carries the outcome of an HMAC signature check.
type JWTVerifyResult struct {
	Valid     bool   `json:"valid"`
	Algorithm string `json:"algorithm"`
	Message   string `json:"message"`
}

// JWTService decodes and verifies JSON Web Tokens (RFC 7519 / RFC 7515).
type JWTService interface {
	// Decode splits and Base64URL-decodes a 2- or 3-segment token and reports
	// header, payload, claim timestamps and signature presence.
	Decode(token string) (*JWTDecodeResult, error)

	// Verify recomputes the HMAC signature of a 3-segment token using the
	// header-declared algorithm and the given secret. The algorithm is never
	// taken from caller input, which blocks algorithm-substitution attacks.
	// Expiration is not checked; use Decode for expiry reporting.
	Verify(token, secret string) (*JWTVerifyResult, error)
}

type jwtService struct {
	now func() time.Time
}

// NewJWTService constructs a new JWTService.
func NewJWTService() JWTService {
	return &jwtService{now: time.Now}
}

func (s *jwtService) Decode(token string) (*JWTDecodeResult, error) {
	parts := strings.Split(strings.TrimSpace(token), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, newFormatError("Invalid JWT format. Expected 2 or 3 parts separated by dots.")
	}

	headerJSON, err := decodeBase64URL(parts[0])
	if err != nil {
		return nil, newDecodeError("Failed to decode JWT header: %v", err)
	}
	headerPretty, _, err := prettyJSONObject(headerJSON)
	if err != nil {
		return nil, newDecodeError("Failed to decode JWT header: %v", err)
	}

	payloadJSON, err := decodeBase64URL(parts[1])
	if err != nil {
		return nil, newDecodeError("Failed to decode JWT payload: %v", err)
	}
	payloadPretty, claims, err := prettyJSONObject(payloadJSON)
	if err != nil {
		return nil, newDecodeError("Failed to decode JWT payload: %v", err)
	}

	res := &JWTDecodeResult{
		Header:     headerPretty,
		HeaderRaw:  headerJSON,
		Payload:    payloadPretty,
		PayloadRaw: payloadJSON,
	}

	if exp, ok := claimSeconds(claims, "exp"); ok {
		res.HasExpiry = true
		res.IsExpired = s.now().After(time.Unix(exp, 0))
		res.ExpFormatted = formatClaimTime(exp)
	}
	if iat, ok := claimSeconds(claims, "iat"); ok {
		res.IatFormatted = formatClaimTime(iat)
	}
	if nbf, ok := claimSeconds(claims, "nbf"); ok {
		res.NbfFormatted = formatClaimTime(nbf)
	}

	if len(parts) == 3 && parts[2] != "" {
		res.Signature = parts[2]
		res.HasSignature = true
	}
	return res, nil
}

func (s *jwtService) Verify(token, secret string) (*JWTVerifyResult, error) {
	parts := strings.Split(strings.TrimSpace(token), ".")
	if len(parts) != 3 {
		return nil, newFormatError("JWT must have 3 parts for signature verification")
	}

	headerJSON, err := decodeBase64URL(parts[0])
	if err != nil {
		return nil, newDecodeError("Failed to decode JWT header: %v", err)
	}
	var header map[string]any
	if err := json.Unmarshal([]byte(headerJSON), &header); err != nil {
		return nil, newDecodeError("Failed to decode JWT header: %v", err)
	}
	algorithm, _ := header["alg"].(string)
	if algorithm == "" {
		return nil, newFormatError("No algorithm specified in header")
	}

	newHash, ok := hmacAlgorithms[strings.ToUpper(algorithm)]
	if !ok {
		return nil, newUnsupportedAlgorithmError(
			"Unsupported algorithm: %s. Only HS256, HS384, HS512 are supported for verification.", algorithm)
	}

	mac := hmac.New(newHash, []byte(secret))
	mac.Write([]byte(parts[0] + "." + parts[1]))
	expected := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

	valid := hmac.Equal([]byte(parts[2]), []byte(expected))
	res := &JWTVerifyResult{
		Valid:     valid,
		Algorithm: strings.ToUpper(algorithm),
	}
	if valid {
		res.Message = "Signature is valid!"
	} else {
		res.Message = "Signature verification failed. The secret key may be incorrect."
	}
	return res, nil
}

// decodeBase64URL decodes a Base64URL segment, reconstructing padding by
// appending '=' until the length is a multiple of 4 (JWT segments omit it).
func decodeBase64URL(segment string) (string, error) {
	if pad := len(segment) % 4; pad != 0 {
		segment += strings.Repeat("=", 4-pad)
	}
	decoded, err := base64.URLEncoding.DecodeString(segment)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// prettyJSONObject parses raw JSON into an object and re-renders it indented.
// json.Number preserves large numeric claims without float rounding.
func prettyJSONObject(raw string) (string, map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return "", nil, err
	}
	pretty, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return "", nil, err
	}
	return string(pretty), obj, nil
}

// claimSeconds extracts a numeric Unix-seconds claim.
func claimSeconds(claims map[string]any, name string) (int64, bool) {
	v, ok := claims[name]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int64(f), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func formatClaimTime(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).Format(claimTimeLayout)
}
