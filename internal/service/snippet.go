package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"devtools/internal/cache"
	"devtools/internal/config"
	"devtools/internal/model"
)

// maxSnippetBytes caps shared snippet content.
const maxSnippetBytes = 64 * 1024

const snippetKeyPrefix = "snippet:"

// ErrSnippetNotFound is returned when a snippet id is unknown or has expired.
var ErrSnippetNotFound = errors.New("snippet not found")

// SnippetService stores shareable tool input/output under short ids with a TTL.
type SnippetService interface {
	Create(ctx context.Context, tool, content string) (*model.Snippet, error)
	Get(ctx context.Context, id string) (*model.Snippet, error)
}

type snippetService struct {
	store cache.Cache
	cfg   config.ToolsConfig
	now   func() time.Time
}

// NewSnippetService constructs a new SnippetService.
func NewSnippetService(store cache.Cache, cfg config.ToolsConfig) SnippetService {
	return &snippetService{store: store, cfg: cfg, now: time.Now}
}

func (s *snippetService) Create(ctx context.Context, tool, content string) (*model.Snippet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, newValidationError("Content is required")
	}
	if len(content) > maxSnippetBytes {
		return nil, newValidationError("Content exceeds %d bytes", maxSnippetBytes)
	}
	if model.ToolByID(tool) == nil {
		return nil, newValidationError("Unknown tool: %q", tool)
	}

	snip := &model.Snippet{
		ID:        shortID(),
		Tool:      tool,
		Content:   content,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.SetJSON(ctx, snippetKeyPrefix+snip.ID, snip, s.cfg.SnippetTTL); err != nil {
		return nil, err
	}
	return snip, nil
}

func (s *snippetService) Get(ctx context.Context, id string) (*model.Snippet, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrSnippetNotFound
	}
	var snip model.Snippet
	ok, err := s.store.GetJSON(ctx, snippetKeyPrefix+id, &snip)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSnippetNotFound
	}
	return &snip, nil
}

// shortID derives a compact share id from a random UUID. Eight hex chars keep
// URLs short; collisions within a 24h TTL window are acceptably unlikely for a
// dev tool and would only overwrite the older snippet.
func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
