package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"svw.info/codebreaker/internal/domain"
)

// FS stores one JSON document per player under dir/players.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var playerIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func validPlayerID(id string) error {
	if !playerIDPattern.MatchString(id) {
		return fmt.Errorf("invalid player id %q", id)
	}
	return nil
}

func (s *FS) pathFor(id string) string {
	return filepath.Join(s.dir, "players", strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, playerID string, p *domain.Progress) error {
	if p == nil {
		return errors.New("invalid progress: nil")
	}
	if err := validPlayerID(playerID); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	target := s.pathFor(playerID)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	// write to a sibling temp file so a crash never leaves half a document
	tmp, err := os.CreateTemp(filepath.Dir(target), playerID+".*.tmp")
	if err != nil {
		return err
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), target)
}

func (s *FS) Load(ctx context.Context, playerID string) (*domain.Progress, error) {
	if err := validPlayerID(playerID); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.pathFor(playerID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("player %s: %w", playerID, domain.ErrNotFound)
		}
		return nil, err
	}
	var out domain.Progress
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode progress for %s: %w", playerID, err)
	}
	return &out, nil
}
