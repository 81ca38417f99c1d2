package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/codebreaker/internal/domain"
)

func sampleProgress() *domain.Progress {
	return &domain.Progress{
		State: domain.GameState{
			LastPlayed: "2026-10-14",
			Status:     domain.StatusWon,
			Guesses:    []string{"TANGO", "AGENT"},
			HintUsed:   true,
			DailySeed:  20261014,
		},
		Stats: domain.GameStats{Played: 4, Won: 3, Streak: 2, Distribution: [6]int{0, 2, 1, 0, 0, 0}},
	}
}

func TestFSRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewFS(t.TempDir())

	require.NoError(t, s.Save(ctx, "player-1", sampleProgress()))
	got, err := s.Load(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, sampleProgress(), got)

	// overwrite
	next := sampleProgress()
	next.Stats.Played = 5
	require.NoError(t, s.Save(ctx, "player-1", next))
	got, err = s.Load(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stats.Played)
}

func TestFSLoadMissing(t *testing.T) {
	_, err := NewFS(t.TempDir()).Load(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFSRejectsUnsafeIDs(t *testing.T) {
	s := NewFS(t.TempDir())
	for _, id := range []string{"", "../escape", "a/b", "with space"} {
		assert.Error(t, s.Save(context.Background(), id, sampleProgress()), id)
		_, err := s.Load(context.Background(), id)
		assert.Error(t, err, id)
	}
	assert.Error(t, s.Save(context.Background(), "ok", nil))
}

func TestFSLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "players"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "players", "broken.json"), []byte("{not json"), 0o644))
	_, err := NewFS(dir).Load(context.Background(), "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestFSLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	require.NoError(t, s.Save(context.Background(), "p", sampleProgress()))
	ents, err := os.ReadDir(filepath.Join(dir, "players"))
	require.NoError(t, err)
	require.Len(t, ents, 1)
	assert.Equal(t, "p.json", ents[0].Name())
}
