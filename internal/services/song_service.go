package services

import (
	"context"
	"errors"
	"fmt"

	"songrate/internal/pagination"
	"songrate/internal/repositories"
)

// SongService orchestrates song operations and maps documents to entities
type SongService interface {
	ListSongs(ctx context.Context, page, size int) (pagination.Page[SongEntity], error)
	AverageDifficulty(ctx context.Context, level *int) (float64, error)
	SearchSongs(ctx context.Context, message string) ([]SongEntity, error)
	GetSong(ctx context.Context, id string) (SongEntity, error)
}

type songService struct {
	repo repositories.SongRepository
}

// NewSongService creates a new song service backed by the given repository
func NewSongService(repo repositories.SongRepository) SongService {
	return &songService{repo: repo}
}

// ListSongs returns a paginated list of song entities. The reported size is
// the number of items actually returned, not the requested size.
func (s *songService) ListSongs(ctx context.Context, page, size int) (pagination.Page[SongEntity], error) {
	songs, total, err := s.repo.List(ctx, page, size)
	if err != nil {
		return pagination.Page[SongEntity]{}, fmt.Errorf("failed to list songs: %w", err)
	}

	entities := make([]SongEntity, len(songs))
	for i, song := range songs {
		entities[i] = newSongEntity(song)
	}

	return pagination.Page[SongEntity]{
		Items: entities,
		Total: total,
		Page:  page,
		Size:  len(entities),
	}, nil
}

// AverageDifficulty returns the mean difficulty, optionally filtered by level
func (s *songService) AverageDifficulty(ctx context.Context, level *int) (float64, error) {
	return s.repo.AverageDifficulty(ctx, level)
}

// SearchSongs searches songs by text, returning entities
func (s *songService) SearchSongs(ctx context.Context, message string) ([]SongEntity, error) {
	songs, err := s.repo.SearchByText(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to search songs: %w", err)
	}

	entities := make([]SongEntity, len(songs))
	for i, song := range songs {
		entities[i] = newSongEntity(song)
	}

	return entities, nil
}

// GetSong fetches a single song entity, translating repository lookup
// failures into the domain not-found error
func (s *songService) GetSong(ctx context.Context, id string) (SongEntity, error) {
	song, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSongNotFound) {
			return SongEntity{}, fmt.Errorf("%w: song %s", ErrNotFound, id)
		}
		return SongEntity{}, err
	}

	return newSongEntity(*song), nil
}
