package analysis

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
	"golang.org/x/crypto/blake2b"
)

const cacheKeyPrefix = "analysis:"

// Store persists analyses, implemented by postgres.AnalysisRepo.
type Store interface {
	GetAnalysis(ctx context.Context, position string, first domain.PlayerID) (*domain.Analysis, error)
	SaveAnalysis(ctx context.Context, a domain.Analysis) error
}

// Cache is the subset of redis.RedisCache the service needs.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type Service struct {
	store Store // Optional, can be nil
	cache Cache // Optional, can be nil
	ttl   time.Duration

	decide func(domain.Board, domain.PlayerID) bot.Decision
}

func NewService(store Store, cache Cache, ttl time.Duration) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		ttl:    ttl,
		decide: bot.ChooseColumn,
	}
}

// PositionKey identifies a position for storage. The opening book depends on
// who moved first, so that is part of the key.
func PositionKey(board domain.Board, first domain.PlayerID) string {
	return board.Key() + ":" + string(first.Symbol())
}

// CacheKey hashes the position key into a fixed length Redis key.
func CacheKey(positionKey string) string {
	sum := blake2b.Sum256([]byte(positionKey))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// ChooseColumn returns the machine's column for board, looking in the cache,
// then the store, and only then asking the engine. Storage failures are
// logged and never fail the move.
func (s *Service) ChooseColumn(ctx context.Context, board domain.Board, first domain.PlayerID) (int, error) {
	position := board.Key()
	key := CacheKey(PositionKey(board, first))

	if a := s.getFromCache(ctx, key); a != nil {
		if answers(*a, board) {
			log.Printf("[ANALYSIS] Cache hit for %s: column %d", key, a.BestColumn)
			return a.BestColumn, nil
		}
		log.Printf("[ANALYSIS] Warning: Cached column %d does not fit the board, evicting", a.BestColumn)
		if err := s.cache.Del(ctx, key); err != nil {
			log.Printf("[ANALYSIS] Warning: Failed to evict %s: %v", key, err)
		}
	}

	if a := s.getFromStore(ctx, position, first); a != nil {
		if answers(*a, board) {
			log.Printf("[ANALYSIS] Store hit for position: column %d", a.BestColumn)
			s.setInCache(ctx, key, *a)
			return a.BestColumn, nil
		}
		log.Printf("[ANALYSIS] Warning: Stored column %d does not fit the board, recomputing", a.BestColumn)
	}

	start := time.Now()
	decision := s.decide(board, first)
	if decision.Column < 0 {
		return -1, fmt.Errorf("%w: no playable column", domain.ErrGameOver)
	}

	a := domain.Analysis{
		Position:    position,
		FirstPlayer: first,
		BestColumn:  decision.Column,
		Source:      domain.SourceSearch,
		DiscCount:   board.DiscCount(),
		ElapsedMs:   time.Since(start).Milliseconds(),
		CreatedAt:   time.Now(),
	}
	if decision.FromBook {
		a.Source = domain.SourceBook
	}

	if s.store != nil {
		if err := s.store.SaveAnalysis(ctx, a); err != nil {
			log.Printf("[ANALYSIS] Warning: Failed to store analysis: %v", err)
		}
	}
	s.setInCache(ctx, key, a)

	return a.BestColumn, nil
}

// answers reports whether a was recorded for board and its column can still
// be played there.
func answers(a domain.Analysis, board domain.Board) bool {
	recorded, err := domain.ParseKey(a.Position)
	if err != nil || recorded != board {
		return false
	}
	return board.IsPlayable(a.BestColumn)
}

func (s *Service) getFromCache(ctx context.Context, key string) *domain.Analysis {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			log.Printf("[ANALYSIS] Warning: Failed to read cache: %v", err)
		}
		return nil
	}

	var a domain.Analysis
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		log.Printf("[ANALYSIS] Warning: Corrupt cache entry %s: %v", key, err)
		return nil
	}
	return &a
}

func (s *Service) getFromStore(ctx context.Context, position string, first domain.PlayerID) *domain.Analysis {
	if s.store == nil {
		return nil
	}

	a, err := s.store.GetAnalysis(ctx, position, first)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("[ANALYSIS] Warning: Failed to read store: %v", err)
		}
		return nil
	}
	return a
}

func (s *Service) setInCache(ctx context.Context, key string, a domain.Analysis) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(a)
	if err != nil {
		log.Printf("[ANALYSIS] Warning: Failed to encode analysis: %v", err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		log.Printf("[ANALYSIS] Warning: Failed to cache analysis: %v", err)
	}
}
