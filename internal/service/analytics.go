package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/A1Marky/premium-nba-api/internal/analytics"
	"github.com/A1Marky/premium-nba-api/internal/provider"
)

// PayloadCache stores raw provider game logs keyed by player and
// season. Implemented by cache.RedisCache.
type PayloadCache interface {
	GetGameLog(ctx context.Context, playerID, season string) (*provider.GameLog, error)
	SetGameLog(ctx context.Context, gameLog *provider.GameLog) error
}

// GameLogArchive persists raw provider game logs so the service keeps
// answering when the upstream is down. Implemented by
// repository.GameLogRepository.
type GameLogArchive interface {
	UpsertGameLog(ctx context.Context, gameLog *provider.GameLog) error
	GetGameLog(ctx context.Context, playerID, season string) (*provider.GameLog, error)
}

// AnalyticsService orchestrates analytics requests: it resolves a
// player's game log (cache, primary source, archive, scraper fallback,
// in that order), normalizes it, and runs the requested computation.
// All computation is in the analytics package; this layer only does
// I/O and wiring.
type AnalyticsService struct {
	primary  provider.GameLogSource
	fallback provider.GameLogSource
	cache    PayloadCache
	archive  GameLogArchive
	season   analytics.SeasonResolver
}

// NewAnalyticsService creates a new analytics service. fallback, cache
// and archive may be nil; the service degrades to primary-only
// fetching. A nil resolver uses the wall clock.
func NewAnalyticsService(primary, fallback provider.GameLogSource, cache PayloadCache, archive GameLogArchive, resolver analytics.SeasonResolver) *AnalyticsService {
	if resolver == nil {
		resolver = analytics.DefaultSeasonResolver(time.Now)
	}
	return &AnalyticsService{
		primary:  primary,
		fallback: fallback,
		cache:    cache,
		archive:  archive,
		season:   resolver,
	}
}

// loadRecords resolves a player's normalized game records for a season.
// An empty season means the current one. Returns the records
// most-recent-first, the resolved season label, and the count of
// malformed rows dropped during normalization.
func (s *AnalyticsService) loadRecords(ctx context.Context, playerID, season string) ([]analytics.GameRecord, string, int, error) {
	if playerID == "" {
		return nil, "", 0, fmt.Errorf("player ID is required: %w", provider.ErrNotFound)
	}
	if season == "" {
		season = s.season()
	}
	if _, _, err := analytics.SeasonRange(season); err != nil {
		return nil, "", 0, err
	}

	gameLog, err := s.resolveGameLog(ctx, playerID, season)
	if err != nil {
		return nil, "", 0, err
	}

	records, dropped := analytics.Normalize(gameLog.Rows)
	records, err = analytics.FilterBySeason(records, season)
	if err != nil {
		return nil, "", 0, err
	}
	return records, season, dropped, nil
}

func (s *AnalyticsService) resolveGameLog(ctx context.Context, playerID, season string) (*provider.GameLog, error) {
	if s.cache != nil {
		cached, err := s.cache.GetGameLog(ctx, playerID, season)
		if err != nil {
			log.Printf("[analytics-service] cache read failed for player %s: %v", playerID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	gameLog, primaryErr := s.primary.PlayerGameLog(ctx, playerID, season)
	if primaryErr == nil {
		if s.cache != nil {
			if err := s.cache.SetGameLog(ctx, gameLog); err != nil {
				log.Printf("[analytics-service] cache write failed for player %s: %v", playerID, err)
			}
		}
		if s.archive != nil {
			if err := s.archive.UpsertGameLog(ctx, gameLog); err != nil {
				log.Printf("[analytics-service] archiving game log for player %s failed: %v", playerID, err)
			}
		}
		return gameLog, nil
	}
	log.Printf("[analytics-service] primary source failed for player %s: %v", playerID, primaryErr)

	if s.archive != nil {
		archived, err := s.archive.GetGameLog(ctx, playerID, season)
		if err == nil {
			log.Printf("[analytics-service] serving archived game log for player %s", playerID)
			return archived, nil
		}
		if !errors.Is(err, provider.ErrNotFound) {
			log.Printf("[analytics-service] archive read failed for player %s: %v", playerID, err)
		}
	}

	if s.fallback != nil {
		scraped, err := s.fallback.PlayerGameLog(ctx, playerID, season)
		if err == nil {
			log.Printf("[analytics-service] serving scraped game log for player %s", playerID)
			if s.archive != nil {
				if archiveErr := s.archive.UpsertGameLog(ctx, scraped); archiveErr != nil {
					log.Printf("[analytics-service] archiving scraped game log for player %s failed: %v", playerID, archiveErr)
				}
			}
			return scraped, nil
		}
		log.Printf("[analytics-service] fallback source failed for player %s: %v", playerID, err)
	}

	return nil, fmt.Errorf("resolving game log for player %s: %w", playerID, primaryErr)
}

// GameLogResponse is the normalized game log as served to callers.
type GameLogResponse struct {
	PlayerID      string                 `json:"player_id"`
	Season        string                 `json:"season"`
	GamesReturned int                    `json:"games_returned"`
	DroppedRows   int                    `json:"dropped_rows,omitempty"`
	Games         []analytics.GameRecord `json:"games"`
}

// PlayerGameLog returns a player's normalized game log, newest first,
// optionally truncated to the most recent limit games.
func (s *AnalyticsService) PlayerGameLog(ctx context.Context, playerID, season string, limit int) (*GameLogResponse, error) {
	records, season, dropped, err := s.loadRecords(ctx, playerID, season)
	if err != nil {
		return nil, err
	}
	window := analytics.TakeRecent(records, limit)
	return &GameLogResponse{
		PlayerID:      playerID,
		Season:        season,
		GamesReturned: len(window),
		DroppedRows:   dropped,
		Games:         window,
	}, nil
}

// HitRatesResponse reports threshold hit rates per stat category.
type HitRatesResponse struct {
	PlayerID      string                       `json:"player_id"`
	Season        string                       `json:"season"`
	GamesAnalyzed int                          `json:"games_analyzed"`
	DroppedRows   int                          `json:"dropped_rows,omitempty"`
	Categories    []analytics.CategoryHitRates `json:"categories"`
}

// HitRates computes threshold hit rates over the last numGames games.
func (s *AnalyticsService) HitRates(ctx context.Context, playerID, season string, numGames int) (*HitRatesResponse, error) {
	records, season, dropped, err := s.loadRecords(ctx, playerID, season)
	if err != nil {
		return nil, err
	}
	rates, err := analytics.ComputeHitRates(records, numGames, nil)
	if err != nil {
		return nil, err
	}
	return &HitRatesResponse{
		PlayerID:      playerID,
		Season:        season,
		GamesAnalyzed: len(analytics.TakeRecent(records, numGames)),
		DroppedRows:   dropped,
		Categories:    rates,
	}, nil
}

// HomeAwaySplitsResponse reports per-venue splits.
type HomeAwaySplitsResponse struct {
	PlayerID      string                   `json:"player_id"`
	Season        string                   `json:"season"`
	GamesAnalyzed int                      `json:"games_analyzed"`
	DroppedRows   int                      `json:"dropped_rows,omitempty"`
	Splits        analytics.HomeAwaySplits `json:"splits"`
}

// HomeAwaySplits computes per-venue splits over the last lastN games.
func (s *AnalyticsService) HomeAwaySplits(ctx context.Context, playerID, season string, lastN int) (*HomeAwaySplitsResponse, error) {
	records, season, dropped, err := s.loadRecords(ctx, playerID, season)
	if err != nil {
		return nil, err
	}
	return &HomeAwaySplitsResponse{
		PlayerID:      playerID,
		Season:        season,
		GamesAnalyzed: len(analytics.TakeRecent(records, lastN)),
		DroppedRows:   dropped,
		Splits:        analytics.ComputeHomeAwaySplits(records, lastN),
	}, nil
}

// RestImpactResponse reports rest-tier splits.
type RestImpactResponse struct {
	PlayerID      string               `json:"player_id"`
	Season        string               `json:"season"`
	GamesAnalyzed int                  `json:"games_analyzed"`
	DroppedRows   int                  `json:"dropped_rows,omitempty"`
	Splits        analytics.RestImpact `json:"splits"`
}

// RestImpact computes rest-tier splits over the last lastN games.
func (s *AnalyticsService) RestImpact(ctx context.Context, playerID, season string, lastN int) (*RestImpactResponse, error) {
	records, season, dropped, err := s.loadRecords(ctx, playerID, season)
	if err != nil {
		return nil, err
	}
	return &RestImpactResponse{
		PlayerID:      playerID,
		Season:        season,
		GamesAnalyzed: len(analytics.TakeRecent(records, lastN)),
		DroppedRows:   dropped,
		Splits:        analytics.ComputeRestImpact(records, lastN),
	}, nil
}

// PaceImpactResponse reports pace-tier splits.
type PaceImpactResponse struct {
	PlayerID      string               `json:"player_id"`
	Season        string               `json:"season"`
	GamesAnalyzed int                  `json:"games_analyzed"`
	DroppedRows   int                  `json:"dropped_rows,omitempty"`
	Splits        analytics.PaceImpact `json:"splits"`
}

// PaceImpact computes pace-tier splits over the last lastN games.
func (s *AnalyticsService) PaceImpact(ctx context.Context, playerID, season string, lastN int) (*PaceImpactResponse, error) {
	records, season, dropped, err := s.loadRecords(ctx, playerID, season)
	if err != nil {
		return nil, err
	}
	return &PaceImpactResponse{
		PlayerID:      playerID,
		Season:        season,
		GamesAnalyzed: len(analytics.TakeRecent(records, lastN)),
		DroppedRows:   dropped,
		Splits:        analytics.ComputePaceImpact(records, lastN),
	}, nil
}

// MatchupResponse reports a player's history against one opponent.
type MatchupResponse struct {
	PlayerID    string                   `json:"player_id"`
	Season      string                   `json:"season"`
	DroppedRows int                      `json:"dropped_rows,omitempty"`
	Matchup     analytics.MatchupHistory `json:"matchup"`
}

// MatchupHistory analyzes the last lastN games against one opponent.
func (s *AnalyticsService) MatchupHistory(ctx context.Context, playerID, teamID, season string, lastN int) (*MatchupResponse, error) {
	records, season, dropped, err := s.loadRecords(ctx, playerID, season)
	if err != nil {
		return nil, err
	}
	return &MatchupResponse{
		PlayerID:    playerID,
		Season:      season,
		DroppedRows: dropped,
		Matchup:     analytics.ComputeMatchupHistory(records, teamID, lastN),
	}, nil
}

// ConsistencyResponse reports a consistency score for one stat type.
type ConsistencyResponse struct {
	PlayerID    string                      `json:"player_id"`
	Season      string                      `json:"season"`
	DroppedRows int                         `json:"dropped_rows,omitempty"`
	Consistency analytics.ConsistencyResult `json:"consistency"`
}

// Consistency scores how tightly a stat clusters over the last lastN
// games. statType accepts the caller-facing spellings ("points",
// "PTS", ...).
func (s *AnalyticsService) Consistency(ctx context.Context, playerID, statType, season string, lastN int) (*ConsistencyResponse, error) {
	cat, err := analytics.ParseStatCategory(statType)
	if err != nil {
		return nil, err
	}
	records, season, dropped, err := s.loadRecords(ctx, playerID, season)
	if err != nil {
		return nil, err
	}
	result, err := analytics.ComputeConsistency(records, cat, lastN)
	if err != nil {
		return nil, err
	}
	return &ConsistencyResponse{
		PlayerID:    playerID,
		Season:      season,
		DroppedRows: dropped,
		Consistency: result,
	}, nil
}
