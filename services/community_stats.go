package services

import (
	"fmt"
	"sync"
	"time"

	"ethno-platform-api/config"
	"ethno-platform-api/utils"
)

var (
	countCacheMu sync.RWMutex
	countCache   *countCacheEntry
	countTTL     = time.Minute
)

type countCacheEntry struct {
	byCommunity map[string]int64
	fetchedAt   time.Time
}

type communityCountRow struct {
	Community string
	Total     int64
}

// loadCounts recomputes approved research counts per community, caching the
// result briefly so listing pages do not re-aggregate on every request.
func loadCounts(force bool) (*countCacheEntry, error) {
	countCacheMu.RLock()
	cached := countCache
	countCacheMu.RUnlock()

	if cached != nil && !force && time.Since(cached.fetchedAt) < countTTL {
		return cached, nil
	}

	countCacheMu.Lock()
	defer countCacheMu.Unlock()

	if countCache != nil && !force && time.Since(countCache.fetchedAt) < countTTL {
		return countCache, nil
	}

	var rows []communityCountRow
	err := config.DB.Table("research").
		Select("community, COUNT(*) AS total").
		Where("status = ?", utils.StatusApproved).
		Group("community").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load research counts: %w", err)
	}

	byCommunity := make(map[string]int64, len(rows))
	for _, row := range rows {
		byCommunity[row.Community] = row.Total
	}

	entry := &countCacheEntry{
		byCommunity: byCommunity,
		fetchedAt:   time.Now(),
	}
	countCache = entry
	return entry, nil
}

// ClearCommunityCountCache invalidates the in-memory count cache.
func ClearCommunityCountCache() {
	countCacheMu.Lock()
	defer countCacheMu.Unlock()
	countCache = nil
}

// ResearchCountForCommunity returns the approved research count for one
// community label. Unknown communities count zero.
func ResearchCountForCommunity(community string) (int64, error) {
	entry, err := loadCounts(false)
	if err != nil {
		return 0, err
	}
	return entry.byCommunity[community], nil
}

// ResearchCountsByCommunity returns all cached counts keyed by community.
func ResearchCountsByCommunity() (map[string]int64, error) {
	entry, err := loadCounts(false)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(entry.byCommunity))
	for community, total := range entry.byCommunity {
		counts[community] = total
	}
	return counts, nil
}
