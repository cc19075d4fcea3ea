package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"team-member-service/internal/database"
	"team-member-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// CacheTagRepository хранит счетчики инвалидаций кэш-тегов.
// Контрольная сумма набора тегов - сумма их счетчиков.
type CacheTagRepository struct {
	queries *database.Queries
	logger  *logrus.Logger
}

// NewCacheTagRepository создает новый экземпляр CacheTagRepository.
func NewCacheTagRepository(queries *database.Queries, logger *logrus.Logger) *CacheTagRepository {
	return &CacheTagRepository{
		queries: queries,
		logger:  logger,
	}
}

var (
	_ domain.CacheTagsInvalidator = (*CacheTagRepository)(nil)
	_ domain.CacheTagsChecksum    = (*CacheTagRepository)(nil)
)

// InvalidateTags увеличивает счетчики тегов. Ошибки только журналируются.
func (r *CacheTagRepository) InvalidateTags(ctx context.Context, tags []string) {
	for _, tag := range tags {
		if err := r.queries.InvalidateCacheTag(ctx, tag); err != nil {
			r.logger.WithError(err).WithField("tag", tag).Error("Failed to invalidate cache tag")
		}
	}
}

// Checksum возвращает сумму счетчиков инвалидаций тегов.
func (r *CacheTagRepository) Checksum(ctx context.Context, tags []string) (int64, error) {
	var checksum int64
	for _, tag := range tags {
		invalidations, err := r.queries.GetCacheTagInvalidations(ctx, tag)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}
			return 0, fmt.Errorf("failed to get cache tag %s: %w", tag, err)
		}
		checksum += invalidations
	}

	return checksum, nil
}
