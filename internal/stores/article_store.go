package stores

import (
	"context"
	"fmt"
	"time"

	"article-analytics/internal/models"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=article_store.go -destination=./mocks/article_store_mock.go -package=mocks
type ArticleStore interface {
	// GetMetaByIDs resolves article display metadata with one batched lookup.
	// Ids without a matching row are simply absent from the result; callers
	// keep their entries and leave title/slug nil. An empty id slice returns
	// an empty result without touching the database.
	GetMetaByIDs(ctx context.Context, ids []string) ([]*models.ArticleMeta, error)
}

type articleStore struct {
	db           *sqlx.DB
	queryTimeout time.Duration
}

func NewArticleStore(db *sqlx.DB, queryTimeout time.Duration) ArticleStore {
	return &articleStore{db: db, queryTimeout: queryTimeout}
}

func (s *articleStore) GetMetaByIDs(ctx context.Context, ids []string) ([]*models.ArticleMeta, error) {
	if len(ids) == 0 {
		return []*models.ArticleMeta{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	query, args, err := sqlx.In(`SELECT id, title, slug FROM articles WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build article meta query: %w", err)
	}
	query = s.db.Rebind(query)

	var articleMetas []*models.ArticleMeta
	if err := s.db.SelectContext(ctx, &articleMetas, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get article meta: %w", err)
	}

	return articleMetas, nil
}
