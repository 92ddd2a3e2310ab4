package repository

import (
	"context"

	"github.com/Badmus2018/gogdripsv1/internal/domain"
	"github.com/Badmus2018/gogdripsv1/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type CategoryRepository interface {
	GetCategories(ctx context.Context) (data []domain.Category, err error)
}

type CategoryRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT id, label, icon, sort_order FROM categories ORDER BY sort_order, label")
	if err != nil {
		log.Error().Err(err).Str("component", "GetCategories").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}
