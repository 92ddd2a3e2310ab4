package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Badmus2018/gogdripsv1/internal/domain"
	"github.com/Badmus2018/gogdripsv1/internal/dto"
	"github.com/Badmus2018/gogdripsv1/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id int64, err error)
	GetProductByExternalID(ctx context.Context, externalID string) (data domain.Product, err error)
	GetProductReviews(ctx context.Context, productID int64) (data []domain.Review, err error)
	UpdateProduct(ctx context.Context, externalID string, fields domain.ProductUpdate) (err error)
	GetProducts(ctx context.Context, filter dto.Filter) (data []domain.Product, err error)
	CountProducts(ctx context.Context, filter dto.Filter) (count int64, err error)
}

type ProductRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewProductRepository(db *sqlx.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// image went through a NULL phase before the single-image migration, so the
// column is always read through COALESCE.
const productColumns = "id, external_id, name, description, brand, category, price, dmc, discount, stock, remaining_stock, in_stock, is_visible, COALESCE(image, '') AS image, created_at, updated_at, deleted_at"

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO products(external_id, name, description, brand, category, price, dmc, discount, stock, remaining_stock, in_stock, is_visible, image, created_at, updated_at) VALUES (:external_id, :name, :description, :brand, :category, :price, :dmc, :discount, :stock, :remaining_stock, :in_stock, :is_visible, :image, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return 0, errs.ErrInternalServer
	}

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) GetProductByExternalID(ctx context.Context, externalID string) (data domain.Product, err error) {
	row := r.db.QueryRowxContext(ctx, fmt.Sprintf("SELECT %s FROM products WHERE external_id = $1 AND deleted_at IS NULL", productColumns), externalID)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetProductByExternalID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) GetProductReviews(ctx context.Context, productID int64) (data []domain.Review, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT r.id, r.product_id, r.user_id, r.rating, r.comment, r.created_at, u.name AS user_name, u.email AS user_email, u.external_id AS external_id FROM reviews r JOIN users u ON u.id = r.user_id WHERE r.product_id = $1 ORDER BY r.created_at DESC", productID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductReviews").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, externalID string, fields domain.ProductUpdate) (err error) {
	sets := []string{"updated_at = :updated_at"}
	args := map[string]interface{}{
		"external_id": externalID,
		"updated_at":  time.Now().UnixMilli(),
	}

	if fields.InStock != nil {
		sets = append(sets, "in_stock = :in_stock")
		args["in_stock"] = *fields.InStock
	}

	if fields.IsVisible != nil {
		sets = append(sets, "is_visible = :is_visible")
		args["is_visible"] = *fields.IsVisible
	}

	if fields.Discount != nil {
		sets = append(sets, "discount = :discount")
		args["discount"] = *fields.Discount
	}

	if fields.Image != nil {
		sets = append(sets, "image = :image")
		args["image"] = *fields.Image
	}

	query := fmt.Sprintf("UPDATE products SET %s WHERE external_id = :external_id AND deleted_at IS NULL", strings.Join(sets, ", "))

	res, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return errs.ErrInternalServer
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return errs.ErrInternalServer
	}

	if affected == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context, filter dto.Filter) (data []domain.Product, err error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE deleted_at IS NULL", productColumns)

	args := make(map[string]interface{})

	if filter.Q != "" {
		query += " AND name ILIKE :q"
		args["q"] = "%" + filter.Q + "%"
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit != 0 && filter.Page != 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += " LIMIT :limit OFFSET :offset"
		args["limit"] = filter.Limit
		args["offset"] = offset
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrInternalServer
	}

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *ProductRepositoryImpl) CountProducts(ctx context.Context, filter dto.Filter) (count int64, err error) {
	query := "SELECT COUNT(id) FROM products WHERE deleted_at IS NULL"
	args := make(map[string]interface{})

	if filter.Q != "" {
		query += " AND name ILIKE :q"
		args["q"] = "%" + filter.Q + "%"
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, errs.ErrInternalServer
	}

	err = nstmt.GetContext(ctx, &count, args)
	if err != nil {
		log.Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}
