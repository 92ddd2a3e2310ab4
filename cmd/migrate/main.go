package main

import (
	"github.com/Badmus2018/gogdripsv1/config"
	postgresDriver "github.com/Badmus2018/gogdripsv1/internal/infrastructure/database/postgres"
	"github.com/rs/zerolog/log"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		external_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'USER',
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL,
		deleted_at BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		external_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		brand TEXT NOT NULL,
		category TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		dmc DOUBLE PRECISION NOT NULL DEFAULT 0,
		discount DOUBLE PRECISION NOT NULL DEFAULT 0,
		stock BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0),
		remaining_stock BIGINT NOT NULL DEFAULT 0 CHECK (remaining_stock >= 0),
		in_stock BOOLEAN NOT NULL DEFAULT FALSE,
		is_visible BOOLEAN NOT NULL DEFAULT TRUE,
		image TEXT,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL,
		deleted_at BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL REFERENCES products(id),
		user_id BIGINT NOT NULL REFERENCES users(id),
		rating BIGINT NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_product_created ON reviews(product_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		label TEXT NOT NULL UNIQUE,
		icon TEXT NOT NULL,
		sort_order BIGINT NOT NULL DEFAULT 0
	)`,
}

// collapseLegacyImages folds the retired product_images rows into the single
// products.image column (oldest upload wins) and drops the legacy table.
// Safe to rerun: it only touches products whose image is still unset.
const collapseLegacyImages = `
	UPDATE products p
	SET image = legacy.image_url
	FROM (
		SELECT DISTINCT ON (product_id) product_id, image_url
		FROM product_images
		ORDER BY product_id, id
	) legacy
	WHERE p.id = legacy.product_id
	  AND (p.image IS NULL OR p.image = '')`

func main() {
	config := config.CreateNewConfig()
	db, err := postgresDriver.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}
	defer postgresDriver.CloseDBInstance()

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply schema")
		}
	}

	var hasLegacyTable bool
	err = db.Get(&hasLegacyTable, "SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'product_images')")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to inspect schema")
	}

	if hasLegacyTable {
		res, err := db.Exec(collapseLegacyImages)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to collapse legacy product images")
		}

		migrated, _ := res.RowsAffected()

		if _, err := db.Exec("DROP TABLE product_images"); err != nil {
			log.Fatal().Err(err).Msg("Failed to drop legacy product_images table")
		}

		log.Info().Int64("migrated", migrated).Msg("Collapsed legacy product images")
	}

	log.Info().Msg("Migration complete")
}
