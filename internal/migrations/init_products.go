package migrations

import "database/sql"

func initProductsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE products (
			id BIGSERIAL PRIMARY KEY,
			title VARCHAR(300) NOT NULL,
			slug VARCHAR(300) NOT NULL,
			price NUMERIC(12, 2) NOT NULL DEFAULT 0,
			category BIGINT NOT NULL,
			text TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		ALTER TABLE ONLY products
			ADD CONSTRAINT products_slug_key UNIQUE (slug);
	`)

	return err
}
