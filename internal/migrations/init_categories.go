package migrations

import "database/sql"

func initCategoriesTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE categories (
			id BIGSERIAL PRIMARY KEY,
			title VARCHAR(300) NOT NULL,
			slug VARCHAR(300) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		ALTER TABLE ONLY categories
			ADD CONSTRAINT categories_slug_key UNIQUE (slug);
	`)

	return err
}
