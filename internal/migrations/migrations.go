package migrations

import "github.com/lopezator/migrator"

var Migrations = []any{
	&migrator.MigrationNoTx{
		Name: "Init categories table",
		Func: initCategoriesTable,
	},
	&migrator.MigrationNoTx{
		Name: "Init products table",
		Func: initProductsTable,
	},
}
