package database

import (
	"context"
	"fmt"

	"food-delivery-db/models"

	"gorm.io/gorm"
)

type Column struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
	Primary  bool   `json:"primary_key,omitempty"`
	Unique   bool   `json:"unique,omitempty"`
}

type Table struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
	Rows    int64    `json:"rows"`
}

// Describe reads the live schema back from the database, one entry per model table.
func Describe(ctx context.Context, db *gorm.DB) ([]Table, error) {
	db = db.WithContext(ctx)
	names := models.TableNames()
	tables := make([]Table, 0, len(names))
	for i, model := range models.All() {
		types, err := db.Migrator().ColumnTypes(model)
		if err != nil {
			return nil, fmt.Errorf("read columns of %s: %w", names[i], err)
		}
		t := Table{Name: names[i]}
		for _, ct := range types {
			col := Column{Name: ct.Name(), Type: ct.DatabaseTypeName()}
			col.Nullable, _ = ct.Nullable()
			col.Primary, _ = ct.PrimaryKey()
			col.Unique, _ = ct.Unique()
			t.Columns = append(t.Columns, col)
		}
		if err := db.Model(model).Count(&t.Rows).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", names[i], err)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// Counts returns row counts keyed by table name.
func Counts(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	db = db.WithContext(ctx)
	names := models.TableNames()
	counts := make(map[string]int64, len(names))
	for i, model := range models.All() {
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", names[i], err)
		}
		counts[names[i]] = n
	}
	return counts, nil
}
