package services

import (
	"log"
	"sync"

	"gorm.io/gorm"
)

const metadataColumn = "metadata"

// metadataColumns remembers, per table, whether the upload metadata column
// exists. Schemas created outside this service lack it and inserts must skip it.
type metadataColumns struct {
	tables sync.Map // table name -> bool
}

func (m *metadataColumns) present(db *gorm.DB, row interface{}) bool {
	if m == nil {
		return db.Migrator().HasColumn(row, metadataColumn)
	}
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(row); err != nil {
		return db.Migrator().HasColumn(row, metadataColumn)
	}
	if has, ok := m.tables.Load(stmt.Schema.Table); ok {
		return has.(bool)
	}

	has := db.Migrator().HasColumn(row, metadataColumn)
	if !has {
		log.Printf("Table %s has no %s column; upload metadata will not be stored", stmt.Schema.Table, metadataColumn)
	}
	m.tables.Store(stmt.Schema.Table, has)
	return has
}

// create inserts row, leaving out the metadata column when the table has none.
func (m *metadataColumns) create(db *gorm.DB, row interface{}) error {
	if !m.present(db, row) {
		db = db.Omit(metadataColumn)
	}
	return db.Create(row).Error
}
