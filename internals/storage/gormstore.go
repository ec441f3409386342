package storage

import (
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Document is one collection persisted as a whole, one row per collection.
type Document struct {
	Collection string `gorm:"primaryKey;column:collection"`
	Data       []byte `gorm:"column:data;type:jsonb"`
}

func (Document) TableName() string {
	return "documents"
}

// GormStore keeps collections in a postgres documents table. Same
// read-modify-write contract as the file store, only the medium differs.
type GormStore struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormStore(dsn string, log *logrus.Logger) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db, log: log}, nil
}

func (gs *GormStore) Read(collection string, v interface{}) error {
	var doc Document
	err := gs.db.First(&doc, "collection = ?", collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return gs.Write(collection, v)
	}
	if err != nil {
		gs.log.WithError(err).WithField("collection", collection).Warn("could not read collection, using defaults")
		return nil
	}

	if err := json.Unmarshal(doc.Data, v); err != nil {
		gs.log.WithError(err).WithField("collection", collection).Warn("corrupt collection document, using defaults")
		return nil
	}
	return nil
}

func (gs *GormStore) Write(collection string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := gs.db.Save(&Document{Collection: collection, Data: data}).Error; err != nil {
		gs.log.WithError(err).WithField("collection", collection).Error("could not write collection")
		return err
	}
	return nil
}
