package archivist

import (
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func connectToSQLite(path string) (*gorm.DB, error) {
	bf := backoff.NewExponentialBackOff()
	bf.InitialInterval = 1 * time.Second
	bf.MaxInterval = 5 * time.Second
	bf.MaxElapsedTime = 30 * time.Second

	db, err := backoff.RetryWithData[*gorm.DB](func() (*gorm.DB, error) {
		conn, err := gorm.Open(sqlite.Open(path))
		if err != nil {
			log.Println("SQLite not yet ready...")
			return nil, err
		}
		return conn, nil
	}, bf)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer. One connection keeps concurrent
	// insert attempts queued instead of failing with "database is locked".
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
