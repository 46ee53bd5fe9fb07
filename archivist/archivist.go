package archivist

import (
	"github.com/samgozman/coin-thread/archivist/models"
	"github.com/samgozman/coin-thread/pkg/errlvl"
	"gorm.io/gorm"
)

// Entities is a struct that contains all the entities that Archivist is responsible for.
type Entities struct {
	Announcements *models.AnnouncementsDB
}

// Archivist is responsible for storing and retrieving announcements from the database.
type Archivist struct {
	db       *gorm.DB
	Entities *Entities
}

// NewArchivist opens (or creates) the SQLite database at the given path
// and ensures the schema exists. Safe to call on every start: migration
// is a no-op when the schema is already present.
func NewArchivist(path string) (*Archivist, error) {
	conn, err := connectToSQLite(path)
	if err != nil {
		return nil, newError(errlvl.FATAL, errFailedConnection, err)
	}

	if err := conn.AutoMigrate(&models.Announcement{}); err != nil {
		return nil, newError(errlvl.FATAL, errFailedMigration, err)
	}

	return &Archivist{
		db: conn,
		Entities: &Entities{
			Announcements: models.NewAnnouncementsDB(conn),
		},
	}, nil
}
