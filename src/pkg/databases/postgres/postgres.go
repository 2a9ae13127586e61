package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/viper"

	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
)

const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 5 * time.Minute
)

// DBInterface hides the concrete pool so repositories can be wired with a
// fake in tests. The pool is acquired once at process start and passed down
// explicitly, never looked up through a package global.
type DBInterface interface {
	GetDB() (*sqlx.DB, error)
}

type database struct {
	db *sqlx.DB
}

func (d *database) GetDB() (*sqlx.DB, error) {
	if d.db == nil {
		return nil, errors.New("database connection is not initialized")
	}
	return d.db, nil
}

// InitConnection opens the pool and verifies it with a ping.
func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		v.GetString("database.host"),
		v.GetInt("database.port"),
		v.GetString("database.user"),
		v.GetString("database.password"),
		v.GetString("database.name"),
		v.GetString("database.sslmode"),
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logger.Error("postgres", fmt.Sprintf("failed to connect: %v", err), "InitConnection", "")
		return nil, err
	}

	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)

	logger.Info("postgres", "database connection established", "InitConnection", "")
	return &database{db: db}, nil
}

// FromDB wraps an existing pool, used by tests.
func FromDB(db *sqlx.DB) DBInterface {
	return &database{db: db}
}
