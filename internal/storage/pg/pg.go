package pg

import (
	"crypto/rand"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/memory-page/memoboard/internal/config"
	"github.com/memory-page/memoboard/internal/logger"
)

type Storage struct {
	db *sql.DB
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Public.Pg.Host, "dbname", cfg.Public.Pg.Dbname)
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	storage := &Storage{db}
	if err := storage.Migrate(); err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return storage, nil
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Public.Pg.Host, cfg.Public.Pg.Port, cfg.Public.Pg.User, cfg.PgPassword(), cfg.Public.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema. The unique indexes carry the uniqueness
// invariants; the services' pre-checks only decide error ordering.
func (s *Storage) Migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS boards (
		id CHAR(24) PRIMARY KEY,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		bg_num INTEGER NOT NULL,
		graduated_at TIMESTAMPTZ NOT NULL,
		created TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT boards_name_key UNIQUE (name)
	);
	CREATE TABLE IF NOT EXISTS memos (
		id CHAR(24) PRIMARY KEY,
		board_id CHAR(24) NOT NULL REFERENCES boards(id),
		locate_idx INTEGER NOT NULL,
		bg_num INTEGER NOT NULL,
		author TEXT NOT NULL,
		content TEXT NOT NULL,
		created TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT memos_board_position_key UNIQUE (board_id, locate_idx)
	);`)
	return err
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// newObjectID generates a 24-char hex identifier: 4 byte unix timestamp
// followed by 8 random bytes.
func newObjectID() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(b[4:]); err != nil {
		panic(fmt.Sprintf("failed to generate id: %v", err))
	}
	return hex.EncodeToString(b[:])
}
