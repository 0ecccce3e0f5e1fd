package pg

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/memory-page/memoboard/internal/domain"
	internal_errors "github.com/memory-page/memoboard/internal/errors"
)

const uniqueViolation = "23505"

func (s *Storage) SaveBoard(data domain.BoardCreationData) (domain.BoardId, error) {
	id := newObjectID()
	_, err := s.db.Exec(
		"INSERT INTO boards(id, name, password_hash, bg_num, graduated_at) VALUES($1, $2, $3, $4, $5)",
		id, data.Name, data.PassHash, data.BgNum, data.GraduatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			// lost the race against a concurrent create with the same name
			return "", internal_errors.ErrNameDuplicate
		}
		return "", err
	}
	return id, nil
}

func (s *Storage) Board(id domain.BoardId) (*domain.Board, error) {
	return s.scanBoard(s.db.QueryRow(
		"SELECT id, name, password_hash, bg_num, graduated_at, created FROM boards WHERE id = $1", id))
}

func (s *Storage) BoardByName(name domain.BoardName) (*domain.Board, error) {
	return s.scanBoard(s.db.QueryRow(
		"SELECT id, name, password_hash, bg_num, graduated_at, created FROM boards WHERE name = $1", name))
}

func (s *Storage) scanBoard(row *sql.Row) (*domain.Board, error) {
	var b domain.Board
	err := row.Scan(&b.Id, &b.Name, &b.PassHash, &b.BgNum, &b.GraduatedAt, &b.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.ErrBoardNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (s *Storage) MemosByBoard(id domain.BoardId) ([]domain.MemoSummary, error) {
	rows, err := s.db.Query(
		"SELECT id, locate_idx, bg_num FROM memos WHERE board_id = $1 ORDER BY locate_idx", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memos := []domain.MemoSummary{}
	for rows.Next() {
		var m domain.MemoSummary
		if err := rows.Scan(&m.Id, &m.LocateIdx, &m.BgNum); err != nil {
			return nil, err
		}
		memos = append(memos, m)
	}
	return memos, rows.Err()
}
