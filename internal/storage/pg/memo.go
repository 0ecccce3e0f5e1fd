package pg

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/memory-page/memoboard/internal/domain"
	internal_errors "github.com/memory-page/memoboard/internal/errors"
)

const foreignKeyViolation = "23503"

func (s *Storage) SaveMemo(data domain.MemoCreationData) (domain.MemoId, error) {
	id := newObjectID()
	_, err := s.db.Exec(
		"INSERT INTO memos(id, board_id, locate_idx, bg_num, author, content) VALUES($1, $2, $3, $4, $5, $6)",
		id, data.BoardId, data.LocateIdx, data.BgNum, data.Author, data.Content,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case uniqueViolation:
				return "", internal_errors.ErrDuplicatePosition
			case foreignKeyViolation:
				// board deleted between the service's existence check and here
				return "", internal_errors.ErrBoardNotFound
			}
		}
		return "", err
	}
	return id, nil
}

func (s *Storage) Memo(id domain.MemoId) (*domain.Memo, error) {
	var m domain.Memo
	err := s.db.QueryRow(
		"SELECT id, board_id, locate_idx, bg_num, author, content, created FROM memos WHERE id = $1", id,
	).Scan(&m.Id, &m.BoardId, &m.LocateIdx, &m.BgNum, &m.Author, &m.Content, &m.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.ErrMemoNotFound
		}
		return nil, err
	}
	return &m, nil
}
