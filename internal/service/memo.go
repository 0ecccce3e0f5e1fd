package service

import (
	"github.com/memory-page/memoboard/internal/domain"
	internal_errors "github.com/memory-page/memoboard/internal/errors"
	"github.com/memory-page/memoboard/internal/sanitize"
	"github.com/memory-page/memoboard/internal/validation"
)

// to mock service in tests
type MemoService interface {
	Create(boardID domain.BoardId, locateIdx, bgNum int, author, content string) (domain.MemoId, error)
	Get(memoID domain.MemoId, viewerID domain.BoardId) (*domain.Memo, error)
	Validate(author, content string) error
}

type Memo struct {
	storage   MemoStorage
	boards    GraduationChecker
	validator MemoValidator
}

type MemoStorage interface {
	SaveMemo(data domain.MemoCreationData) (domain.MemoId, error)
	Memo(id domain.MemoId) (*domain.Memo, error)
	Board(id domain.BoardId) (*domain.Board, error)
}

// GraduationChecker is the slice of the board service the memo service
// needs: the time gate on memo content.
type GraduationChecker interface {
	CheckGraduation(boardID domain.BoardId) error
}

type MemoValidator interface {
	Author(author string) error
	Content(content string) error
}

func NewMemo(storage MemoStorage, boards GraduationChecker, validator MemoValidator) *Memo {
	return &Memo{storage: storage, boards: boards, validator: validator}
}

// Create posts a memo onto an existing board. The (board, position) pair is
// unique; the storage insert is atomic, so two concurrent posts to the same
// spot cannot both land.
func (m *Memo) Create(boardID domain.BoardId, locateIdx, bgNum int, author, content string) (domain.MemoId, error) {
	if validation.Identifier(boardID) != nil {
		return "", internal_errors.ErrBoardNotFound
	}
	if _, err := m.storage.Board(boardID); err != nil {
		return "", err
	}

	author = sanitize.PlainText(author)
	content = sanitize.PlainText(content)
	if err := m.validator.Author(author); err != nil {
		return "", err
	}
	if err := m.validator.Content(content); err != nil {
		return "", err
	}

	return m.storage.SaveMemo(domain.MemoCreationData{
		BoardId:   boardID,
		LocateIdx: locateIdx,
		BgNum:     bgNum,
		Author:    author,
		Content:   content,
	})
}

// Get returns a memo's text to the owner of its board. viewerID is the
// board claim of an already verified token; the memo must belong to that
// board and the board must have graduated.
func (m *Memo) Get(memoID domain.MemoId, viewerID domain.BoardId) (*domain.Memo, error) {
	if validation.Identifier(memoID) != nil {
		return nil, internal_errors.ErrMemoNotFound
	}

	memo, err := m.storage.Memo(memoID)
	if err != nil {
		return nil, err
	}
	if memo.BoardId != viewerID {
		return nil, internal_errors.ErrMemoBoardMismatch
	}
	if err := m.boards.CheckGraduation(memo.BoardId); err != nil {
		return nil, err
	}
	return memo, nil
}

// Validate is the persistence-free preflight for the memo form. It applies
// the same sanitize-then-check sequence as Create.
func (m *Memo) Validate(author, content string) error {
	author = sanitize.PlainText(author)
	content = sanitize.PlainText(content)
	if err := m.validator.Author(author); err != nil {
		return err
	}
	return m.validator.Content(content)
}
