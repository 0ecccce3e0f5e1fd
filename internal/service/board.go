package service

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/memory-page/memoboard/internal/domain"
	internal_errors "github.com/memory-page/memoboard/internal/errors"
	"github.com/memory-page/memoboard/internal/logger"
	"github.com/memory-page/memoboard/internal/validation"
)

const graduationDateLayout = "2006-01-02"

// to mock service in tests
type BoardService interface {
	Create(name, password string, bgNum int, graduatedAt string) (domain.BoardId, error)
	Login(name, password string) (domain.BoardId, string, error)
	Get(boardID, viewerID domain.BoardId) (*domain.BoardView, error)
	ValidateCredentials(name, password string) error
	CheckGraduation(boardID domain.BoardId) error
}

type Board struct {
	storage   BoardStorage
	tokens    TokenIssuer
	names     NameValidator
	passwords PasswordValidator
}

type BoardStorage interface {
	SaveBoard(data domain.BoardCreationData) (domain.BoardId, error)
	Board(id domain.BoardId) (*domain.Board, error)
	BoardByName(name domain.BoardName) (*domain.Board, error)
	MemosByBoard(id domain.BoardId) ([]domain.MemoSummary, error)
}

type TokenIssuer interface {
	NewToken(boardID domain.BoardId) (string, error)
}

type NameValidator interface {
	Validate(name string) error
}

type PasswordValidator interface {
	Validate(password string) error
}

func NewBoard(storage BoardStorage, tokens TokenIssuer, names NameValidator, passwords PasswordValidator) *Board {
	return &Board{storage: storage, tokens: tokens, names: names, passwords: passwords}
}

// Create validates name and password, parses the graduation date, hashes the
// password and persists the board. Persistence is the last step, so nothing
// needs rolling back on a validation failure.
func (b *Board) Create(name, password string, bgNum int, graduatedAt string) (domain.BoardId, error) {
	if err := b.validateName(name); err != nil {
		return "", err
	}
	if err := b.passwords.Validate(password); err != nil {
		return "", err
	}
	gradAt, err := parseGraduationDate(graduatedAt)
	if err != nil {
		return "", err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", err
	}

	return b.storage.SaveBoard(domain.BoardCreationData{
		Name:        name,
		PassHash:    string(passHash),
		BgNum:       bgNum,
		GraduatedAt: gradAt,
	})
}

// Login re-checks the password format, then authenticates. Unknown name and
// wrong password return the same error so board names cannot be enumerated.
func (b *Board) Login(name, password string) (domain.BoardId, string, error) {
	if err := b.passwords.Validate(password); err != nil {
		return "", "", err
	}

	board, err := b.storage.BoardByName(name)
	if err != nil {
		if errors.Is(err, internal_errors.ErrBoardNotFound) {
			return "", "", internal_errors.ErrInvalidCredentials
		}
		return "", "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(board.PassHash), []byte(password)) != nil {
		return "", "", internal_errors.ErrInvalidCredentials
	}

	token, err := b.tokens.NewToken(board.Id)
	if err != nil {
		logger.Log.Error("failed to create token", "board_id", board.Id, "error", err)
		return "", "", err
	}
	return board.Id, token, nil
}

// Get returns the board summary view. viewerID is the board claim of an
// optional token; it only marks the view as self, the board itself is
// readable by anyone holding the id. Memo text stays behind GetMemo.
func (b *Board) Get(boardID, viewerID domain.BoardId) (*domain.BoardView, error) {
	if validation.Identifier(boardID) != nil {
		// malformed ids read the same as absent boards
		return nil, internal_errors.ErrBoardNotFound
	}

	board, err := b.storage.Board(boardID)
	if err != nil {
		return nil, err
	}
	memos, err := b.storage.MemosByBoard(boardID)
	if err != nil {
		return nil, err
	}

	return &domain.BoardView{
		IsSelf: viewerID != "" && viewerID == boardID,
		Name:   board.Name,
		BgNum:  board.BgNum,
		Memos:  memos,
	}, nil
}

// ValidateCredentials is the dry-run used by the creation form: full name
// policy (duplicates included) plus password policy, no side effects.
func (b *Board) ValidateCredentials(name, password string) error {
	if err := b.validateName(name); err != nil {
		return err
	}
	return b.passwords.Validate(password)
}

// CheckGraduation fails until the board's graduation instant has passed,
// compared in KST civil time.
func (b *Board) CheckGraduation(boardID domain.BoardId) error {
	if validation.Identifier(boardID) != nil {
		return internal_errors.ErrBoardNotFound
	}
	board, err := b.storage.Board(boardID)
	if err != nil {
		return err
	}
	if time.Now().In(domain.KST).Before(board.GraduatedAt) {
		return internal_errors.ErrNotGraduated
	}
	return nil
}

// validateName runs the uniqueness rule first: the duplicate error must win
// over every other name rule. The unique index on boards.name backs this
// pre-check up under concurrent creates.
func (b *Board) validateName(name string) error {
	_, err := b.storage.BoardByName(name)
	if err == nil {
		return internal_errors.ErrNameDuplicate
	}
	if !errors.Is(err, internal_errors.ErrBoardNotFound) {
		return err
	}
	return b.names.Validate(name)
}

func parseGraduationDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(graduationDateLayout, s, domain.KST)
	if err != nil {
		return time.Time{}, internal_errors.ErrBadGraduationDate
	}
	return t, nil
}
