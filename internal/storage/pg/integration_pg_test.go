package pg

import (
	"context"
	"log"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/memory-page/memoboard/internal/config"
	"github.com/memory-page/memoboard/internal/domain"
	internal_errors "github.com/memory-page/memoboard/internal/errors"
)

var storage *Storage

func TestMain(m *testing.M) {
	ctx := context.Background()
	var container *postgres.PostgresContainer
	storage, container = mustSetup(ctx)
	defer teardown(ctx, storage, container)

	exitCode := m.Run()
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) (*Storage, *postgres.PostgresContainer) {
	dbName := "memoboard"
	dbUser := "user"
	dbPassword := "password"
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			// The container restarts itself once after initdb, so wait for
			// the readiness log twice.
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	containerPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to obtain container port: %s", err)
	}
	port, err := strconv.Atoi(containerPort.Port())
	if err != nil {
		log.Fatalf("failed to obtain int container port: %s", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container host: %s", err)
	}

	cfg := config.New(
		config.Public{Pg: config.Pg{Host: host, Port: port, User: dbUser, Dbname: dbName}},
		config.Private{PgPassword: dbPassword},
	)
	// New runs Migrate, so the schema is in place before any test
	storage, err := New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	return storage, container
}

func teardown(ctx context.Context, storage *Storage, container *postgres.PostgresContainer) {
	if err := storage.Cleanup(); err != nil {
		log.Printf("failed to close storage connection: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

// uniqueName keeps tests independent under a shared database.
func uniqueName() string {
	return uuid.NewString()[:8]
}

func testBoardData() domain.BoardCreationData {
	return domain.BoardCreationData{
		Name:        uniqueName(),
		PassHash:    "$2a$10$fakehashfakehashfakehash",
		BgNum:       1,
		GraduatedAt: time.Date(2027, 2, 10, 0, 0, 0, 0, domain.KST),
	}
}

func mustSaveBoard(t *testing.T, data domain.BoardCreationData) domain.BoardId {
	t.Helper()
	id, err := storage.SaveBoard(data)
	require.NoError(t, err)
	return id
}

func TestSaveBoard(t *testing.T) {
	data := testBoardData()

	id := mustSaveBoard(t, data)
	assert.Len(t, id, 24)

	t.Run("same name again", func(t *testing.T) {
		_, err := storage.SaveBoard(data)
		assert.ErrorIs(t, err, internal_errors.ErrNameDuplicate)
	})

	t.Run("ids differ between saves", func(t *testing.T) {
		other := mustSaveBoard(t, testBoardData())
		assert.NotEqual(t, id, other)
	})
}

func TestBoardLookup(t *testing.T) {
	data := testBoardData()
	id := mustSaveBoard(t, data)

	t.Run("by id", func(t *testing.T) {
		board, err := storage.Board(id)
		require.NoError(t, err)
		assert.Equal(t, id, board.Id)
		assert.Equal(t, data.Name, board.Name)
		assert.Equal(t, data.PassHash, board.PassHash)
		assert.Equal(t, data.BgNum, board.BgNum)
		assert.True(t, board.GraduatedAt.Equal(data.GraduatedAt))
		assert.False(t, board.Created.IsZero())
	})

	t.Run("by name", func(t *testing.T) {
		board, err := storage.BoardByName(data.Name)
		require.NoError(t, err)
		assert.Equal(t, id, board.Id)
	})

	t.Run("absent id", func(t *testing.T) {
		_, err := storage.Board(newObjectID())
		assert.ErrorIs(t, err, internal_errors.ErrBoardNotFound)
	})

	t.Run("absent name", func(t *testing.T) {
		_, err := storage.BoardByName(uniqueName())
		assert.ErrorIs(t, err, internal_errors.ErrBoardNotFound)
	})
}

func TestSaveMemo(t *testing.T) {
	boardID := mustSaveBoard(t, testBoardData())
	data := domain.MemoCreationData{BoardId: boardID, LocateIdx: 4, BgNum: 2, Author: "a", Content: "hello"}

	id, err := storage.SaveMemo(data)
	require.NoError(t, err)
	assert.Len(t, id, 24)

	t.Run("roundtrip", func(t *testing.T) {
		memo, err := storage.Memo(id)
		require.NoError(t, err)
		assert.Equal(t, id, memo.Id)
		assert.Equal(t, boardID, memo.BoardId)
		assert.Equal(t, 4, memo.LocateIdx)
		assert.Equal(t, 2, memo.BgNum)
		assert.Equal(t, "a", memo.Author)
		assert.Equal(t, "hello", memo.Content)
	})

	t.Run("occupied position", func(t *testing.T) {
		_, err := storage.SaveMemo(data)
		assert.ErrorIs(t, err, internal_errors.ErrDuplicatePosition)
	})

	t.Run("same position on another board", func(t *testing.T) {
		otherBoard := mustSaveBoard(t, testBoardData())
		_, err := storage.SaveMemo(domain.MemoCreationData{BoardId: otherBoard, LocateIdx: 4, Author: "b", Content: "hi"})
		assert.NoError(t, err)
	})

	t.Run("absent board", func(t *testing.T) {
		_, err := storage.SaveMemo(domain.MemoCreationData{BoardId: newObjectID(), LocateIdx: 0, Author: "a", Content: "hi"})
		assert.ErrorIs(t, err, internal_errors.ErrBoardNotFound)
	})

	t.Run("absent memo", func(t *testing.T) {
		_, err := storage.Memo(newObjectID())
		assert.ErrorIs(t, err, internal_errors.ErrMemoNotFound)
	})
}

func TestMemosByBoard(t *testing.T) {
	boardID := mustSaveBoard(t, testBoardData())

	t.Run("empty board lists nothing", func(t *testing.T) {
		memos, err := storage.MemosByBoard(boardID)
		require.NoError(t, err)
		assert.Empty(t, memos)
	})

	// insert out of order, expect them back sorted by position
	for _, idx := range []int{7, 2, 5} {
		_, err := storage.SaveMemo(domain.MemoCreationData{BoardId: boardID, LocateIdx: idx, BgNum: idx, Author: "a", Content: "hello"})
		require.NoError(t, err)
	}

	memos, err := storage.MemosByBoard(boardID)
	require.NoError(t, err)
	require.Len(t, memos, 3)
	assert.Equal(t, 2, memos[0].LocateIdx)
	assert.Equal(t, 5, memos[1].LocateIdx)
	assert.Equal(t, 7, memos[2].LocateIdx)
	for _, m := range memos {
		assert.Len(t, m.Id, 24)
	}
}
