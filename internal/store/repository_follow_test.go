package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/models"
	"github.com/jackc/pgerrcode"
)

func newTestFollowRepo(t *testing.T) (*followRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &followRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func followColumns() []string {
	return []string{"follow_id", "user_id", "follower_id", "created_at", "updated_at"}
}

func TestCreateFollow_Success(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	now := time.Now()
	follow := models.Follow{
		ID:         "follow-1",
		UserID:     "user-2",
		FollowerID: "user-1",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	rows := sqlmock.
		NewRows(followColumns()).
		AddRow(follow.ID, follow.UserID, follow.FollowerID, now, now)

	mock.ExpectQuery("INSERT INTO follows").
		WithArgs(follow.ID, follow.UserID, follow.FollowerID, follow.CreatedAt, follow.UpdatedAt).
		WillReturnRows(rows)

	saved, err := repo.CreateFollow(context.Background(), follow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.FollowerID != follow.FollowerID {
		t.Errorf("expected follower %s, got %s", follow.FollowerID, saved.FollowerID)
	}
}

func TestCreateFollow_Duplicate(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO follows").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateFollow(context.Background(), models.Follow{ID: "follow-1"})
	if !errors.Is(err, ErrFollowAlreadyExists) {
		t.Fatalf("expected ErrFollowAlreadyExists, got %v", err)
	}
}

func TestFindFollow_NotFound(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM follows").
		WithArgs("user-1", "user-2").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindFollow(context.Background(), "user-1", "user-2")
	if !errors.Is(err, ErrFollowNotFound) {
		t.Fatalf("expected ErrFollowNotFound, got %v", err)
	}
}

func TestDeleteFollow_NotFound(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM follows").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteFollow(context.Background(), "missing")
	if !errors.Is(err, ErrFollowNotFound) {
		t.Fatalf("expected ErrFollowNotFound, got %v", err)
	}
}
