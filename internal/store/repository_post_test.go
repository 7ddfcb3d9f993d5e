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
)

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &postRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func postColumns() []string {
	return []string{"post_id", "title", "body", "tag_list", "author_id", "created_at", "updated_at"}
}

func TestCreatePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	post := models.Post{
		ID:        "post-1",
		Title:     "First",
		Body:      "Hello world",
		TagList:   []string{"go", "blog"},
		AuthorID:  "user-1",
		CreatedAt: now,
		UpdatedAt: now,
	}

	rows := sqlmock.
		NewRows(postColumns()).
		AddRow(post.ID, post.Title, post.Body, []byte(`["go","blog"]`), post.AuthorID, now, now)

	mock.ExpectQuery("INSERT INTO posts").
		WillReturnRows(rows)

	saved, err := repo.CreatePost(ctx, post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != post.ID {
		t.Errorf("expected ID=%s, got %s", post.ID, saved.ID)
	}
	if len(saved.TagList) != 2 || saved.TagList[0] != "go" {
		t.Errorf("expected tag list decoded from JSONB, got %v", saved.TagList)
	}
}

func TestFindPostByID_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM posts").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindPostByID(context.Background(), "missing")
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestUpdatePost_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE posts").
		WillReturnError(sql.ErrNoRows)

	title := "New title"
	_, err := repo.UpdatePost(context.Background(), "missing", models.PostPatch{Title: &title})
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestListPosts_Pagination(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(postColumns()).
		AddRow("post-2", "Second", "Newest", []byte(`[]`), "user-1", now, now).
		AddRow("post-1", "First", "Older", []byte(`[]`), "user-1", now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM posts ORDER BY created_at DESC").
		WillReturnRows(rows)

	posts, err := repo.ListPosts(context.Background(), models.ListQuery{Limit: 20, Offset: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != "post-2" {
		t.Errorf("expected newest post first, got %s", posts[0].ID)
	}
}

func TestDeletePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM posts").
		WithArgs("post-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeletePost(context.Background(), "post-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeletePost_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM posts").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeletePost(context.Background(), "missing")
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
