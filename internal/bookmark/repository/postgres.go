package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookmarkd/bookmarkd/internal/bookmark"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresRepo stores bookmarks in a relational table via GORM.
type PostgresRepo struct {
	db *gorm.DB
}

// NewPostgresRepo opens the database from a DSN and migrates the bookmarks
// table. Caller owns the connection lifetime through ClosePostgres.
func NewPostgresRepo(dsn string) (*PostgresRepo, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	if err := db.AutoMigrate(&bookmark.Bookmark{}); err != nil {
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}
	return &PostgresRepo{db: db}, nil
}

// NewPostgresRepoWithDB wraps an existing GORM handle (used by tests).
func NewPostgresRepoWithDB(db *gorm.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) GetAll(ctx context.Context) ([]bookmark.Bookmark, error) {
	var out []bookmark.Bookmark
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (*bookmark.Bookmark, error) {
	var b bookmark.Bookmark
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PostgresRepo) Insert(ctx context.Context, b *bookmark.Bookmark) (string, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return "", err
	}
	return b.ID, nil
}

func (r *PostgresRepo) PatchByID(ctx context.Context, id string, next bookmark.Bookmark) error {
	// map form so zero values (rating 0, cleared description) still land
	res := r.db.WithContext(ctx).Model(&bookmark.Bookmark{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       next.Title,
		"url":         next.URL,
		"description": next.Description,
		"rating":      next.Rating,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&bookmark.Bookmark{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClosePostgres releases the underlying connection pool.
func (r *PostgresRepo) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
