package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"inkwell/contexts/publishing/blog-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/blog-service/domain/errors"
	"inkwell/contexts/publishing/blog-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&postModel{})
}

func (r *Repository) CreatePost(ctx context.Context, post entities.Post) error {
	row := toPostModel(post)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetPost(ctx context.Context, postID string) (entities.Post, error) {
	var row postModel
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND deleted = FALSE", postID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Post{}, domainerrors.ErrPostNotFound
		}
		return entities.Post{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) SavePost(ctx context.Context, post entities.Post) error {
	row := toPostModel(post)
	return r.db.WithContext(ctx).Save(&row).Error
}

func (r *Repository) ListPosts(ctx context.Context, filter ports.PostListFilter) ([]entities.Post, int64, error) {
	tx := r.db.WithContext(ctx).Model(&postModel{}).Where("deleted = FALSE")
	if filter.AuthorID != "" {
		tx = tx.Where("created_by = ?", filter.AuthorID)
	}
	if filter.Tag != "" {
		needle, err := json.Marshal([]string{filter.Tag})
		if err != nil {
			return nil, 0, err
		}
		tx = tx.Where("tags @> ?", string(needle))
	}
	if filter.TitleQuery != "" {
		tx = tx.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.TitleQuery)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if offset < 0 {
		offset = 0
	}

	var rows []postModel
	if err := tx.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&rows).
		Error; err != nil {
		return nil, 0, err
	}

	items := make([]entities.Post, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, total, nil
}

// PostActive implements the post directory consumed by the comment
// service.
func (r *Repository) PostActive(ctx context.Context, postID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&postModel{}).
		Where("post_id = ? AND deleted = FALSE", postID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type postModel struct {
	PostID    string    `gorm:"column:post_id;primaryKey"`
	Title     string    `gorm:"column:title"`
	Content   string    `gorm:"column:content"`
	Tags      []string  `gorm:"column:tags;serializer:json;type:jsonb"`
	CreatedBy string    `gorm:"column:created_by;index"`
	UpdatedBy string    `gorm:"column:updated_by"`
	DeletedBy string    `gorm:"column:deleted_by"`
	Deleted   bool      `gorm:"column:deleted"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (postModel) TableName() string { return "posts" }

func (m postModel) toEntity() entities.Post {
	return entities.Post{
		PostID:    m.PostID,
		Title:     m.Title,
		Content:   m.Content,
		Tags:      m.Tags,
		CreatedBy: m.CreatedBy,
		UpdatedBy: m.UpdatedBy,
		DeletedBy: m.DeletedBy,
		Deleted:   m.Deleted,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toPostModel(post entities.Post) postModel {
	return postModel{
		PostID:    post.PostID,
		Title:     post.Title,
		Content:   post.Content,
		Tags:      post.Tags,
		CreatedBy: post.CreatedBy,
		UpdatedBy: post.UpdatedBy,
		DeletedBy: post.DeletedBy,
		Deleted:   post.Deleted,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}
