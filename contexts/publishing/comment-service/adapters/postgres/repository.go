package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"inkwell/contexts/publishing/comment-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/comment-service/domain/errors"
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
	return r.db.AutoMigrate(&commentModel{})
}

func (r *Repository) CreateComment(ctx context.Context, comment entities.Comment) error {
	row := toCommentModel(comment)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetComment(ctx context.Context, commentID string) (entities.Comment, error) {
	var row commentModel
	err := r.db.WithContext(ctx).
		Where("comment_id = ? AND deleted = FALSE", commentID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Comment{}, domainerrors.ErrCommentNotFound
		}
		return entities.Comment{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) SaveComment(ctx context.Context, comment entities.Comment) error {
	row := toCommentModel(comment)
	return r.db.WithContext(ctx).Save(&row).Error
}

func (r *Repository) ListComments(ctx context.Context, postID string) ([]entities.Comment, error) {
	var rows []commentModel
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND deleted = FALSE", postID).
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.Comment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type commentModel struct {
	CommentID string     `gorm:"column:comment_id;primaryKey"`
	PostID    string     `gorm:"column:post_id;index"`
	AuthorID  string     `gorm:"column:author_id;index"`
	Content   string     `gorm:"column:content"`
	Deleted   bool       `gorm:"column:deleted"`
	DeletedAt *time.Time `gorm:"column:deleted_at"`
	CreatedAt time.Time  `gorm:"column:created_at;index"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (commentModel) TableName() string { return "comments" }

func (m commentModel) toEntity() entities.Comment {
	return entities.Comment{
		CommentID: m.CommentID,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		Deleted:   m.Deleted,
		DeletedAt: m.DeletedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toCommentModel(comment entities.Comment) commentModel {
	return commentModel{
		CommentID: comment.CommentID,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		Content:   comment.Content,
		Deleted:   comment.Deleted,
		DeletedAt: comment.DeletedAt,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
