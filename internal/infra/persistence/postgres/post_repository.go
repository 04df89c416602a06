package postgres

import (
	"context"

	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/repository"
	"linkup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post entity to the database.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// FindByID retrieves a single post by its unique ID.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&postM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindAll retrieves all posts, newest first.
func (repo *postRepository) FindAll(ctx context.Context) ([]*entity.Post, error) {
	var postMs []model.PostModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&postMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return toPostDomainSlice(postMs), nil
}

// FindByAuthor retrieves all posts created by the given user, newest first.
func (repo *postRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	var postMs []model.PostModel
	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&postMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by author")
	}

	return toPostDomainSlice(postMs), nil
}

// Update modifies an existing post entity in the database.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Save(postM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update post")
	}

	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Delete removes a post by its unique ID.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// DeleteByAuthor removes every post owned by the given user. Deleting zero
// rows is fine here, an account with no posts is still deletable.
func (repo *postRepository) DeleteByAuthor(ctx context.Context, authorID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&model.PostModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete posts by author")
	}

	return nil
}

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:          data.ID,
		AuthorID:    data.AuthorID,
		Description: data.Description,
		Media:       data.Media,
		Tags:        data.Tags,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toPostDomainSlice(data []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(data))
	for i := range data {
		posts = append(posts, toPostDomain(&data[i]))
	}

	return posts
}

// fromPostDomain converts a domain Post entity to a GORM PostModel for persistence.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:          data.ID,
		AuthorID:    data.AuthorID,
		Description: data.Description,
		Media:       data.Media,
		Tags:        data.Tags,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
