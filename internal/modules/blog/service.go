package blog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lb-platform/core/internal/models"
	"github.com/lb-platform/core/internal/pkg/imagestore"
	"github.com/lb-platform/core/internal/pkg/pagination"
	"github.com/lb-platform/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errUploadFailed = errors.New("image upload failed")

type Service struct {
	db     *gorm.DB
	images imagestore.Store
	log    *zap.Logger
}

// NewService creates the blog service. images may be nil when no object
// storage is configured; posts are then created without images.
func NewService(db *gorm.DB, images imagestore.Store, log *zap.Logger) *Service {
	return &Service{db: db, images: images, log: log}
}

// Create inserts a blog post. The image, if any, is uploaded before the row
// insert so an upload failure aborts the request without a half-written row.
func (s *Service) Create(ctx context.Context, dto *CreateBlogDTO, site models.Site, image *UploadedImage, adminID string) (*models.BlogModel, error) {
	slug, err := s.resolveSlug(ctx, site, Slugify(dto.Title), "")
	if err != nil {
		return nil, err
	}

	post := models.BlogModel{
		Site:        site,
		Title:       dto.Title,
		Slug:        slug,
		Excerpt:     dto.Excerpt,
		Description: dto.Description,
		Content:     dto.Content,
		Tags:        parseTags(dto.Tags),
		Author:      dto.Author,
		Status:      dto.Status,
		CreatedBy:   adminID,
	}
	if post.Status == "" {
		post.Status = models.BlogDraft
	}

	if image != nil {
		url, key, err := s.uploadImage(ctx, site, image)
		if err != nil {
			return nil, err
		}
		post.Image = url
		post.ImageKey = key
	}

	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns a page of posts for one site, newest first, optionally
// filtered by status.
func (s *Service) List(ctx context.Context, site models.Site, status string, q pagination.Query) ([]models.BlogModel, response.Pagination, error) {
	query := s.db.WithContext(ctx).Model(&models.BlogModel{}).
		Where("site = ?", site).
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var posts []models.BlogModel
	pag, err := pagination.Paginate(query, q, &posts)
	return posts, pag, err
}

// GetBySlug loads one post. Returns (nil, nil) when absent.
func (s *Service) GetBySlug(ctx context.Context, site models.Site, slug string) (*models.BlogModel, error) {
	var post models.BlogModel
	err := s.db.WithContext(ctx).
		Where("site = ? AND slug = ?", site, slug).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// IncrementViews bumps the view counter with a server-side expression, so
// concurrent readers cannot lose increments. The count is advisory, not exact:
// a failed read after a successful increment still counted the view.
func (s *Service) IncrementViews(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Model(&models.BlogModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// Update applies a partial update. A title change re-derives the slug and
// re-checks collisions against other rows of the same site. Image
// replacement uploads the new asset first and deletes the old one only after
// the row update commits, so a failed upload never strands the post without
// a retrievable image.
func (s *Service) Update(ctx context.Context, site models.Site, id string, dto *UpdateBlogDTO, image *UploadedImage) (*models.BlogModel, error) {
	post, err := s.getByID(ctx, site, id)
	if err != nil || post == nil {
		return post, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		slug, err := s.resolveSlug(ctx, site, Slugify(*dto.Title), post.ID)
		if err != nil {
			return nil, err
		}
		updates["title"] = *dto.Title
		updates["slug"] = slug
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = *dto.Excerpt
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.Tags != nil {
		updates["tags"] = parseTags(*dto.Tags)
	}
	if dto.Author != nil {
		updates["author"] = *dto.Author
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
	}

	oldImageKey := ""
	if image != nil {
		url, key, err := s.uploadImage(ctx, site, image)
		if err != nil {
			return nil, err
		}
		updates["image"] = url
		updates["blog_image_key"] = key
		oldImageKey = post.ImageKey
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(post).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if oldImageKey != "" {
		s.deleteImage(oldImageKey)
	}
	return post, nil
}

// Delete removes the post and best-effort deletes its external image asset.
func (s *Service) Delete(ctx context.Context, site models.Site, id string) (bool, error) {
	post, err := s.getByID(ctx, site, id)
	if err != nil || post == nil {
		return false, err
	}

	if post.ImageKey != "" {
		s.deleteImage(post.ImageKey)
	}

	if err := s.db.WithContext(ctx).Delete(&models.BlogModel{}, "id = ?", post.ID).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) getByID(ctx context.Context, site models.Site, id string) (*models.BlogModel, error) {
	var post models.BlogModel
	err := s.db.WithContext(ctx).
		Where("site = ? AND id = ?", site, id).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// resolveSlug suffixes the current unix-millis when the derived slug collides
// with another row of the same site. excludeID skips the row being updated.
func (s *Service) resolveSlug(ctx context.Context, site models.Site, slug, excludeID string) (string, error) {
	if slug == "" {
		slug = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	query := s.db.WithContext(ctx).Model(&models.BlogModel{}).
		Where("site = ? AND slug = ?", site, slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		slug = fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli())
	}
	return slug, nil
}

func (s *Service) uploadImage(ctx context.Context, site models.Site, image *UploadedImage) (string, string, error) {
	if s.images == nil {
		return "", "", fmt.Errorf("%w: image storage is not configured", errUploadFailed)
	}
	url, key, err := s.images.Upload(ctx, site.ImageFolder(), image.Name, image.Data, image.ContentType)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", errUploadFailed, err.Error())
	}
	return url, key, nil
}

// deleteImage is best-effort: asset deletion is not transactional with the
// row, a leaked object is only logged. Detached from the request context so a
// client disconnect after commit does not abort the cleanup.
func (s *Service) deleteImage(key string) {
	if s.images == nil {
		// Rows created while storage was configured can still carry a key.
		s.log.Warn("image storage not configured, leaving asset behind", zap.String("key", key))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.images.Delete(ctx, key); err != nil {
		s.log.Warn("image asset delete failed", zap.String("key", key), zap.Error(err))
	}
}
