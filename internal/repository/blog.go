package repository

import (
	"context"

	"github.com/phuchoang/InteriorHub/internal/constant"
	"github.com/phuchoang/InteriorHub/internal/model"
	"gorm.io/gorm"
)

type BlogRepository struct {
	*baseRepository
}

func (br BlogRepository) Create(ctx context.Context, tx *gorm.DB, blog *model.Blog) (*model.Blog, error) {
	br.logger.Debugf("Create blog with title: %s slug: %s \n", blog.Title, blog.Slug)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Blog{}).Create(blog).Error; err != nil {
		return nil, err
	}

	return blog, nil
}

func (br BlogRepository) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*model.Blog, error) {
	br.logger.Debugf("Get blog by slug: %s \n", slug)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var blog *model.Blog
	if err := db.WithContext(ctx).Model(&model.Blog{}).Where("slug = ?", slug).First(&blog).Error; err != nil {
		return nil, err
	}

	return blog, nil
}

// IncrementViews bumps the view counter without touching updated_at.
func (br BlogRepository) IncrementViews(ctx context.Context, tx *gorm.DB, slug string) error {
	br.logger.Debugf("Increment views for blog slug: %s \n", slug)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Blog{}).Where("slug = ?", slug).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (br BlogRepository) List(ctx context.Context, tx *gorm.DB, status constant.BlogStatus, search string, page, pageSize uint) ([]model.Blog, int64, error) {
	br.logger.Debugf("List blogs with status: %q search: %q page: %d pageSize: %d \n", status, search, page, pageSize)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Blog{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}

	var totalBlogs int64
	if err := query.Count(&totalBlogs).Error; err != nil {
		return nil, 0, err
	}

	var blogs []model.Blog
	if err := query.Order("created_at DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&blogs).Error; err != nil {
		return nil, 0, err
	}

	return blogs, totalBlogs, nil
}

// TopViewed returns active blogs ordered by view count.
func (br BlogRepository) TopViewed(ctx context.Context, tx *gorm.DB, limit uint) ([]model.Blog, error) {
	br.logger.Debugf("Get top viewed blogs with limit: %d \n", limit)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var blogs []model.Blog
	if err := db.WithContext(ctx).Model(&model.Blog{}).
		Where("status = ?", constant.BlogStatusActive).
		Order("views DESC").Limit(int(limit)).
		Find(&blogs).Error; err != nil {
		return nil, err
	}

	return blogs, nil
}

func (br *BlogRepository) UpdateBySlug(ctx context.Context, tx *gorm.DB, slug string, updates map[string]any) (*model.Blog, error) {
	br.logger.Debugf("Update blog %s with data: %v \n", slug, updates)

	// An update with no fields would execute no SQL and read as not found.
	if len(updates) == 0 {
		return br.GetBySlug(ctx, tx, slug)
	}

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Model(&model.Blog{}).Where("slug = ?", slug).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	// The slug itself may have been replaced by the update.
	newSlug := slug
	if s, ok := updates["slug"].(string); ok && s != "" {
		newSlug = s
	}

	return br.GetBySlug(ctx, tx, newSlug)
}

// SoftDeleteBySlug flips the blog status to inactive.
func (br *BlogRepository) SoftDeleteBySlug(ctx context.Context, tx *gorm.DB, slug string) error {
	br.logger.Debugf("Soft delete blog: %s \n", slug)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Model(&model.Blog{}).Where("slug = ?", slug).
		UpdateColumn("status", constant.BlogStatusInactive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (br *BlogRepository) DeleteBySlug(ctx context.Context, tx *gorm.DB, slug string) error {
	br.logger.Debugf("Delete blog: %s \n", slug)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("slug = ?", slug).Delete(&model.Blog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
