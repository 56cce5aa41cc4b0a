package repository

import (
	"context"

	"github.com/phuchoang/InteriorHub/internal/constant"
	"github.com/phuchoang/InteriorHub/internal/model"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	*baseRepository
}

func (cr CategoryRepository) Create(ctx context.Context, tx *gorm.DB, category *model.Category) (*model.Category, error) {
	cr.logger.Debugf("Create category with name: %s slug: %s \n", category.Name, category.Slug)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Category{}).Create(category).Error; err != nil {
		return nil, err
	}

	return category, nil
}

func (cr CategoryRepository) GetById(ctx context.Context, tx *gorm.DB, categoryId string) (*model.Category, error) {
	cr.logger.Debugf("Get category by id: %s \n", categoryId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var category *model.Category
	if err := db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", categoryId).First(&category).Error; err != nil {
		return nil, err
	}

	return category, nil
}

func (cr CategoryRepository) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*model.Category, error) {
	cr.logger.Debugf("Get category by slug: %s \n", slug)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var category *model.Category
	if err := db.WithContext(ctx).Model(&model.Category{}).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}

	return category, nil
}

func (cr CategoryRepository) List(ctx context.Context, tx *gorm.DB, isActive *bool, page, pageSize uint) ([]model.Category, int64, error) {
	cr.logger.Debugf("List categories page: %d pageSize: %d \n", page, pageSize)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Category{})
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}

	var totalCategories int64
	if err := query.Count(&totalCategories).Error; err != nil {
		return nil, 0, err
	}

	var categories []model.Category
	if err := query.Order("created_at DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	return categories, totalCategories, nil
}

func (cr *CategoryRepository) Update(ctx context.Context, tx *gorm.DB, categoryId string, updates map[string]any) (*model.Category, error) {
	cr.logger.Debugf("Update category %s with data: %v \n", categoryId, updates)

	// An update with no fields would execute no SQL and read as not found.
	if len(updates) == 0 {
		return cr.GetById(ctx, tx, categoryId)
	}

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", categoryId).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return cr.GetById(ctx, tx, categoryId)
}

// SoftDelete hides the category from public listings without removing it.
func (cr *CategoryRepository) SoftDelete(ctx context.Context, tx *gorm.DB, categoryId string) error {
	cr.logger.Debugf("Soft delete category: %s \n", categoryId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", categoryId).
		UpdateColumn("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (cr *CategoryRepository) Delete(ctx context.Context, tx *gorm.DB, categoryId string) error {
	cr.logger.Debugf("Delete category: %s \n", categoryId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id = ?", categoryId).Delete(&model.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
