package repository

import (
	"context"

	"github.com/phuchoang/InteriorHub/internal/constant"
	"github.com/phuchoang/InteriorHub/internal/model"
	"gorm.io/gorm"
)

type DesignRepository struct {
	*baseRepository
}

// DesignFilter narrows the public design listing. Zero values are ignored.
type DesignFilter struct {
	CategoryID  string
	ProjectType string
	Year        int
	Search      string
	Highlight   *bool
}

func (dr DesignRepository) Create(ctx context.Context, tx *gorm.DB, design *model.Design) (*model.Design, error) {
	dr.logger.Debugf("Create design with projectName: %s \n", design.ProjectName)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Design{}).Create(design).Error; err != nil {
		return nil, err
	}

	return dr.GetById(ctx, tx, design.ID)
}

func (dr DesignRepository) GetById(ctx context.Context, tx *gorm.DB, designId string) (*model.Design, error) {
	dr.logger.Debugf("Get design by id: %s \n", designId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var design *model.Design
	if err := db.WithContext(ctx).Model(&model.Design{}).Preload("Category").
		Where("id = ?", designId).First(&design).Error; err != nil {
		return nil, err
	}

	return design, nil
}

func (dr DesignRepository) List(ctx context.Context, tx *gorm.DB, filter DesignFilter, page, pageSize uint) ([]model.Design, int64, error) {
	dr.logger.Debugf("List designs with filter: %+v page: %d pageSize: %d \n", filter, page, pageSize)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Design{})

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.ProjectType != "" {
		query = query.Where("project_type = ?", filter.ProjectType)
	}
	if filter.Year != 0 {
		query = query.Where("implementation_year = ?", filter.Year)
	}
	if filter.Highlight != nil {
		query = query.Where("is_highlight = ?", *filter.Highlight)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("project_name ILIKE ? OR investor ILIKE ? OR address ILIKE ?", like, like, like)
	}

	var totalDesigns int64
	if err := query.Count(&totalDesigns).Error; err != nil {
		return nil, 0, err
	}

	var designs []model.Design
	if err := query.Preload("Category").Order("created_at DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&designs).Error; err != nil {
		return nil, 0, err
	}

	return designs, totalDesigns, nil
}

func (dr *DesignRepository) Update(ctx context.Context, tx *gorm.DB, designId string, updates map[string]any) (*model.Design, error) {
	dr.logger.Debugf("Update design %s with data: %v \n", designId, updates)

	// An update with no fields would execute no SQL and read as not found.
	if len(updates) == 0 {
		return dr.GetById(ctx, tx, designId)
	}

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Model(&model.Design{}).Where("id = ?", designId).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return dr.GetById(ctx, tx, designId)
}

func (dr *DesignRepository) Delete(ctx context.Context, tx *gorm.DB, designId string) error {
	dr.logger.Debugf("Delete design: %s \n", designId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id = ?", designId).Delete(&model.Design{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
