package repository

import (
	"context"

	"github.com/phuchoang/InteriorHub/internal/constant"
	"github.com/phuchoang/InteriorHub/internal/model"
	"gorm.io/gorm"
)

type InformationRepository struct {
	*baseRepository
}

func (ir InformationRepository) Create(ctx context.Context, tx *gorm.DB, information *model.Information) (*model.Information, error) {
	ir.logger.Debugf("Create information with fullName: %s \n", information.FullName)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Information{}).Create(information).Error; err != nil {
		return nil, err
	}

	return information, nil
}

func (ir InformationRepository) GetById(ctx context.Context, tx *gorm.DB, informationId string) (*model.Information, error) {
	ir.logger.Debugf("Get information by id: %s \n", informationId)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var information *model.Information
	if err := db.WithContext(ctx).Model(&model.Information{}).Where("id = ?", informationId).First(&information).Error; err != nil {
		return nil, err
	}

	return information, nil
}

func (ir InformationRepository) List(ctx context.Context, tx *gorm.DB, status constant.InformationStatus, page, pageSize uint) ([]model.Information, int64, error) {
	ir.logger.Debugf("List information with status: %q page: %d pageSize: %d \n", status, page, pageSize)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Information{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var totalInformation int64
	if err := query.Count(&totalInformation).Error; err != nil {
		return nil, 0, err
	}

	var information []model.Information
	if err := query.Order("created_at DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&information).Error; err != nil {
		return nil, 0, err
	}

	return information, totalInformation, nil
}

func (ir *InformationRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, informationId string, status constant.InformationStatus) (*model.Information, error) {
	ir.logger.Debugf("Update information %s status to: %s \n", informationId, status)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Model(&model.Information{}).Where("id = ?", informationId).
		UpdateColumn("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return ir.GetById(ctx, tx, informationId)
}
