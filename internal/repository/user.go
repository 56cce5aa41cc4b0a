package repository

import (
	"context"
	"errors"
	"time"

	"github.com/phuchoang/InteriorHub/internal/constant"
	"github.com/phuchoang/InteriorHub/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
}

func (ur UserRepository) GetById(ctx context.Context, tx *gorm.DB, userId string) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %s \n", userId)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur UserRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.User, error) {
	ur.logger.Debugf("Get user by email: %s \n", email)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{Email: email}).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur UserRepository) List(ctx context.Context, tx *gorm.DB, search string, page, pageSize uint) ([]model.User, int64, error) {
	ur.logger.Debugf("List users with search: %q page: %d pageSize: %d \n", search, page, pageSize)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.User{})
	if search != "" {
		query = query.Where("email ILIKE ? OR full_name ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var totalUsers int64
	if err := query.Count(&totalUsers).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	if err := query.Order("created_at DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, totalUsers, nil
}

func (ur *UserRepository) Create(ctx context.Context, tx *gorm.DB, newUser *model.User) (*model.User, error) {
	ur.logger.Debugf("Create user with email: %s \n", newUser.Email)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Create(newUser).Error; err != nil {
		return nil, err
	}

	return newUser, nil
}

// CheckDupAndCreate creates the user inside a transaction after verifying
// the email is not already registered.
func (ur *UserRepository) CheckDupAndCreate(ctx context.Context, tx *gorm.DB, newUser *model.User) (*model.User, error) {
	ur.logger.Debugf("Check duplicate and create user with email: %s \n", newUser.Email)

	db := ur.getDB(tx)
	txErr := ur.withTx(db, func(tx2 *gorm.DB) error {
		_, err := ur.GetByEmail(ctx, tx2, newUser.Email)
		if err == nil {
			return errors.New("user with this email already exists")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		_, err = ur.Create(ctx, tx2, newUser)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	return newUser, nil
}

func (ur *UserRepository) Update(ctx context.Context, tx *gorm.DB, userId string, updates map[string]any) (*model.User, error) {
	ur.logger.Debugf("Update user %s with data: %v \n", userId, updates)

	// An update with no fields would execute no SQL and read as not found.
	if len(updates) == 0 {
		return ur.GetById(ctx, tx, userId)
	}

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return ur.GetById(ctx, tx, userId)
}

func (ur *UserRepository) UpdateLastLogin(ctx context.Context, tx *gorm.DB, userId string) error {
	ur.logger.Debugf("Update last login for user: %s \n", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).
		UpdateColumn("last_login", time.Now()).Error
}

func (ur *UserRepository) Delete(ctx context.Context, tx *gorm.DB, userId string) error {
	ur.logger.Debugf("Delete user: %s \n", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id = ?", userId).Delete(&model.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
