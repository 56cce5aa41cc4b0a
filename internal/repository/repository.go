package repository

import (
	"github.com/minio/minio-go/v7"
	"github.com/phuchoang/InteriorHub/internal/auth"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db         *gorm.DB
	logger     *zap.SugaredLogger
	jwtService auth.JWTInterface
	s3         *minio.Client
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB          *gorm.DB
	User        *UserRepository
	JWT         *JWTRepository
	Category    *CategoryRepository
	Design      *DesignRepository
	Blog        *BlogRepository
	Information *InformationRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger, jwtService auth.JWTInterface, s3 *minio.Client) *baseRepository {
	return &baseRepository{db: db, logger: logger, jwtService: jwtService, s3: s3}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger, jwtService auth.JWTInterface, s3 *minio.Client) *Repository {
	br := newBaseRepository(db, logger, jwtService, s3)
	_userRepo := &UserRepository{baseRepository: br}

	return &Repository{
		DB:          db,
		User:        _userRepo,
		JWT:         &JWTRepository{baseRepository: br, user: _userRepo},
		Category:    &CategoryRepository{baseRepository: br},
		Design:      &DesignRepository{baseRepository: br},
		Blog:        &BlogRepository{baseRepository: br},
		Information: &InformationRepository{baseRepository: br},
	}
}

func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Errorf("withTx Transaction error: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
