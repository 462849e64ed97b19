package postgres

import (
	"context"
	"errors"

	"moviecatalog/movie"
	"moviecatalog/production"
	"moviecatalog/sortfield"

	"gorm.io/gorm"
)

// ProductionModel represents the database model for production companies
type ProductionModel struct {
	ProductionID int64  `gorm:"column:production_id;primaryKey"`
	Production   string `gorm:"column:production;not null"`
}

func (ProductionModel) TableName() string {
	return "production"
}

// ProductionRepository implements production.Repository interface
type ProductionRepository struct {
	db *gorm.DB
}

func NewProductionRepository(db *gorm.DB) *ProductionRepository {
	return &ProductionRepository{db: db}
}

func (r *ProductionRepository) AllProductions(ctx context.Context) ([]production.Production, error) {
	var models []ProductionModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainProductions(models), nil
}

func (r *ProductionRepository) AllProductionsSorted(ctx context.Context, field production.SortField) ([]production.Production, error) {
	if !production.SortFields.Contains(field) {
		return nil, sortfield.ErrInvalidSortField
	}

	var models []ProductionModel
	if err := r.db.WithContext(ctx).Order(orderByColumn(string(field))).Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainProductions(models), nil
}

func (r *ProductionRepository) GetByID(ctx context.Context, id int64) (production.Production, error) {
	var model ProductionModel

	err := r.db.WithContext(ctx).Where("production_id = ?", id).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return production.Production{}, production.ErrProductionNotFound
		}
		return production.Production{}, err
	}

	return toDomainProduction(model), nil
}

// MoviesByProduction lists movies whose production_id points at the company.
func (r *ProductionRepository) MoviesByProduction(ctx context.Context, id int64) ([]movie.Movie, error) {
	var models []MovieModel
	err := r.db.WithContext(ctx).Where("production_id = ?", id).Order("movie_id").Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainMovies(models), nil
}

func (r *ProductionRepository) CreateProduction(ctx context.Context, p production.Production) (int64, error) {
	model := ProductionModel{Production: p.Production}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return 0, err
	}
	return model.ProductionID, nil
}

func (r *ProductionRepository) UpdateProduction(ctx context.Context, p production.Production) error {
	result := r.db.WithContext(ctx).Model(&ProductionModel{}).Where("production_id = ?", p.ProductionID).Update("production", p.Production)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return production.ErrProductionNotFound
	}
	return nil
}

func toDomainProduction(model ProductionModel) production.Production {
	return production.Production{
		ProductionID: model.ProductionID,
		Production:   model.Production,
	}
}

func toDomainProductions(models []ProductionModel) []production.Production {
	productions := make([]production.Production, len(models))
	for i, model := range models {
		productions[i] = toDomainProduction(model)
	}
	return productions
}
