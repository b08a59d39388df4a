package repository

import (
	"trueinvest_backend/internal/model"

	"gorm.io/gorm"
)

type SaleRepository struct {
	DB *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{DB: db}
}

func (r *SaleRepository) Create(sale *model.Sale) error {
	return r.DB.Create(sale).Error
}

func (r *SaleRepository) Update(sale *model.Sale) error {
	return r.DB.Save(sale).Error
}

func (r *SaleRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Sale{}, id).Error
}

func (r *SaleRepository) FindByID(id uint) (*model.Sale, error) {
	var sale model.Sale
	err := r.DB.First(&sale, id).Error
	return &sale, err
}

func (r *SaleRepository) FindByUser(userID uint) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.DB.Where("user_id = ?", userID).Order("sold_at DESC").Find(&sales).Error
	return sales, err
}

func (r *SaleRepository) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.DB.Order("sold_at DESC").Find(&sales).Error
	return sales, err
}
