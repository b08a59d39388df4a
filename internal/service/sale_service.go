package service

import (
	"errors"
	"strings"
	"time"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/repository"
	"trueinvest_backend/internal/util"

	"gorm.io/gorm"
)

// SaleService records closed deals. PointsEarned on a sale is informative
// only; the ledger is moved by goal completions, not by sales directly.

type SaleService struct {
	SaleRepo *repository.SaleRepository
}

func NewSaleService(saleRepo *repository.SaleRepository) *SaleService {
	return &SaleService{SaleRepo: saleRepo}
}

type SaleRequest struct {
	PropertyName string     `json:"propertyName" binding:"required"`
	ClientName   string     `json:"clientName"`
	Value        float64    `json:"value" binding:"required"`
	Commission   float64    `json:"commission"`
	PointsEarned int        `json:"pointsEarned"`
	SoldAt       *time.Time `json:"soldAt"`
}

func (s *SaleService) validate(req *SaleRequest) error {
	req.PropertyName = strings.TrimSpace(req.PropertyName)
	if req.PropertyName == "" {
		return errors.New("propertyName must not be empty")
	}
	if req.Value <= 0 {
		return errors.New("value must be positive")
	}
	if req.Commission < 0 {
		return errors.New("commission must not be negative")
	}
	if req.PointsEarned < 0 {
		return errors.New("pointsEarned must not be negative")
	}
	return nil
}

func (s *SaleService) CreateSale(userID uint, req *SaleRequest) (*model.Sale, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	soldAt := time.Now()
	if req.SoldAt != nil {
		soldAt = *req.SoldAt
	}
	sale := &model.Sale{
		UserID:       userID,
		PropertyName: req.PropertyName,
		ClientName:   req.ClientName,
		Value:        req.Value,
		Commission:   req.Commission,
		PointsEarned: req.PointsEarned,
		Status:       model.SalePending,
		SoldAt:       soldAt,
	}
	if err := s.SaleRepo.Create(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// UpdateSale lets the owner fix a record; admins may edit any. Status
// changes go through UpdateStatus instead.
func (s *SaleService) UpdateSale(saleID, callerID uint, isAdmin bool, req *SaleRequest) (*model.Sale, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	sale, err := s.SaleRepo.FindByID(saleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSaleNotFound
	}
	if err != nil {
		return nil, err
	}
	if sale.UserID != callerID && !isAdmin {
		return nil, util.ErrPermissionDenied
	}

	sale.PropertyName = req.PropertyName
	sale.ClientName = req.ClientName
	sale.Value = req.Value
	sale.Commission = req.Commission
	sale.PointsEarned = req.PointsEarned
	if req.SoldAt != nil {
		sale.SoldAt = *req.SoldAt
	}
	if err := s.SaleRepo.Update(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *SaleService) DeleteSale(saleID, callerID uint, isAdmin bool) error {
	sale, err := s.SaleRepo.FindByID(saleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrSaleNotFound
	}
	if err != nil {
		return err
	}
	if sale.UserID != callerID && !isAdmin {
		return util.ErrPermissionDenied
	}
	return s.SaleRepo.Delete(saleID)
}

// UpdateStatus is the admin confirmation/cancellation path.
func (s *SaleService) UpdateStatus(saleID uint, status model.SaleStatus) (*model.Sale, error) {
	switch status {
	case model.SalePending, model.SaleConfirmed, model.SaleCancelled:
	default:
		return nil, errors.New("invalid sale status")
	}
	sale, err := s.SaleRepo.FindByID(saleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSaleNotFound
	}
	if err != nil {
		return nil, err
	}
	sale.Status = status
	if err := s.SaleRepo.Update(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *SaleService) ListForUser(userID uint) ([]model.Sale, error) {
	return s.SaleRepo.FindByUser(userID)
}

func (s *SaleService) ListAll() ([]model.Sale, error) {
	return s.SaleRepo.FindAll()
}
