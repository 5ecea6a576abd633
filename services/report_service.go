package services

import (
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportService struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
}

func NewReportService(db *gorm.DB, or *repository.OrderRepository) *ReportService {
	return &ReportService{DB: db, OrderRepo: or}
}

// SalesReport lists delivered orders with their grand total.
func (s *ReportService) SalesReport() ([]entity.Order, decimal.Decimal, error) {
	sales, err := s.OrderRepo.ListDelivered()
	if err != nil {
		return nil, decimal.Zero, err
	}
	total := decimal.Zero
	for i := range sales {
		total = total.Add(sales[i].Total)
	}
	return sales, total, nil
}

type DashboardCounts struct {
	Customers  int64 `json:"customers"`
	Products   int64 `json:"products"`
	Categories int64 `json:"categories"`
	Orders     int64 `json:"orders"`
}

func (s *ReportService) Dashboard() (*DashboardCounts, error) {
	var out DashboardCounts
	if err := s.DB.Model(&entity.User{}).Where("role <> ?", entity.RoleAdmin).Count(&out.Customers).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Product{}).Count(&out.Products).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Category{}).Count(&out.Categories).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Order{}).Count(&out.Orders).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
