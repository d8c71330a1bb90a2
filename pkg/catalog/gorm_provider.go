package catalog

import (
	"context"

	"gorm.io/gorm"
)

// Product is the products table as maintained by the back-office import job.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	ProductName string `gorm:"column:product_name"`
	StockCode   string `gorm:"column:stock_code"`
}

func (Product) TableName() string {
	return "products"
}

// GormProvider reads the catalog from Postgres. Every call hits the database;
// the catalog is small (a few thousand rows) and the chat service tolerates
// a failed read as "no catalog".
type GormProvider struct {
	db *gorm.DB
}

func NewGormProvider(db *gorm.DB) *GormProvider {
	return &GormProvider{db: db}
}

func (p *GormProvider) GetCatalog(ctx context.Context) ([]Row, error) {
	var products []Product
	if err := p.db.WithContext(ctx).
		Where("product_name <> '' AND stock_code <> ''").
		Order("id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(products))
	for _, pr := range products {
		rows = append(rows, Row{ProductName: pr.ProductName, StockCode: pr.StockCode})
	}
	return rows, nil
}

// Migrate creates the products table when the service owns the schema
// (dev/test environments).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Product{})
}
