package app

import (
	"errors"
	"time"

	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/pricing"
	"github.com/queenkoba/queenkoba/pkg/common"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// checkSuper ensures the default admin console account exists.
func (a *Application) checkSuper() {
	const superEmail = "admin@queenkoba.com"
	const defaultPassword = "admin123"

	var admin domain.User
	err := a.gormDB.Where("email = ?", superEmail).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, herr := common.HashPassword(defaultPassword)
		if herr != nil {
			zap.L().Error("failed to hash default admin password", zap.Error(herr))
			return
		}
		if err := a.gormDB.Create(&domain.User{
			ID:           common.UUIDint64(),
			Username:     "admin",
			Email:        superEmail,
			PasswordHash: hashed,
			Role:         domain.RoleAdmin,
			Status:       "active",
			Permissions:  []string{"*"},
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default admin account", zap.Error(err))
		} else {
			zap.L().Info("initialized default admin account", zap.String("email", superEmail))
		}
	case err != nil:
		zap.L().Error("failed to query admin account", zap.Error(err))
	}
}

// checkProducts seeds the catalog when the products table is empty.
func (a *Application) checkProducts() {
	var count int64
	a.gormDB.Model(&domain.Product{}).Count(&count)
	if count > 0 {
		return
	}

	seedProducts := []domain.Product{
		{Name: "Complex Clarifier Cream", Description: "A luxurious cream that gently clarifies and purifies complexion", BasePriceUSD: 29.99, Category: "Cream", InStock: true, ImageURL: "/images/cream.jpg"},
		{Name: "Complexion Clarifier Serum", Description: "Powerful serum with Vitamin C and Niacinamide", BasePriceUSD: 34.50, Category: "Serum", InStock: true, ImageURL: "/images/serum.jpg"},
		{Name: "Complexion Clarifying Mask", Description: "Detoxifying clay mask with Charcoal and Tea Tree Oil", BasePriceUSD: 25.75, Category: "Mask", InStock: true, ImageURL: "/images/mask.jpg"},
		{Name: "Complexion Renewal Scrub", Description: "Gentle exfoliating scrub with Jojoba beads", BasePriceUSD: 21.99, Category: "Scrub", InStock: true, ImageURL: "/images/scrub.jpg"},
		{Name: "Rich Gentle Foaming Lather", Description: "Creamy foaming cleanser", BasePriceUSD: 18.50, Category: "Cleanser", InStock: true, ImageURL: "/images/cleanser.jpg"},
		{Name: "Eternal Radiance Toner", Description: "Alcohol-free toner with Witch Hazel", BasePriceUSD: 23.25, Category: "Toner", InStock: true, ImageURL: "/images/toner.jpg"},
	}

	now := time.Now()
	for i := range seedProducts {
		seedProducts[i].Prices = pricing.Calculate(seedProducts[i].BasePriceUSD)
		seedProducts[i].CreatedAt = now
		seedProducts[i].UpdatedAt = now
		if err := a.gormDB.Create(&seedProducts[i]).Error; err != nil {
			zap.L().Error("failed to seed product", zap.String("name", seedProducts[i].Name), zap.Error(err))
		}
	}
	zap.L().Info("seeded catalog products", zap.Int("count", len(seedProducts)))
}

// checkSiteContent initializes the editable site content keys.
func (a *Application) checkSiteContent() {
	for key, value := range domain.DefaultSiteContent {
		var count int64
		a.gormDB.Model(&domain.SiteContent{}).Where("key = ?", key).Count(&count)
		if count == 0 {
			if err := a.gormDB.Create(&domain.SiteContent{
				Key:       key,
				Value:     value,
				UpdatedAt: time.Now(),
			}).Error; err != nil {
				zap.L().Error("failed to initialize site content", zap.String("key", key), zap.Error(err))
			}
		}
	}
}
