package services

import (
	"errors"

	"github.com/DahlGitHub/tracker/config"
	"github.com/DahlGitHub/tracker/models"
)

type ProductInput struct {
	Title    string  `json:"title" binding:"required"`
	Icon     string  `json:"icon"`
	Kcal     float64 `json:"kcal"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Proteins float64 `json:"proteins"`
	Status   string  `json:"status"`
}

func normalizeStatus(s string) (string, error) {
	switch s {
	case "":
		return models.StatusActive, nil
	case models.StatusActive, models.StatusDisabled:
		return s, nil
	default:
		return "", errors.New("status must be 'active' or 'disabled'")
	}
}

func CreateProduct(userID uint, in ProductInput) (*models.Product, error) {
	status, err := normalizeStatus(in.Status)
	if err != nil {
		return nil, err
	}
	p := &models.Product{
		UserID:   userID,
		Title:    in.Title,
		Icon:     in.Icon,
		Kcal:     in.Kcal,
		Fat:      in.Fat,
		Carbs:    in.Carbs,
		Proteins: in.Proteins,
		Status:   status,
	}
	if err := config.DB.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func ListProducts(userID uint) ([]models.Product, error) {
	var products []models.Product
	err := config.DB.
		Where("user_id = ?", userID).
		Order("title ASC").
		Find(&products).Error
	return products, err
}

// ListActiveProducts is what the diet editor offers: disabled products stay
// out of new diets but remain referenced by old snapshots.
func ListActiveProducts(userID uint) ([]models.Product, error) {
	var products []models.Product
	err := config.DB.
		Where("user_id = ? AND status = ?", userID, models.StatusActive).
		Order("title ASC").
		Find(&products).Error
	return products, err
}

func UpdateProduct(userID, productID uint, in ProductInput) (*models.Product, error) {
	var p models.Product
	if err := config.DB.
		Where("id = ? AND user_id = ?", productID, userID).
		First(&p).Error; err != nil {
		return nil, err
	}

	status, err := normalizeStatus(in.Status)
	if err != nil {
		return nil, err
	}

	p.Title = in.Title
	p.Icon = in.Icon
	p.Kcal = in.Kcal
	p.Fat = in.Fat
	p.Carbs = in.Carbs
	p.Proteins = in.Proteins
	p.Status = status

	if err := config.DB.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func DeleteProduct(userID, productID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", productID, userID).
		Delete(&models.Product{}).Error
}
