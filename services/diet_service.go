package services

import (
	"errors"
	"fmt"

	"github.com/DahlGitHub/tracker/config"
	"github.com/DahlGitHub/tracker/models"
	"github.com/DahlGitHub/tracker/stats"
)

type DietItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Gram      float64 `json:"gram" binding:"required"`
}

type DietInput struct {
	Name  string            `json:"name" binding:"required"`
	Icon  string            `json:"icon"`
	Meal  string            `json:"meal" binding:"required"`
	Items []DietItemRequest `json:"items" binding:"required,dive"`
}

func validMealSlot(slot string) bool {
	for _, s := range models.MealSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// BuildDietItems computes the stored contribution of each requested product
// quantity: per-100g value × gram/100, rounded to 2 decimals. Contributions
// are always derived here, never taken from the request.
func BuildDietItems(products map[uint]models.Product, reqs []DietItemRequest) ([]models.DietItem, error) {
	items := make([]models.DietItem, 0, len(reqs))
	for _, r := range reqs {
		p, ok := products[r.ProductID]
		if !ok {
			return nil, fmt.Errorf("unknown product %d", r.ProductID)
		}
		if r.Gram <= 0 {
			return nil, fmt.Errorf("gram quantity for %q must be positive", p.Title)
		}
		per100 := stats.Nutrients{Kcal: p.Kcal, Fat: p.Fat, Carbs: p.Carbs, Proteins: p.Proteins}
		c := stats.Contribution(per100, r.Gram)
		items = append(items, models.DietItem{
			ProductID: p.ID,
			Product:   p.Title,
			Gram:      r.Gram,
			Kcal:      c.Kcal,
			Fat:       c.Fat,
			Carbs:     c.Carbs,
			Proteins:  c.Proteins,
		})
	}
	return items, nil
}

func (s *DietService) loadProducts(userID uint, reqs []DietItemRequest) (map[uint]models.Product, error) {
	ids := make([]uint, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.ProductID)
	}
	var products []models.Product
	if err := config.DB.
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

type DietService struct{}

func NewDietService() *DietService { return &DietService{} }

func (s *DietService) AddDiet(userID uint, in DietInput) (*models.Diet, error) {
	if !validMealSlot(in.Meal) {
		return nil, errors.New("meal must be breakfast, lunch, dinner or supper")
	}

	products, err := s.loadProducts(userID, in.Items)
	if err != nil {
		return nil, err
	}
	items, err := BuildDietItems(products, in.Items)
	if err != nil {
		return nil, err
	}

	diet := &models.Diet{
		UserID: userID,
		Name:   in.Name,
		Icon:   in.Icon,
		Meal:   in.Meal,
		Items:  items,
	}
	if err := config.DB.Create(diet).Error; err != nil {
		return nil, err
	}
	return diet, nil
}

func (s *DietService) ListDiets(userID uint) ([]models.Diet, error) {
	var diets []models.Diet
	err := config.DB.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&diets).Error
	return diets, err
}

func (s *DietService) ListDietsByMeal(userID uint, meal string) ([]models.Diet, error) {
	var diets []models.Diet
	err := config.DB.
		Preload("Items").
		Where("user_id = ? AND meal = ?", userID, meal).
		Order("name ASC").
		Find(&diets).Error
	return diets, err
}

func (s *DietService) GetDiet(userID, dietID uint) (*models.Diet, error) {
	var diet models.Diet
	err := config.DB.
		Preload("Items").
		Where("id = ? AND user_id = ?", dietID, userID).
		First(&diet).Error
	if err != nil {
		return nil, err
	}
	return &diet, nil
}

func (s *DietService) UpdateDiet(userID, dietID uint, in DietInput) (*models.Diet, error) {
	if !validMealSlot(in.Meal) {
		return nil, errors.New("meal must be breakfast, lunch, dinner or supper")
	}

	var diet models.Diet
	if err := config.DB.
		Where("id = ? AND user_id = ?", dietID, userID).
		First(&diet).Error; err != nil {
		return nil, err
	}

	products, err := s.loadProducts(userID, in.Items)
	if err != nil {
		return nil, err
	}
	items, err := BuildDietItems(products, in.Items)
	if err != nil {
		return nil, err
	}

	diet.Name = in.Name
	diet.Icon = in.Icon
	diet.Meal = in.Meal
	if err := config.DB.Save(&diet).Error; err != nil {
		return nil, err
	}

	// replace items wholesale
	if err := config.DB.
		Where("diet_id = ?", diet.ID).
		Delete(&models.DietItem{}).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].DietID = diet.ID
		if err := config.DB.Create(&items[i]).Error; err != nil {
			return nil, err
		}
	}

	var updated models.Diet
	if err := config.DB.
		Preload("Items").
		First(&updated, diet.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDiet removes a diet definition. Logged Food records keep their
// snapshots; history never changes.
func (s *DietService) DeleteDiet(userID, dietID uint) error {
	var diet models.Diet
	if err := config.DB.
		Where("id = ? AND user_id = ?", dietID, userID).
		First(&diet).Error; err != nil {
		return err
	}
	if err := config.DB.
		Where("diet_id = ?", diet.ID).
		Delete(&models.DietItem{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&diet).Error
}
