package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/DahlGitHub/tracker/config"
	"github.com/DahlGitHub/tracker/models"
	"github.com/DahlGitHub/tracker/stats"

	"gorm.io/gorm"
)

// FoodInput selects one diet per meal slot for a calendar day. A zero diet
// id means the slot was skipped and gets the None placeholder.
type FoodInput struct {
	Date      time.Time `json:"date" binding:"required"`
	Breakfast uint      `json:"breakfast"`
	Lunch     uint      `json:"lunch"`
	Dinner    uint      `json:"dinner"`
	Supper    uint      `json:"supper"`
}

func (in FoodInput) slotDietIDs() map[string]uint {
	return map[string]uint{
		"breakfast": in.Breakfast,
		"lunch":     in.Lunch,
		"dinner":    in.Dinner,
		"supper":    in.Supper,
	}
}

// BuildMealSnapshots copies the chosen diets into per-slot snapshots and
// computes the day totals from the copied items. The totals therefore equal
// the sum of the four snapshots by construction; later edits or deletions
// of the source diets cannot change them.
func BuildMealSnapshots(diets map[uint]models.Diet, slots map[string]uint) ([]models.MealSnapshot, stats.Nutrients, error) {
	snaps := make([]models.MealSnapshot, 0, len(models.MealSlots))
	meals := make([]stats.Meal, 0, len(models.MealSlots))

	for _, slot := range models.MealSlots {
		dietID := slots[slot]
		snap := models.MealSnapshot{Slot: slot, Name: "None"}
		var meal stats.Meal

		if dietID != 0 {
			d, ok := diets[dietID]
			if !ok {
				return nil, stats.Nutrients{}, fmt.Errorf("unknown diet %d for %s", dietID, slot)
			}
			snap.DietID = d.ID
			snap.Name = d.Name
			snap.Icon = d.Icon
			snap.Items = make([]models.MealSnapshotItem, 0, len(d.Items))
			for _, it := range d.Items {
				snap.Items = append(snap.Items, models.MealSnapshotItem{
					Product:  it.Product,
					Gram:     it.Gram,
					Kcal:     it.Kcal,
					Fat:      it.Fat,
					Carbs:    it.Carbs,
					Proteins: it.Proteins,
				})
				meal.Items = append(meal.Items, stats.Nutrients{
					Kcal: it.Kcal, Fat: it.Fat, Carbs: it.Carbs, Proteins: it.Proteins,
				})
			}
		}

		snaps = append(snaps, snap)
		meals = append(meals, meal)
	}

	return snaps, stats.Aggregate(meals).Rounded(), nil
}

type FoodService struct{}

func NewFoodService() *FoodService {
	return &FoodService{}
}

func (s *FoodService) loadDiets(userID uint, slots map[string]uint) (map[uint]models.Diet, error) {
	ids := make([]uint, 0, len(slots))
	for _, id := range slots {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	byID := make(map[uint]models.Diet, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var diets []models.Diet
	if err := config.DB.
		Preload("Items").
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&diets).Error; err != nil {
		return nil, err
	}
	for _, d := range diets {
		byID[d.ID] = d
	}
	return byID, nil
}

func (s *FoodService) LogFood(userID uint, in FoodInput) (*models.Food, error) {
	slots := in.slotDietIDs()
	diets, err := s.loadDiets(userID, slots)
	if err != nil {
		return nil, err
	}
	snaps, totals, err := BuildMealSnapshots(diets, slots)
	if err != nil {
		return nil, err
	}

	food := &models.Food{
		UserID:        userID,
		Date:          in.Date,
		Meals:         snaps,
		TotalKcal:     totals.Kcal,
		TotalCarbs:    totals.Carbs,
		TotalFat:      totals.Fat,
		TotalProteins: totals.Proteins,
	}
	if err := config.DB.Create(food).Error; err != nil {
		return nil, err
	}

	s.notifyLogged(userID, food)
	return food, nil
}

func (s *FoodService) UpdateFood(userID, foodID uint, in FoodInput) (*models.Food, error) {
	var food models.Food
	if err := config.DB.
		Where("id = ? AND user_id = ?", foodID, userID).
		First(&food).Error; err != nil {
		return nil, err
	}

	slots := in.slotDietIDs()
	diets, err := s.loadDiets(userID, slots)
	if err != nil {
		return nil, err
	}
	snaps, totals, err := BuildMealSnapshots(diets, slots)
	if err != nil {
		return nil, err
	}

	// replace the old snapshots wholesale, then store the recomputed totals
	var oldSnaps []models.MealSnapshot
	if err := config.DB.Where("food_id = ?", food.ID).Find(&oldSnaps).Error; err != nil {
		return nil, err
	}
	for _, snap := range oldSnaps {
		if err := config.DB.Where("meal_snapshot_id = ?", snap.ID).Delete(&models.MealSnapshotItem{}).Error; err != nil {
			return nil, err
		}
	}
	if err := config.DB.Where("food_id = ?", food.ID).Delete(&models.MealSnapshot{}).Error; err != nil {
		return nil, err
	}

	food.Date = in.Date
	food.Meals = snaps
	food.TotalKcal = totals.Kcal
	food.TotalCarbs = totals.Carbs
	food.TotalFat = totals.Fat
	food.TotalProteins = totals.Proteins
	if err := config.DB.Save(&food).Error; err != nil {
		return nil, err
	}

	updated, err := s.GetFood(userID, food.ID)
	if err != nil {
		return nil, err
	}
	s.notifyLogged(userID, updated)
	return updated, nil
}

func (s *FoodService) GetFood(userID, foodID uint) (*models.Food, error) {
	var food models.Food
	err := config.DB.
		Preload("Meals.Items").
		Where("id = ? AND user_id = ?", foodID, userID).
		First(&food).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) DeleteFood(userID, foodID uint) error {
	var food models.Food
	if err := config.DB.
		Where("id = ? AND user_id = ?", foodID, userID).
		First(&food).Error; err != nil {
		return err
	}
	var snaps []models.MealSnapshot
	if err := config.DB.Where("food_id = ?", food.ID).Find(&snaps).Error; err != nil {
		return err
	}
	for _, snap := range snaps {
		if err := config.DB.Where("meal_snapshot_id = ?", snap.ID).Delete(&models.MealSnapshotItem{}).Error; err != nil {
			return err
		}
	}
	if err := config.DB.Where("food_id = ?", food.ID).Delete(&models.MealSnapshot{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&food).Error
}

func (s *FoodService) ListFood(userID uint) ([]models.Food, error) {
	var foods []models.Food
	err := config.DB.
		Preload("Meals.Items").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&foods).Error
	return foods, err
}

func (s *FoodService) ListFoodByDateRange(userID uint, from, to time.Time) ([]models.Food, error) {
	var foods []models.Food
	err := config.DB.
		Preload("Meals.Items").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&foods).Error
	return foods, err
}

func (s *FoodService) ListRecentFood(userID uint, limit int) ([]models.Food, error) {
	if limit <= 0 {
		limit = 7
	}
	var foods []models.Food
	err := config.DB.
		Preload("Meals").
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&foods).Error
	return foods, err
}

// notifyLogged pushes the realtime event and raises a calorie alert when the
// day's total passed the user's goal.
func (s *FoodService) notifyLogged(userID uint, food *models.Food) {
	PublishEvent(userID, EventFoodLogged, food)

	var goal models.Goal
	if err := config.DB.Where("user_id = ?", userID).First(&goal).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return
		}
	}
	if goal.Calories > 0 && food.TotalKcal > goal.Calories {
		EmitAlert(userID, "warning", fmt.Sprintf(
			"Logged %.0f kcal on %s, over your %.0f kcal goal.",
			food.TotalKcal, food.Date.Format("Jan 2"), goal.Calories))
	}
}
