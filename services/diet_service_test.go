package services

import (
	"fmt"
	"testing"

	"github.com/DahlGitHub/tracker/config"
	"github.com/DahlGitHub/tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Diet{},
		&models.DietItem{},
	))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
	return db
}

func TestDeleteDietRequiresOwnership(t *testing.T) {
	testDB(t)
	svc := NewDietService()

	diet := models.Diet{
		UserID: 1,
		Name:   "Oatmeal Breakfast",
		Meal:   "breakfast",
		Items: []models.DietItem{
			{ProductID: 1, Product: "Oats", Gram: 50, Kcal: 194.5, Fat: 3.45, Carbs: 33.15, Proteins: 8.45},
		},
	}
	require.NoError(t, config.DB.Create(&diet).Error)

	require.Error(t, svc.DeleteDiet(2, diet.ID), "another user's id must not resolve the diet")

	var diets, items int64
	config.DB.Model(&models.Diet{}).Count(&diets)
	config.DB.Model(&models.DietItem{}).Count(&items)
	assert.EqualValues(t, 1, diets)
	assert.EqualValues(t, 1, items, "items survive a delete attempt by a non-owner")

	require.NoError(t, svc.DeleteDiet(1, diet.ID))
	config.DB.Model(&models.Diet{}).Count(&diets)
	config.DB.Model(&models.DietItem{}).Count(&items)
	assert.Zero(t, diets)
	assert.Zero(t, items)
}
