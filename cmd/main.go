package main

import (
	"log"

	"github.com/DahlGitHub/tracker/config"
	"github.com/DahlGitHub/tracker/routes"
	"github.com/DahlGitHub/tracker/services"
	"github.com/DahlGitHub/tracker/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	services.InitRealtime(hub)

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}
	services.InitAlertDeps(config.DB, push)

	dietSvc := services.NewDietService()
	foodSvc := services.NewFoodService()
	dashSvc := services.NewDashboardService(config.DB)

	r := routes.SetupRouter(dietSvc, foodSvc, dashSvc, hub, push)
	r.Run(":8080")
}
