package main

import (
	"log"

	"github.com/MILANBHADARKA/TiffinCart-sub000/config"
	"github.com/MILANBHADARKA/TiffinCart-sub000/controllers"
	"github.com/MILANBHADARKA/TiffinCart-sub000/routes"
	"github.com/MILANBHADARKA/TiffinCart-sub000/services"
	"github.com/MILANBHADARKA/TiffinCart-sub000/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	controllers.SetRealtimeHub(hub)

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push disabled: %v", err)
		push = nil
	}
	services.InitOrderEventDeps(hub, push)

	r := routes.SetupRouter()
	r.Run(":8080")
}
