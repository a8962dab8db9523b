package routes

import (
	"github.com/gin-gonic/gin"

	"mission_mapper/internal/controllers"
)

func MissionRoutes(r *gin.Engine, mc *controllers.MissionController) {
	missions := r.Group("/api/missions")
	{
		missions.POST("", mc.CreateMission)
		missions.GET("", mc.ListMissions)
		missions.GET("/:id", mc.GetMission)
		missions.PUT("/:id", mc.RenameMission)
		missions.DELETE("/:id", mc.DeleteMission)
	}
}
