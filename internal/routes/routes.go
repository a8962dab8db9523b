package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"mission_mapper/internal/controllers"
)

// SetupRouter assembles the engine with recovery and request logging and
// registers all resource routes.
func SetupRouter(missions *controllers.MissionController) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	MissionRoutes(r, missions)

	return r
}
