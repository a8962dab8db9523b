package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom/encoding/geojson"

	"mission_mapper/internal/models"
	"mission_mapper/internal/store"
)

// MissionResponse is the wire shape of a mission.
// Geometry carries the GeoJSON Feature exactly as derived at creation.
type MissionResponse struct {
	MissionID uint             `json:"mission_id"`
	Name      string           `json:"name"`
	Path      []models.Point   `json:"path"`
	Home      models.Point     `json:"home"`
	Geometry  *geojson.Feature `json:"geometry"`
	CreatedAt time.Time        `json:"createdAt"`
}

func toMissionResponse(record *store.MissionRecord) MissionResponse {
	return MissionResponse{
		MissionID: record.MissionID,
		Name:      record.Name,
		Path:      record.Path,
		Home:      record.Home,
		Geometry:  record.Geometry,
		CreatedAt: record.CreatedAt,
	}
}

// MissionController translates the REST surface onto the store.
type MissionController struct {
	store *store.MissionStore
}

// NewMissionController creates a controller bound to a store instance.
func NewMissionController(s *store.MissionStore) *MissionController {
	return &MissionController{store: s}
}

// CreateMission handles POST /api/missions.
func (mc *MissionController) CreateMission(c *gin.Context) {
	var input struct {
		Name string         `json:"name" binding:"required"`
		Path []models.Point `json:"path" binding:"required,min=1,dive"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateMission: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mission name must not be blank"})
		return
	}

	record, err := mc.store.Create(input.Name, input.Path)
	if err != nil {
		logrus.WithError(err).Error("CreateMission: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create mission"})
		return
	}

	c.JSON(http.StatusCreated, toMissionResponse(record))
}

// ListMissions handles GET /api/missions.
func (mc *MissionController) ListMissions(c *gin.Context) {
	records, err := mc.store.GetAll()
	if err != nil {
		logrus.WithError(err).Error("ListMissions: fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch missions"})
		return
	}

	responses := make([]MissionResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toMissionResponse(&records[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// GetMission handles GET /api/missions/:id.
func (mc *MissionController) GetMission(c *gin.Context) {
	id, ok := missionID(c)
	if !ok {
		return
	}

	record, err := mc.store.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mission not found"})
			return
		}
		logrus.WithError(err).Error("GetMission: fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch mission"})
		return
	}

	c.JSON(http.StatusOK, toMissionResponse(record))
}

// RenameMission handles PUT /api/missions/:id. Only the name is mutable;
// there is no endpoint that updates a path.
func (mc *MissionController) RenameMission(c *gin.Context) {
	id, ok := missionID(c)
	if !ok {
		return
	}

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("RenameMission: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mission name must not be blank"})
		return
	}

	if err := mc.store.RenameByID(id, input.Name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mission not found"})
			return
		}
		logrus.WithError(err).Error("RenameMission: update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update mission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mission updated successfully"})
}

// DeleteMission handles DELETE /api/missions/:id.
func (mc *MissionController) DeleteMission(c *gin.Context) {
	id, ok := missionID(c)
	if !ok {
		return
	}

	if err := mc.store.DeleteByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mission not found"})
			return
		}
		logrus.WithError(err).Error("DeleteMission: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete mission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mission deleted successfully"})
}

func missionID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mission ID"})
		return 0, false
	}
	return uint(id), true
}
