package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"github.com/G-Mursalin/dent-care-server-site/config"
	"github.com/G-Mursalin/dent-care-server-site/models"
)

// DoctorHandler covers the admin-only doctor management endpoints.
type DoctorHandler struct {
	supabase *supa.Client
	config   *config.Config
}

func NewDoctorHandler(supabase *supa.Client, cfg *config.Config) *DoctorHandler {
	return &DoctorHandler{
		supabase: supabase,
		config:   cfg,
	}
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req models.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	doctorData := map[string]interface{}{
		"name":           req.Name,
		"email":          req.Email,
		"specialization": req.Specialization,
	}
	if req.ImageURL != nil {
		doctorData["image_url"] = *req.ImageURL
	}

	var created []models.Doctor
	data, _, err := h.supabase.From("doctors").
		Insert(doctorData, false, "", "", "").
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &created)
	}

	if err != nil || len(created) == 0 {
		fmt.Printf("[CreateDoctor] Insert error: %v\n", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to create doctor",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Doctor added successfully",
		Data:    created[0],
	})
}

func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	var doctors []models.Doctor
	data, _, err := h.supabase.From("doctors").
		Select("*", "", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &doctors)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch doctors",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    doctors,
	})
}

func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	email := c.Param("email")

	if _, _, err := h.supabase.From("doctors").
		Delete("", "").
		Eq("email", email).
		Execute(); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to delete doctor",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Doctor deleted successfully",
	})
}
