package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"github.com/G-Mursalin/dent-care-server-site/config"
	"github.com/G-Mursalin/dent-care-server-site/models"
)

type ServiceHandler struct {
	supabase *supa.Client
	config   *config.Config
}

func NewServiceHandler(supabase *supa.Client, cfg *config.Config) *ServiceHandler {
	return &ServiceHandler{
		supabase: supabase,
		config:   cfg,
	}
}

// GetServices lists all services with only the name field projected. Full
// service documents (price, slots) are served through GET /available.
func (h *ServiceHandler) GetServices(c *gin.Context) {
	var names []models.ServiceName
	data, _, err := h.supabase.From("services").
		Select("name", "", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &names)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch services",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    names,
	})
}
