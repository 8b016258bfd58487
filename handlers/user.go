package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	supa "github.com/supabase-community/supabase-go"

	"github.com/G-Mursalin/dent-care-server-site/config"
	"github.com/G-Mursalin/dent-care-server-site/middleware"
	"github.com/G-Mursalin/dent-care-server-site/models"
)

type UserHandler struct {
	supabase *supa.Client
	config   *config.Config
}

func NewUserHandler(supabase *supa.Client, cfg *config.Config) *UserHandler {
	return &UserHandler{
		supabase: supabase,
		config:   cfg,
	}
}

// UpsertUser is the login endpoint: it writes the user keyed by email
// (update-if-exists-else-insert) and returns a fresh token. Calling it
// twice updates the same record, it never duplicates.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var req models.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	userData := map[string]interface{}{
		"email": email,
		"name":  req.Name,
	}

	var users []models.User
	data, _, err := h.supabase.From("users").
		Insert(userData, true, "email", "", "").
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &users)
	}

	if err != nil || len(users) == 0 {
		fmt.Printf("[UpsertUser] Upsert error: %v\n", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save user",
		})
		return
	}

	token, err := middleware.NewToken(email, h.config.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User saved successfully",
		Data: models.LoginResponse{
			Token: token,
			User:  &users[0],
		},
	})
}

// MakeAdmin elevates the target user's role. Gated by AdminMiddleware.
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	email := c.Param("email")

	var updated []models.User
	data, _, err := h.supabase.From("users").
		Update(map[string]interface{}{"role": "admin"}, "", "").
		Eq("email", email).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &updated)
	}

	if err != nil || len(updated) == 0 {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User is now an admin",
		Data:    updated[0],
	})
}

// CheckAdmin reports whether the given email belongs to an admin. A
// missing user is a deliberate 404, never a dereference of nothing.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	var users []models.User
	data, _, err := h.supabase.From("users").
		Select("email, role", "", false).
		Eq("email", email).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &users)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch user",
		})
		return
	}

	if len(users) == 0 {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    models.AdminStatus{Admin: users[0].IsAdmin()},
	})
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	var users []models.User
	data, _, err := h.supabase.From("users").
		Select("*", "", false).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &users)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch users",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    users,
	})
}

// DeleteUser removes a user record. Gated by AdminMiddleware.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	email := c.Param("email")

	if _, _, err := h.supabase.From("users").
		Delete("", "").
		Eq("email", email).
		Execute(); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to delete user",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User deleted successfully",
	})
}
