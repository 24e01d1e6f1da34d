package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "inventory-management/internal/application"
	"inventory-management/internal/domain/entity"
	"inventory-management/pkg/response"
	"inventory-management/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
}

// userJSON renders a user without the password field.
func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

// GetProfile handles GET /api/profile for the authenticated user.
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.GetString("userID")
	u, err := h.Svc.Get(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.JSON(c, http.StatusOK, userJSON(u))
}

// List handles GET /api/users?page=&size=
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	res, err := h.Svc.List(c.Request.Context(), page, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list users failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	users := make([]gin.H, 0, len(res.Items))
	for _, u := range res.Items {
		users = append(users, userJSON(u))
	}
	response.JSON(c, http.StatusOK, gin.H{
		"users": users,
		"total": res.Total,
		"page":  res.Page,
		"size":  res.Size,
	})
}

// Get handles GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, userapp.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.JSON(c, http.StatusOK, userJSON(u))
}

// Update handles PUT /api/users/:id with a partial body; absent fields
// are left untouched.
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Update(c.Request.Context(), c.Param("id"), userapp.UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, userapp.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, userapp.ErrEmailTaken):
			response.Error(c, http.StatusConflict, "email already exists", nil)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).WithField("user_id", c.Param("id")).Error("update user failed")
			}
			response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		}
		return
	}
	response.JSON(c, http.StatusOK, userJSON(u))
}

// Delete handles DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	removed, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", c.Param("id")).Error("delete user failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	if !removed {
		response.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Message(c, http.StatusOK, "user deleted")
}

// Search handles GET /api/search/users?q=
func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchUsers(c.Request.Context(), q, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("user search failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"results": hits})
}
