package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fuzumoe/gopaginate/internal/pagination"
	"github.com/fuzumoe/gopaginate/internal/service"
)

// PageObserver is told about every page served.
type PageObserver interface {
	ObservePage(resource string, page pagination.Page)
}

type nopObserver struct{}

func (nopObserver) ObservePage(string, pagination.Page) {}

// UserHandler serves the paginated users collection and its page
// descriptors.
type UserHandler struct {
	userService service.UserService
	observer    PageObserver
}

// NewUserHandler creates a UserHandler. A nil observer disables page metrics.
func NewUserHandler(svc service.UserService, observer PageObserver) *UserHandler {
	if observer == nil {
		observer = nopObserver{}
	}
	return &UserHandler{userService: svc, observer: observer}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(v), true
}

// @Summary List users (paginated)
// @Tags    users
// @Produce json
// @Param   page[number] query string false "page number, falls back to 1"
// @Param   page[size]   query string false "page size, falls back to the configured size"
// @Success 200 {object} service.UserPage
// @Failure 500 {object} map[string]string "error"
// @Router  /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	params := pagination.FromQuery(c.Request.URL.Query())

	page, err := h.userService.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.observer.ObservePage(page.Resource, page.Page)
	c.JSON(http.StatusOK, page)
}

// @Summary Get one user
// @Tags    users
// @Produce json
// @Param   id path int true "User ID"
// @Success 200 {object} model.UserDTO
// @Failure 404 {object} map[string]string "error"
// @Router  /api/v1/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	dto, err := h.userService.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto)
}

// @Summary Current page descriptor
// @Tags    pages
// @Produce json
// @Param   page[number] query string false "page number"
// @Param   page[size]   query string false "page size"
// @Success 200 {object} pagination.Page
// @Router  /api/v1/users/pages/current [get]
func (h *UserHandler) CurrentPage(c *gin.Context) {
	params := pagination.FromQuery(c.Request.URL.Query())
	c.JSON(http.StatusOK, h.userService.CurrentPage(params))
}

// @Summary Next page descriptor
// @Description Without total the next page is always returned. With total,
// @Description next is null once the current page reaches the end.
// @Tags    pages
// @Produce json
// @Param   page[number] query string false "page number"
// @Param   page[size]   query string false "page size"
// @Param   total        query int    false "total item count"
// @Success 200 {object} map[string]interface{} "{next, has_next}"
// @Failure 400 {object} map[string]string "error"
// @Router  /api/v1/users/pages/next [get]
func (h *UserHandler) NextPage(c *gin.Context) {
	params := pagination.FromQuery(c.Request.URL.Query())

	var total *int64
	if raw, ok := c.GetQuery("total"); ok {
		n, valid := pagination.ParseTotal(raw)
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid total"})
			return
		}
		total = &n
	}

	next, ok := h.userService.NextPage(params, total)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"next": nil, "has_next": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"next": next, "has_next": true})
}

// RegisterRoutes mounts the user endpoints on the given router group.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.List)
	rg.GET("/users/pages/current", h.CurrentPage)
	rg.GET("/users/pages/next", h.NextPage)
	rg.GET("/users/:id", h.Get)
}
