package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/Domenick1991/travelbooking/internal/service/records"
	"github.com/Domenick1991/travelbooking/internal/validation"
	"github.com/gin-gonic/gin"
)

// Creator is a validated create payload that can build the record to store.
type Creator[T any] interface {
	Record(now time.Time) T
}

// ResourceHandler serves create/list/get/update/delete for one entity.
// C is the create shape and U the partial-update shape.
type ResourceHandler[T domain.Record[T], C Creator[T], U repository.Patch[T]] struct {
	service records.UseCase[T]
	now     func() time.Time
}

func NewResourceHandler[T domain.Record[T], C Creator[T], U repository.Patch[T]](service records.UseCase[T]) *ResourceHandler[T, C, U] {
	return &ResourceHandler[T, C, U]{service: service, now: time.Now}
}

func (h *ResourceHandler[T, C, U]) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *ResourceHandler[T, C, U]) create(c *gin.Context) {
	var req C
	if err := validation.Bind(c, &req); err != nil {
		writeError(c, err)
		return
	}

	record, err := h.service.Create(c.Request.Context(), req.Record(h.now()))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ResourceHandler[T, C, U]) list(c *gin.Context) {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		writeError(c, err)
		return
	}
	limit, err := queryInt(c, "limit", repository.DefaultLimit)
	if err != nil {
		writeError(c, err)
		return
	}

	list, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ResourceHandler[T, C, U]) get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ResourceHandler[T, C, U]) update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req U
	if err := validation.BindPatch(c, &req); err != nil {
		writeError(c, err)
		return
	}

	record, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ResourceHandler[T, C, U]) delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	record, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("id", "must be an integer")
	}
	return id, nil
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	if v < 0 {
		return 0, domain.NewValidationError(name, "must be greater than or equal to 0")
	}
	return v, nil
}
