package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/dto"
	"github.com/IdanZeman/Miuim-sub007/backend/internal/service"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/response"
)

// OverrideHandler 人工覆盖模块 HTTP 处理器
type OverrideHandler struct {
	overrideSvc service.OverrideService
}

// NewOverrideHandler 创建 OverrideHandler
func NewOverrideHandler(overrideSvc service.OverrideService) *OverrideHandler {
	return &OverrideHandler{overrideSvc: overrideSvc}
}

// Upsert 设置人工覆盖（重复提交视为更新）
// PUT /api/v1/overrides
func (h *OverrideHandler) Upsert(c *gin.Context) {
	var req dto.UpsertOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 15001, "参数校验失败")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	override, err := h.overrideSvc.Upsert(c.Request.Context(), &req, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, override)
}

// Get 查询某人某日的人工覆盖
// GET /api/v1/overrides?person_id=&date=
func (h *OverrideHandler) Get(c *gin.Context) {
	personID := c.Query("person_id")
	if personID == "" {
		response.BadRequest(c, 15001, "person_id不能为空")
		return
	}
	date, ok := queryDate(c, "date", 15001)
	if !ok {
		return
	}

	override, err := h.overrideSvc.Get(c.Request.Context(), personID, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, override)
}

// Delete 删除人工覆盖
// DELETE /api/v1/overrides?person_id=&date=
func (h *OverrideHandler) Delete(c *gin.Context) {
	personID := c.Query("person_id")
	if personID == "" {
		response.BadRequest(c, 15001, "person_id不能为空")
		return
	}
	date, ok := queryDate(c, "date", 15001)
	if !ok {
		return
	}

	if err := h.overrideSvc.Delete(c.Request.Context(), personID, date); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleError 人工覆盖模块错误映射
func (h *OverrideHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidTime):
		response.BadRequest(c, 15002, err.Error())
	case errors.Is(err, service.ErrPersonNotFound),
		errors.Is(err, service.ErrOverrideNotFound):
		response.NotFound(c, 15004, err.Error())
	default:
		response.InternalError(c)
	}
}
