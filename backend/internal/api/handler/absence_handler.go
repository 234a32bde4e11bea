package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/dto"
	"github.com/IdanZeman/Miuim-sub007/backend/internal/service"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/response"
)

// AbsenceHandler 缺勤模块 HTTP 处理器
type AbsenceHandler struct {
	absenceSvc service.AbsenceService
}

// NewAbsenceHandler 创建 AbsenceHandler
func NewAbsenceHandler(absenceSvc service.AbsenceService) *AbsenceHandler {
	return &AbsenceHandler{absenceSvc: absenceSvc}
}

// Create 创建缺勤记录
// POST /api/v1/absences
func (h *AbsenceHandler) Create(c *gin.Context) {
	var req dto.CreateAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "参数校验失败")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	absence, err := h.absenceSvc.Create(c.Request.Context(), &req, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, absence)
}

// UpdateStatus 缺勤审批（批准/驳回）
// PUT /api/v1/absences/:id/status
func (h *AbsenceHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 14001, "缺勤ID不能为空")
		return
	}

	var req dto.UpdateAbsenceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "参数校验失败")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	absence, err := h.absenceSvc.UpdateStatus(c.Request.Context(), id, req.Status, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, absence)
}

// Delete 删除缺勤记录（软删除）
// DELETE /api/v1/absences/:id
func (h *AbsenceHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 14001, "缺勤ID不能为空")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.absenceSvc.Delete(c.Request.Context(), id, actorID); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// List 查询缺勤记录
// GET /api/v1/absences?person_id= 或 ?organization_id=
func (h *AbsenceHandler) List(c *gin.Context) {
	personID := c.Query("person_id")
	orgID := c.Query("organization_id")

	var err error
	var absences interface{}
	switch {
	case personID != "":
		absences, err = h.absenceSvc.ListByPerson(c.Request.Context(), personID)
	case orgID != "":
		absences, err = h.absenceSvc.ListByOrganization(c.Request.Context(), orgID)
	default:
		response.BadRequest(c, 14001, "person_id与organization_id至少提供一个")
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": absences})
}

// ImportICS 从 ICS 日历订阅导入缺勤
// POST /api/v1/absences/import
func (h *AbsenceHandler) ImportICS(c *gin.Context) {
	var req dto.ImportAbsenceICSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "参数校验失败")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.absenceSvc.ImportICS(c.Request.Context(), &req, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// handleError 缺勤模块错误映射
func (h *AbsenceHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidTime),
		errors.Is(err, service.ErrInvalidDateRange):
		response.BadRequest(c, 14002, err.Error())
	case errors.Is(err, service.ErrPersonNotFound),
		errors.Is(err, service.ErrAbsenceNotFound):
		response.NotFound(c, 14004, err.Error())
	case errors.Is(err, service.ErrAbsenceNotPending):
		response.Conflict(c, 14009, err.Error())
	default:
		response.InternalError(c)
	}
}
