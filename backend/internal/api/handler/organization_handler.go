package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/dto"
	"github.com/IdanZeman/Miuim-sub007/backend/internal/service"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/response"
)

// OrganizationHandler 单位与营级分组模块 HTTP 处理器
type OrganizationHandler struct {
	orgSvc service.OrganizationService
}

// NewOrganizationHandler 创建 OrganizationHandler
func NewOrganizationHandler(orgSvc service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgSvc: orgSvc}
}

// ListGroups 列出已配置晨报时刻的分组
// GET /api/v1/organization-groups
func (h *OrganizationHandler) ListGroups(c *gin.Context) {
	groups, err := h.orgSvc.ListGroupsWithReportTime(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": groups})
}

// GetGroup 查询分组详情
// GET /api/v1/organization-groups/:id
func (h *OrganizationHandler) GetGroup(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 16001, "分组ID不能为空")
		return
	}

	group, err := h.orgSvc.GetGroup(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, group)
}

// UpdateGroupReportTime 设置分组晨报时刻
// PUT /api/v1/organization-groups/:id/report-time
func (h *OrganizationHandler) UpdateGroupReportTime(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 16001, "分组ID不能为空")
		return
	}

	var req dto.UpdateGroupReportTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 16001, "参数校验失败")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	group, err := h.orgSvc.UpdateGroupReportTime(c.Request.Context(), id, req.ReportTime, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, group)
}

// ListOrganizations 列出分组下的单位
// GET /api/v1/organization-groups/:id/organizations
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 16001, "分组ID不能为空")
		return
	}

	orgs, err := h.orgSvc.ListByGroup(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": orgs})
}

// ListPersons 列出单位下的在役人员
// GET /api/v1/organizations/:id/persons
func (h *OrganizationHandler) ListPersons(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 16001, "单位ID不能为空")
		return
	}

	persons, err := h.orgSvc.ListPersons(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": persons})
}

// ListTeams 列出单位下的班组
// GET /api/v1/organizations/:id/teams
func (h *OrganizationHandler) ListTeams(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 16001, "单位ID不能为空")
		return
	}

	teams, err := h.orgSvc.ListTeams(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": teams})
}

// handleError 单位模块错误映射
func (h *OrganizationHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTime):
		response.BadRequest(c, 16002, err.Error())
	case errors.Is(err, service.ErrGroupNotFound):
		response.NotFound(c, 16004, err.Error())
	default:
		response.InternalError(c)
	}
}
