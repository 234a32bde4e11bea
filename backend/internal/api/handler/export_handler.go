package handler

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/service"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportGroupPresence 导出分组当日在位报表
// GET /api/v1/export/presence?group_id=&date=
func (h *ExportHandler) ExportGroupPresence(c *gin.Context) {
	groupID := c.Query("group_id")
	if groupID == "" {
		response.BadRequest(c, 17001, "group_id不能为空")
		return
	}
	date, ok := queryDate(c, "date", 17001)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportGroupPresence(c.Request.Context(), groupID, date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGroupNotFound):
			response.NotFound(c, 17004, err.Error())
		case errors.Is(err, service.ErrExportNoSnapshots):
			response.NotFound(c, 17005, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	// 文件名含中文，按 RFC 5987 编码
	encoded := url.PathEscape(filename)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename*=UTF-8''%s`, encoded))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
