package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// queryDate 从查询参数中提取并解析日期（YYYY-MM-DD）
// 解析失败时写入 400 响应，调用方应在 ok=false 时直接 return
func queryDate(c *gin.Context, key string, code int) (calendar.Date, bool) {
	raw := c.Query(key)
	if raw == "" {
		response.BadRequest(c, code, key+"不能为空")
		return calendar.Date{}, false
	}
	d, err := calendar.ParseDate(raw)
	if err != nil {
		response.BadRequest(c, code, key+"格式无效，应为 YYYY-MM-DD")
		return calendar.Date{}, false
	}
	return d, true
}
