package handler

import (
	"net/http"

	"social_board_jwt/internal/domain/blacklist/service"
	"social_board_jwt/internal/pkg/middleware"
	"social_board_jwt/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BlacklistHandler 黑名单处理器
type BlacklistHandler struct {
	service service.BlacklistService
}

func NewBlacklistHandler(s service.BlacklistService) *BlacklistHandler {
	return &BlacklistHandler{service: s}
}

// bindTargetID 校验路径参数的 UUID 形状，不合法的值在边界挡掉
func bindTargetID(c *gin.Context) (string, bool) {
	id := c.Param("target_id")
	if uuid.Validate(id) != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "invalid target id")
		return "", false
	}
	return id, true
}

// Block 将目标用户加入黑名单
// @Summary 加入黑名单
// @Tags Blacklist
// @Param target_id path string true "目标用户ID"
// @Success 201 {object} response.Response
// @Router /blacklist/{target_id} [post]
func (h *BlacklistHandler) Block(c *gin.Context) {
	targetID, ok := bindTargetID(c)
	if !ok {
		return
	}
	userID := middleware.CurrentUserID(c)

	if err := h.service.Block(userID, targetID); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, "blocked")
}

// Unblock 将目标用户移出黑名单
// @Summary 移出黑名单
// @Tags Blacklist
// @Param target_id path string true "目标用户ID"
// @Success 200 {object} response.Response
// @Router /blacklist/{target_id} [delete]
func (h *BlacklistHandler) Unblock(c *gin.Context) {
	targetID, ok := bindTargetID(c)
	if !ok {
		return
	}
	userID := middleware.CurrentUserID(c)

	if err := h.service.Unblock(userID, targetID); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, "unblocked")
}
