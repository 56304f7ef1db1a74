package support

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

type supportHandler struct {
	log            *logrus.Entry
	supportService SupportService
}

func NewHandler(supportService SupportService, log *logrus.Entry) *supportHandler {
	return &supportHandler{
		log:            log,
		supportService: supportService,
	}
}

func (h *supportHandler) Register(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/support", h.send)
		api.GET("/support/:userId", h.thread)
		api.GET("/notifications/:userId", h.notifications)
		api.PUT("/notifications/:id/read", h.markRead)
		api.DELETE("/notifications/:id", h.deleteNotification)
	}
}

func (h *supportHandler) send(c *gin.Context) {
	var body struct {
		UserID  int64  `json:"user_id" binding:"required"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	if err := h.supportService.Send(body.UserID, body.Message); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *supportHandler) thread(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return
	}

	messages, err := h.supportService.Thread(userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, messages)
}

func (h *supportHandler) notifications(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return
	}

	notifications, err := h.supportService.Notifications(userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, notifications)
}

func (h *supportHandler) markRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return
	}

	if err := h.supportService.MarkRead(id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *supportHandler) deleteNotification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return
	}

	if err := h.supportService.DeleteNotification(id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *supportHandler) fail(c *gin.Context, err error) {
	if err == errMessageVide {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(upstream.StatusCode(err), gin.H{"success": false, "message": upstream.Message(err)})
}
