package recommend

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

type recommendHandler struct {
	log              *logrus.Entry
	recommendService RecommendService
}

func NewHandler(recommendService RecommendService, log *logrus.Entry) *recommendHandler {
	return &recommendHandler{
		log:              log,
		recommendService: recommendService,
	}
}

func (h *recommendHandler) Register(router *gin.Engine) {
	api := router.Group("/api/recommendations")
	{
		api.GET("/combined/:userId", h.combined)
		api.GET("/similaires/:parfumId", h.similar)
	}
}

func (h *recommendHandler) combined(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return
	}

	combined, err := h.recommendService.Combined(userID)
	if err != nil {
		c.JSON(upstream.StatusCode(err), gin.H{"success": false, "message": upstream.Message(err)})
		return
	}
	c.JSON(200, combined)
}

func (h *recommendHandler) similar(c *gin.Context) {
	parfumID, err := strconv.ParseInt(c.Param("parfumId"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return
	}

	parfums, err := h.recommendService.Similar(parfumID)
	if err != nil {
		c.JSON(upstream.StatusCode(err), gin.H{"success": false, "message": upstream.Message(err)})
		return
	}
	c.JSON(200, parfums)
}
