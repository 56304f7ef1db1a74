package cart

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

type cartHandler struct {
	log         *logrus.Entry
	cartService CartService
}

func NewHandler(cartService CartService, log *logrus.Entry) *cartHandler {
	return &cartHandler{
		log:         log,
		cartService: cartService,
	}
}

func (h *cartHandler) Register(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/panier/:userId", h.summary)
		api.POST("/panier", h.addLine)
		api.PUT("/panier/:id", h.updateQuantity)
		api.DELETE("/panier/:id", h.removeLine)
	}
}

func (h *cartHandler) summary(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return
	}

	summary, err := h.cartService.Summary(userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, summary)
}

type addLineBody struct {
	UserID       int64    `json:"user_id" binding:"required"`
	ParfumID     int64    `json:"parfum_id" binding:"required"`
	Quantite     int      `json:"quantite" binding:"required"`
	PrixUnitaire *float64 `json:"prix_unitaire"`
}

func (h *cartHandler) addLine(c *gin.Context) {
	var body addLineBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	if err := h.cartService.AddLine(body.UserID, body.ParfumID, body.Quantite, body.PrixUnitaire); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *cartHandler) updateQuantity(c *gin.Context) {
	panierID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return
	}

	var body struct {
		Quantite int `json:"quantite"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	if err := h.cartService.UpdateQuantity(panierID, body.Quantite); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *cartHandler) removeLine(c *gin.Context) {
	panierID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return
	}

	if err := h.cartService.RemoveLine(panierID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *cartHandler) fail(c *gin.Context, err error) {
	switch err {
	case errQuantiteInvalide, errParfumRequis:
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(upstream.StatusCode(err), gin.H{"success": false, "message": upstream.Message(err)})
	}
}
