package order

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

type orderHandler struct {
	log          *logrus.Entry
	orderService OrderService
}

func NewHandler(orderService OrderService, log *logrus.Entry) *orderHandler {
	return &orderHandler{
		log:          log,
		orderService: orderService,
	}
}

func (h *orderHandler) Register(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/commandes/:userId", h.listCommandes)
		api.GET("/commandes/:userId/:orderId", h.orderDetails)
		api.DELETE("/commandes/:userId/:orderId", h.cancel)
		api.GET("/commandes/:userId/:orderId/parfums-avis", h.reviewForm)
		api.POST("/avis", h.addAvis)
		api.POST("/avis-commande-simple", h.addAvisSimple)
		api.GET("/avis/parfum/:parfumId", h.avisByParfum)
		api.GET("/avis/moyenne/:parfumId", h.noteMoyenne)
	}
}

func (h *orderHandler) listCommandes(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	orders, err := h.orderService.Commandes(userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, orders)
}

func (h *orderHandler) orderDetails(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	details, err := h.orderService.Details(userID, orderID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, details)
}

func (h *orderHandler) cancel(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	if err := h.orderService.Cancel(userID, orderID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "commande annulee"})
}

func (h *orderHandler) reviewForm(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	rows, err := h.orderService.ReviewForm(userID, orderID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, rows)
}

type avisBody struct {
	UserID      int64  `json:"user_id" binding:"required"`
	ParfumID    int64  `json:"parfum_id" binding:"required"`
	CommandeID  int64  `json:"commande_id" binding:"required"`
	Note        int    `json:"note"`
	Commentaire string `json:"commentaire"`
}

func (h *orderHandler) addAvis(c *gin.Context) {
	var body avisBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	if err := h.orderService.SubmitAvis(body.UserID, body.CommandeID, body.ParfumID, body.Note, body.Commentaire); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

type avisSimpleBody struct {
	UserID      int64  `json:"user_id" binding:"required"`
	CommandeID  int64  `json:"commande_id" binding:"required"`
	Note        int    `json:"note"`
	Commentaire string `json:"commentaire"`
}

func (h *orderHandler) addAvisSimple(c *gin.Context) {
	var body avisSimpleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	if err := h.orderService.SubmitAvisSimple(body.UserID, body.CommandeID, body.Note, body.Commentaire); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *orderHandler) avisByParfum(c *gin.Context) {
	parfumID, ok := pathID(c, "parfumId")
	if !ok {
		return
	}

	avis, err := h.orderService.AvisByParfum(parfumID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, avis)
}

func (h *orderHandler) noteMoyenne(c *gin.Context) {
	parfumID, ok := pathID(c, "parfumId")
	if !ok {
		return
	}

	note, err := h.orderService.NoteMoyenne(parfumID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, note)
}

func (h *orderHandler) fail(c *gin.Context, err error) {
	switch err {
	case errCannotCancel, errNoteRequise, errNoteInvalide, errCommentaireTropLong, errAvisDejaDepose, errAvisNonEligible:
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
	case errCommandeIntrouvable:
		c.JSON(404, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(upstream.StatusCode(err), gin.H{"success": false, "message": upstream.Message(err)})
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return 0, false
	}
	return id, true
}
