package admin

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

type adminHandler struct {
	log          *logrus.Entry
	adminService AdminService
}

func NewHandler(adminService AdminService, log *logrus.Entry) *adminHandler {
	return &adminHandler{
		log:          log,
		adminService: adminService,
	}
}

func (h *adminHandler) Register(router *gin.Engine) {
	admin := router.Group("/api/admin")
	{
		admin.GET("/dashboard", h.dashboard)

		admin.GET("/parfums", h.listParfums)
		admin.POST("/parfums", h.createParfum)
		admin.PUT("/parfums/:id", h.updateParfum)
		admin.DELETE("/parfums/:id", h.deleteParfum)

		admin.GET("/orders", h.listOrders)
		admin.GET("/orders/:id/details", h.orderDetails)
		admin.PUT("/commandes/:id", h.updateOrderStatut)

		admin.GET("/users", h.listUsers)
		admin.GET("/users/:id", h.userDetails)
		admin.PUT("/users/:id/telephone", h.updateUserPhone)

		admin.GET("/promotions", h.listPromotions)
		admin.POST("/promotions", h.createPromotion)
		admin.DELETE("/promotions/:id", h.deletePromotion)

		admin.GET("/avis-commandes", h.listAvisCommandes)
		admin.DELETE("/avis-commandes/:id", h.deleteAvisCommande)
	}
}

func (h *adminHandler) dashboard(c *gin.Context) {
	dashboard, err := h.adminService.Dashboard()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, dashboard)
}

func (h *adminHandler) listParfums(c *gin.Context) {
	parfums, err := h.adminService.Parfums()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, parfums)
}

func (h *adminHandler) createParfum(c *gin.Context) {
	var input ParfumInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	if err := h.adminService.CreateParfum(input); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(201, gin.H{"success": true})
}

func (h *adminHandler) updateParfum(c *gin.Context) {
	id, ok := adminPathID(c)
	if !ok {
		return
	}

	var input ParfumInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	if err := h.adminService.UpdateParfum(id, input); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *adminHandler) deleteParfum(c *gin.Context) {
	id, ok := adminPathID(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteParfum(id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *adminHandler) listOrders(c *gin.Context) {
	filter := OrderFilter{
		Statut:   c.DefaultQuery("statut", "all"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}

	orders, err := h.adminService.Orders(filter)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, orders)
}

func (h *adminHandler) orderDetails(c *gin.Context) {
	id, ok := adminPathID(c)
	if !ok {
		return
	}

	details, err := h.adminService.OrderDetails(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, details)
}

type statutBody struct {
	Statut string `json:"statut" binding:"required"`
}

func (h *adminHandler) updateOrderStatut(c *gin.Context) {
	id, ok := adminPathID(c)
	if !ok {
		return
	}

	var body statutBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	if err := h.adminService.UpdateOrderStatut(id, body.Statut); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *adminHandler) listUsers(c *gin.Context) {
	users, err := h.adminService.Users()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, users)
}

func (h *adminHandler) userDetails(c *gin.Context) {
	id, ok := adminPathID(c)
	if !ok {
		return
	}

	details, err := h.adminService.UserDetails(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, details)
}

type telephoneBody struct {
	Telephone string `json:"telephone" binding:"required"`
}

func (h *adminHandler) updateUserPhone(c *gin.Context) {
	id, ok := adminPathID(c)
	if !ok {
		return
	}

	var body telephoneBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	if err := h.adminService.UpdateUserPhone(id, body.Telephone); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *adminHandler) listPromotions(c *gin.Context) {
	promotions, err := h.adminService.Promotions()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, promotions)
}

func (h *adminHandler) createPromotion(c *gin.Context) {
	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	if err := h.adminService.CreatePromotion(req); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(201, gin.H{"success": true})
}

func (h *adminHandler) deletePromotion(c *gin.Context) {
	id, ok := adminPathID(c)
	if !ok {
		return
	}

	if err := h.adminService.DeletePromotion(id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *adminHandler) listAvisCommandes(c *gin.Context) {
	avis, err := h.adminService.AvisCommandes()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, avis)
}

func (h *adminHandler) deleteAvisCommande(c *gin.Context) {
	id, ok := adminPathID(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteAvisCommande(id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *adminHandler) fail(c *gin.Context, err error) {
	switch err {
	case errParfumRequis, errRemiseInvalide, errDateFormat, errDatesIncoherentes, errStatutInconnu:
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
	case errTransitionInvalide:
		c.JSON(409, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(upstream.StatusCode(err), gin.H{"success": false, "message": upstream.Message(err)})
	}
}

func adminPathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return 0, false
	}
	return id, true
}
