package checkout

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

type checkoutHandler struct {
	log             *logrus.Entry
	checkoutService CheckoutService
}

func NewHandler(checkoutService CheckoutService, log *logrus.Entry) *checkoutHandler {
	return &checkoutHandler{
		log:             log,
		checkoutService: checkoutService,
	}
}

func (h *checkoutHandler) Register(router *gin.Engine) {
	api := router.Group("/api/checkout")
	{
		api.POST("", h.start)
		api.GET("/:id", h.session)
		api.POST("/:id/adresse", h.submitAddress)
		api.POST("/:id/paiement", h.choosePayment)
		api.POST("/:id/carte", h.submitCard)
		api.DELETE("/:id", h.cancel)
	}
}

func (h *checkoutHandler) start(c *gin.Context) {
	var body struct {
		UserID int64 `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	session, err := h.checkoutService.Start(body.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(201, session)
}

func (h *checkoutHandler) session(c *gin.Context) {
	session, err := h.checkoutService.Session(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, session)
}

func (h *checkoutHandler) submitAddress(c *gin.Context) {
	var address Address
	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	session, err := h.checkoutService.SubmitAddress(c.Param("id"), address)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, session)
}

func (h *checkoutHandler) choosePayment(c *gin.Context) {
	var body struct {
		ModePaiement string `json:"mode_paiement" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	session, err := h.checkoutService.ChoosePayment(c.Param("id"), body.ModePaiement)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, session)
}

func (h *checkoutHandler) submitCard(c *gin.Context) {
	var card Card
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	session, err := h.checkoutService.SubmitCard(c.Param("id"), card)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, session)
}

func (h *checkoutHandler) cancel(c *gin.Context) {
	if err := h.checkoutService.Cancel(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *checkoutHandler) fail(c *gin.Context, err error) {
	switch err {
	case errSessionIntrouvable:
		c.JSON(404, gin.H{"success": false, "message": err.Error()})
	case errEtatInvalide:
		c.JSON(409, gin.H{"success": false, "message": err.Error()})
	case errPaiementRefuse:
		c.JSON(402, gin.H{"success": false, "message": err.Error(), "retry": true})
	case errPanierVide, errNomRequis, errTelephoneInvalide, errAdresseRequise, errVilleRequise,
		errModePaiementInvalide, errCarteInvalide, errTitulaireRequis, errExpirationInvalide,
		errCarteExpiree, errCVVInvalide:
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(upstream.StatusCode(err), gin.H{"success": false, "message": upstream.Message(err)})
	}
}
