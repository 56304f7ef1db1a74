package catalog

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

type catalogHandler struct {
	log            *logrus.Entry
	catalogService CatalogService
}

func NewHandler(catalogService CatalogService, log *logrus.Entry) *catalogHandler {
	return &catalogHandler{
		log:            log,
		catalogService: catalogService,
	}
}

func (h *catalogHandler) Register(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/parfums", h.listParfums)
		api.GET("/parfums/:id", h.getParfum)
		api.GET("/promotions", h.listPromotional)
		api.GET("/historique-recherche/:userId", h.historique)
		api.GET("/suggestions/:userId", h.suggestions)
	}
}

func (h *catalogHandler) listParfums(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		userID, _ := strconv.ParseInt(c.Query("user_id"), 10, 64)
		parfums, err := h.catalogService.Search(userID, query)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(200, parfums)
		return
	}

	parfums, err := h.catalogService.Browse(c.Query("categorie"), c.Query("sort"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, parfums)
}

func (h *catalogHandler) getParfum(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return
	}

	parfum, err := h.catalogService.Parfum(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, parfum)
}

func (h *catalogHandler) listPromotional(c *gin.Context) {
	parfums, err := h.catalogService.Promotional()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, parfums)
}

func (h *catalogHandler) historique(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return
	}

	entries, err := h.catalogService.Historique(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, entries)
}

func (h *catalogHandler) suggestions(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return
	}

	parfums, err := h.catalogService.Suggestions(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, parfums)
}

func fail(c *gin.Context, err error) {
	c.JSON(upstream.StatusCode(err), gin.H{"success": false, "message": upstream.Message(err)})
}
