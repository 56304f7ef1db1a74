package favorites

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/example/parfumgate/internal/upstream"
)

type favoritesHandler struct {
	log              *logrus.Entry
	favoritesService FavoritesService
}

func NewHandler(favoritesService FavoritesService, log *logrus.Entry) *favoritesHandler {
	return &favoritesHandler{
		log:              log,
		favoritesService: favoritesService,
	}
}

func (h *favoritesHandler) Register(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/favoris/:userId", h.listFavoris)
		api.GET("/favoris/:userId/:parfumId", h.isFavori)
		api.POST("/favoris", h.addFavori)
		api.DELETE("/favoris/:userId/:parfumId", h.removeFavori)

		api.GET("/wishlist/:userId", h.wishlist)
		api.GET("/wishlist/:userId/:parfumId", h.isInWishlist)
		api.POST("/wishlist", h.addToWishlist)
		api.DELETE("/wishlist/:userId/:parfumId", h.removeFromWishlist)
	}
}

func (h *favoritesHandler) listFavoris(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	parfums, err := h.favoritesService.Favoris(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, parfums)
}

func (h *favoritesHandler) isFavori(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	parfumID, ok := pathID(c, "parfumId")
	if !ok {
		return
	}

	isFavorite, err := h.favoritesService.IsFavori(userID, parfumID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"isFavorite": isFavorite})
}

type pairBody struct {
	UserID   int64 `json:"user_id" binding:"required"`
	ParfumID int64 `json:"parfum_id" binding:"required"`
}

func (h *favoritesHandler) addFavori(c *gin.Context) {
	var body pairBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	if err := h.favoritesService.AddFavori(body.UserID, body.ParfumID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *favoritesHandler) removeFavori(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	parfumID, ok := pathID(c, "parfumId")
	if !ok {
		return
	}

	if err := h.favoritesService.RemoveFavori(userID, parfumID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *favoritesHandler) wishlist(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	entries, err := h.favoritesService.Wishlist(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, entries)
}

func (h *favoritesHandler) isInWishlist(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	parfumID, ok := pathID(c, "parfumId")
	if !ok {
		return
	}

	c.JSON(200, gin.H{"inWishlist": h.favoritesService.IsInWishlist(userID, parfumID)})
}

type addWishlistBody struct {
	UserID          int64  `json:"user_id" binding:"required"`
	ParfumID        int64  `json:"parfum_id" binding:"required"`
	NotePersonnelle string `json:"note_personnelle"`
	Priorite        string `json:"priorite"`
}

func (h *favoritesHandler) addToWishlist(c *gin.Context) {
	var body addWishlistBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "requete invalide"})
		return
	}

	if err := h.favoritesService.AddToWishlist(body.UserID, body.ParfumID, body.NotePersonnelle, body.Priorite); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *favoritesHandler) removeFromWishlist(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	parfumID, ok := pathID(c, "parfumId")
	if !ok {
		return
	}

	if err := h.favoritesService.RemoveFromWishlist(userID, parfumID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func fail(c *gin.Context, err error) {
	c.JSON(upstream.StatusCode(err), gin.H{"success": false, "message": upstream.Message(err)})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "identifiant invalide"})
		return 0, false
	}
	return id, true
}
