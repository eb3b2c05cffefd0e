package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initWatchlistRoutes(api *gin.RouterGroup) {
	watchlist := api.Group("/watchlist", h.userIdentityMiddleware)

	watchlist.GET("", h.watchlistList)
}

// @Summary Watchlist
// @Tags Watchlist
// @Description List the authenticated user's tracked symbols
// @ModuleID watchlistList
// @Produce  json
// @Success 200 {object} DataResponse
// @Security UserAuth
// @Router /watchlist [get]
func (h *Handler) watchlistList(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	entries, err := h.services.Watchlists.GetAllByUserID(c.Request.Context(), userID)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dataResponse{Status: true, Message: WatchlistMessage, Data: entries})
}
