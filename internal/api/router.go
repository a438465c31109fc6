package api

import (
	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every API route onto a gin engine. Middleware beyond
// recovery is left to the caller.
func NewRouter(handler *GameHandler, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteGames, handler.ListGames)
		apiRoutes.POST(constants.RouteGames, handler.CreateGame)
		apiRoutes.GET(constants.RouteGameByCode, handler.GetGame)
		apiRoutes.GET(constants.RouteGameBoard, handler.BoardImage)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RoutePlayer, handler.GetPlayer)

		// Endpoints that act on behalf of the game's player
		protected := apiRoutes.Group("")
		protected.Use(PlayerTokenRequired())

		protected.POST(constants.RouteGameMoves, handler.PlayMove)
		protected.GET(constants.RouteGameHint, handler.Hint)
		protected.POST(constants.RouteGameResign, handler.Resign)
	}
	return router
}
