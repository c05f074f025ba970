package internal

import (
	"net/http"

	"arenastreams/internal/controllers"
	"arenastreams/internal/providers"
)

func InitRoutes(adblockC *controllers.AdblockController, viewersC *controllers.ViewersController, matchesC *controllers.MatchesController, decoyC *controllers.DecoyController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/api/track-adblock", http.HandlerFunc(adblockC.TrackAdblock))
	routers.Get("/api/admin/adblock-stats", http.HandlerFunc(adblockC.AdblockStats))

	// bulk before {slug} so the literal segment wins
	routers.Get("/api/viewers/bulk", http.HandlerFunc(viewersC.Bulk))
	routers.Get("/api/viewers/{slug}", http.HandlerFunc(viewersC.GetCount))
	routers.Get("/api/viewers/{slug}/stream", http.HandlerFunc(viewersC.Stream))

	routers.Get("/api/matches", http.HandlerFunc(matchesC.List))
	routers.Get("/api/matches/sport/{sport}", http.HandlerFunc(matchesC.BySport))
	routers.Get("/api/matches/today", http.HandlerFunc(matchesC.Today))
	routers.Get("/api/matches/{id}", http.HandlerFunc(matchesC.GetByID))
	routers.Post("/api/matches", http.HandlerFunc(matchesC.Create))
	routers.Put("/api/matches/{id}", http.HandlerFunc(matchesC.Update))
	routers.Delete("/api/matches/{id}", http.HandlerFunc(matchesC.Delete))

	routers.Get("/ads/ad.gif", http.HandlerFunc(decoyC.AdImage))
	routers.Get("/ads/test.js", http.HandlerFunc(decoyC.AdScript))

	return routers
}
