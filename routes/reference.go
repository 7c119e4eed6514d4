package routes

import "github.com/gofiber/fiber/v2"

func SetupReferenceRoutes(app *fiber.App, h Handlers) {
	app.Get("/regions", h.References.ListRegions)
	app.Get("/regions/:id", h.References.GetRegion)
	app.Post("/regions", h.Auth.Protected(), h.References.CreateRegion)
	app.Put("/regions/:id", h.Auth.Protected(), h.References.UpdateRegion)
	app.Delete("/regions/:id", h.Auth.Protected(), h.References.DeleteRegion)

	app.Get("/cities", h.References.ListCities)
	app.Get("/cities/:id", h.References.GetCity)
	app.Post("/cities", h.Auth.Protected(), h.References.CreateCity)

	app.Get("/addresses", h.References.ListAddresses)
	app.Get("/addresses/:id", h.References.GetAddress)
	app.Post("/addresses", h.Auth.Protected(), h.References.CreateAddress)

	app.Get("/languages", h.References.ListLanguages)
	app.Get("/languages/:id", h.References.GetLanguage)
	app.Post("/languages", h.Auth.Protected(), h.References.CreateLanguage)
	app.Delete("/languages/:id", h.Auth.Protected(), h.References.DeleteLanguage)
}
