package catalog_fx

import (
	"go.uber.org/fx"

	"luxing/internal/api/controllers"
	"luxing/internal/catalog"
	"luxing/internal/services"
)

var Module = fx.Provide(
	provideCatalog, provideCatalogService, provideCatalogController)

func provideCatalog() *catalog.Catalog {
	return catalog.Default()
}

func provideCatalogService(cat *catalog.Catalog) services.CatalogServiceInterface {
	return services.NewCatalogService(cat)
}

func provideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}
