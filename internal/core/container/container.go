package container

import (
	"database/sql"

	auditLogRepo "avrental/internal/auditlog"
	"avrental/internal/clients"
	"avrental/internal/costs"
	"avrental/internal/inventory/assets"
	"avrental/internal/inventory/catalog"
	"avrental/internal/metrics"
	"avrental/internal/prep"
	"avrental/internal/quotes"
	"avrental/internal/repository"
	"avrental/internal/subrentals"
	"avrental/internal/vendors"
	"avrental/internal/venues"
	"avrental/pkg/auditlog"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Container struct {
	Repository       *repository.Repository
	AuditLog         *auditlog.Auditlog
	Metrics          *metrics.AvailabilityMetrics
	CatalogHandler   *catalog.CatalogHandler
	AssetHandler     *assets.AssetHandler
	QuoteHandler     *quotes.QuoteHandler
	PrepHandler      *prep.PrepHandler
	ClientHandler    *clients.ClientHandler
	VenueHandler     *venues.VenueHandler
	VendorHandler    *vendors.VendorHandler
	SubrentalHandler *subrentals.SubrentalHandler
	CostHandler      *costs.CostHandler
	AuditLogHandler  *auditLogRepo.AuditLogHandler
}

func NewAppContainer(db *sql.DB, log *zap.Logger, reg prometheus.Registerer) *Container {
	repo := repository.NewRepository(db)
	m := metrics.NewAvailabilityMetrics(reg)

	auditRepository := auditLogRepo.NewRepository(repo)
	auditLog := auditlog.NewAuditLog(auditRepository, log.Named("auditlog"))

	catalogService := catalog.NewCatalogService(catalog.NewRepository(repo))
	assetService := assets.NewAssetService(assets.NewRepository(repo))
	clientService := clients.NewClientService(clients.NewRepository(repo))
	venueService := venues.NewVenueService(venues.NewRepository(repo))
	vendorService := vendors.NewVendorService(vendors.NewRepository(repo))
	quoteService := quotes.NewQuoteService(quotes.NewRepository(repo), clientService, venueService, m)
	subrentalService := subrentals.NewSubrentalService(subrentals.NewRepository(repo), quoteService, vendorService)
	costService := costs.NewCostService(costs.NewRepository(repo), quoteService, vendorService)
	prepService := prep.NewPrepService(assetService, quoteService, catalogService, subrentalService, m)

	return &Container{
		Repository:       repo,
		AuditLog:         auditLog,
		Metrics:          m,
		CatalogHandler:   catalog.NewCatalogHandler(catalogService, auditLog, log.Named("catalog")),
		AssetHandler:     assets.NewAssetHandler(assetService, auditLog, log.Named("assets")),
		QuoteHandler:     quotes.NewQuoteHandler(quoteService, auditLog, log.Named("quotes")),
		PrepHandler:      prep.NewPrepHandler(prepService, log.Named("prep")),
		ClientHandler:    clients.NewClientHandler(clientService, auditLog, log.Named("clients")),
		VenueHandler:     venues.NewVenueHandler(venueService, auditLog, log.Named("venues")),
		VendorHandler:    vendors.NewVendorHandler(vendorService, auditLog, log.Named("vendors")),
		SubrentalHandler: subrentals.NewSubrentalHandler(subrentalService, auditLog, log.Named("subrentals")),
		CostHandler:      costs.NewCostHandler(costService, auditLog, log.Named("costs")),
		AuditLogHandler:  auditLogRepo.NewHandler(auditRepository),
	}
}
