package routes

import (
	"crm_pipeline/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads   = "/leads"
	PathOffers  = "/offers"
	PathSales   = "/sales"
	PathReports = "/reports"
)

func addPipelineRoutes(rg *gin.RouterGroup, leadHandler *handlers.LeadHandler, offerHandler *handlers.OfferHandler, saleHandler *handlers.SaleHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("/:lead_id/convert", leadHandler.ConvertLead)
		leads.POST("/:lead_id/revert-conversion", leadHandler.RevertLeadConversion)
	}

	offers := rg.Group(PathOffers)
	{
		offers.POST("", offerHandler.CreateOffer)
		offers.GET("/:offer_id", offerHandler.GetOffer)
		offers.PUT("/:offer_id", offerHandler.UpdateOffer)
		offers.PATCH("/:offer_id/status", offerHandler.ChangeOfferStatus)
		offers.DELETE("/:offer_id", offerHandler.DeleteOffer)
		offers.GET("/:offer_id/totals", offerHandler.GetOfferTotals)
		offers.POST("/:offer_id/convert", offerHandler.ConvertOffer)
		offers.POST("/:offer_id/revert-conversion", offerHandler.RevertOfferConversion)
	}

	sales := rg.Group(PathSales)
	{
		sales.GET("/:sale_id", saleHandler.GetSale)
		sales.PUT("/:sale_id", saleHandler.UpdateSale)
		sales.DELETE("/:sale_id", saleHandler.DeleteSale)
		sales.GET("/:sale_id/totals", saleHandler.GetSaleTotals)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/sales-items-total", saleHandler.SalesItemsTotal)
	}
}
