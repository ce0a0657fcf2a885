package controllers

import (
	"github.com/gin-gonic/gin"
)

type Router struct {
	HealthController    *HealthController
	CompaniesController *CompaniesController
	StocksController    *StocksController
}

func (r Router) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", r.HealthController.Status)

	router.POST("/companies", r.CompaniesController.CreateCompany)
	router.GET("/companies", r.CompaniesController.GetCompanies)
	router.PUT("/companies/:id", r.CompaniesController.UpdateCompany)

	router.GET("/company-stocks/:companyId", r.StocksController.GetCompanyStocks)
}
