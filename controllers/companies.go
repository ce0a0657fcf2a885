package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stockdir/api"
	"stockdir/services"
)

type CompaniesController struct {
	Directory *services.DirectoryService
}

func (cc CompaniesController) CreateCompany(c *gin.Context) {
	var input services.CompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.ResultError(c, http.StatusBadRequest, []string{"invalidRequest"})
		return
	}

	company, err := cc.Directory.Create(&input)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	api.ResultCreated(c, company)
}

func (cc CompaniesController) GetCompanies(c *gin.Context) {
	companies, err := cc.Directory.List()
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	api.ResultData(c, companies)
}

func (cc CompaniesController) UpdateCompany(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		api.ResultError(c, http.StatusBadRequest, []string{"invalidRequest"})
		return
	}

	var input services.CompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.ResultError(c, http.StatusBadRequest, []string{"invalidRequest"})
		return
	}

	company, err := cc.Directory.Update(uint(id), &input)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	api.ResultData(c, company)
}
