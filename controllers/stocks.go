package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stockdir/api"
	"stockdir/services"
)

type StocksController struct {
	Snapshots *services.SnapshotService
}

func (sc StocksController) GetCompanyStocks(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 32)
	if err != nil {
		api.ResultError(c, http.StatusBadRequest, []string{"invalidRequest"})
		return
	}

	view, err := sc.Snapshots.GetSnapshot(uint(companyID))
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	api.ResultData(c, view)
}
