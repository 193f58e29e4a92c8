package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YashI2IT/hostel/services"
	"github.com/YashI2IT/hostel/utils"
)

type OccupancyController struct {
	Occupancy *services.OccupancyService
	Reports   *services.ReportService
}

func NewOccupancyController(occupancy *services.OccupancyService, reports *services.ReportService) *OccupancyController {
	return &OccupancyController{Occupancy: occupancy, Reports: reports}
}

func (oc *OccupancyController) GetOverall(c *gin.Context) {
	stats, err := oc.Occupancy.Overall()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

func (oc *OccupancyController) GetByProperty(c *gin.Context) {
	stats, err := oc.Occupancy.ByProperty()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

func (oc *OccupancyController) GetForProperty(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	stats, err := oc.Occupancy.ForProperty(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// DownloadWorkbook streams the occupancy report as an .xlsx attachment.
func (oc *OccupancyController) DownloadWorkbook(c *gin.Context) {
	raw, err := oc.Reports.OccupancyWorkbook()
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("occupancy-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", raw)
}
