package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"nailstudio-backend/config"
	"nailstudio-backend/models"
	"nailstudio-backend/scheduling"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type ReportController struct{}

// GetScheduleReport exports the booked entries between two dates as an xlsx
// workbook. Admin only.
func (rc ReportController) GetScheduleReport(c *gin.Context) {
	from, err := utils.ParseDate(c.DefaultQuery("from", time.Now().Format(utils.DateLayout)))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	to, err := utils.ParseDate(c.DefaultQuery("to", from.AddDate(0, 0, 6).Format(utils.DateLayout)))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if to.Before(from) {
		utils.RespondWithError(c, http.StatusBadRequest, "'to' must not be before 'from'")
		return
	}

	var entries []models.Entry
	if err := config.DB.Preload("Services").Preload("User").
		Where("date BETWEEN ? AND ?", from.Format(utils.DateLayout), to.Format(utils.DateLayout)).
		Order("date, time").
		Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve entries")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Schedule"
	index, err := f.NewSheet(sheet)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("Schedule: %s - %s",
		from.Format(utils.DateLayout), to.Format(utils.DateLayout)))
	_ = f.MergeCell(sheet, "A1", "F1")
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err == nil {
		_ = f.SetCellStyle(sheet, "A1", "F1", style)
	}

	headers := []string{"Date", "Start", "End", "Duration (h)", "Client", "Services"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheet, cell, header)
	}

	for row, entry := range entries {
		end := entry.Time
		if interval, err := scheduling.IntervalOf(&entry); err == nil {
			end = interval.End.Format("15:04")
		}
		names := make([]string, 0, len(entry.Services))
		for _, service := range entry.Services {
			names = append(names, service.Name)
		}
		values := []interface{}{
			entry.Date.Format(utils.DateLayout),
			entry.Time,
			end,
			entry.TotalDuration(),
			entry.User.Username,
			strings.Join(names, ", "),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+3)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "D", 12)
	_ = f.SetColWidth(sheet, "E", "F", 25)

	filename := fmt.Sprintf("schedule_%s_%s.xlsx",
		from.Format(utils.DateLayout), to.Format(utils.DateLayout))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to write report")
	}
}
