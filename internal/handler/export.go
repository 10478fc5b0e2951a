package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Bookings"

// ExportBookedRooms streams the current ledger as an xlsx workbook.
func (h *Handler) ExportBookedRooms(c echo.Context) error {
	rooms := h.bookingSvc.BookedRooms(c.Request().Context())

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []interface{}{"Booking ID", "Client ID", "Start date", "End date", "Booked on", "Price"}
	if err := f.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	for i, room := range rooms {
		row := []interface{}{
			room.BookingID,
			room.ClientID,
			room.StartDate.String(),
			room.EndDate.String(),
			room.BookedOn.String(),
			room.Price,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().UTC().Format(time.DateOnly))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
