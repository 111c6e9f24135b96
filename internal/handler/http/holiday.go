package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/holiday"
	"github.com/khanyisa-hr/workforce-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	ListForYear(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	calendar holiday.Calendar
}

func NewHolidayHandler(calendar holiday.Calendar) HolidayHandler {
	return &holidayHandlerImpl{
		calendar: calendar,
	}
}

type holidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// ListForYear implements HolidayHandler.
func (h *holidayHandlerImpl) ListForYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1900 || year > 2200 {
		response.BadRequest(w, "Year must be a number between 1900 and 2200", nil)
		return
	}

	holidays := h.calendar.GenerateForYear(year)

	out := make([]holidayResponse, 0, len(holidays))
	for _, ph := range holidays {
		out = append(out, holidayResponse{
			Date: ph.Date.Format("2006-01-02"),
			Name: ph.Name,
		})
	}

	response.Success(w, out)
}
