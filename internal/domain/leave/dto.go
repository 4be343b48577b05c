package leave

import (
	"strconv"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/validator"
)

type MonthlyCalendarRequest struct {
	Year  int
	Month int
}

// ParseMonthlyCalendarRequest reads year and month query values. Empty values fall back to the given defaults.
func ParseMonthlyCalendarRequest(yearStr, monthStr string, defaultYear, defaultMonth int) (MonthlyCalendarRequest, error) {
	var errs validator.ValidationErrors
	req := MonthlyCalendarRequest{Year: defaultYear, Month: defaultMonth}

	if !validator.IsEmpty(yearStr) {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: "year must be an integer",
			})
		}
		req.Year = year
	}
	if !validator.IsEmpty(monthStr) {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be an integer",
			})
		}
		req.Month = month
	}

	if len(errs) > 0 {
		return req, errs
	}
	return req, nil
}

type MonthlyCalendarResponse struct {
	Year     int              `json:"year"`
	Month    int              `json:"month"`
	Calendar [][]CalendarCell `json:"calendar"`
}
