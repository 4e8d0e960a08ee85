package pathe

import (
	"fmt"

	"github.com/pathewatch/pathewatch/internal/models"
)

// scheduleEndpoint is the fragment endpoint behind the public agenda page.
// It returns a bare HTML snippet, not a full document.
const scheduleEndpoint = "https://www.pathe.nl/cinema/schedules"

// ScheduleURL builds the schedules endpoint URL for one monitor request.
// The configured date is passed through verbatim; the endpoint expects
// DD-MM-YYYY, which config validation already guarantees.
func ScheduleURL(req models.MonitorRequest) string {
	return scheduleURLAt(scheduleEndpoint, req)
}

func scheduleURLAt(endpoint string, req models.MonitorRequest) string {
	return fmt.Sprintf("%s?cinemaId=%d&date=%s", endpoint, req.Cinema.ScheduleID(), req.Date)
}
