package config

import (
	"fmt"

	"github.com/pathewatch/pathewatch/internal/common/errorwrapper"
	"github.com/pathewatch/pathewatch/internal/models"
)

// MonitorRequestConfig is one raw `requests` entry from the configuration
// file. Cinema and date stay strings here so validation can report the
// offending value verbatim.
type MonitorRequestConfig struct {
	Cinema string `json:"cinema" yaml:"cinema" validate:"required,cinema"`
	Date   string `json:"date" yaml:"date" validate:"required,ddmmyyyy"`
	Movie  string `json:"movie" yaml:"movie" validate:"required"`
}

// ToMonitorRequest converts the raw entry into a domain request.
func (c MonitorRequestConfig) ToMonitorRequest() (models.MonitorRequest, error) {
	cinema, err := models.ParseCinema(c.Cinema)
	if err != nil {
		return models.MonitorRequest{}, errorwrapper.NewConfigError("cinema", c.Cinema, err.Error())
	}
	return models.MonitorRequest{
		Cinema: cinema,
		Date:   c.Date,
		Movie:  c.Movie,
	}, nil
}

// MonitorRequests converts every configured entry into domain requests.
// Call after ValidateConfig; conversion errors here mean validation was
// skipped.
func (gc *GlobalConfig) MonitorRequests() ([]models.MonitorRequest, error) {
	requests := make([]models.MonitorRequest, 0, len(gc.Requests))
	for i, rc := range gc.Requests {
		request, err := rc.ToMonitorRequest()
		if err != nil {
			return nil, errorwrapper.WrapError(err, fmt.Sprintf("invalid request at index %d", i))
		}
		requests = append(requests, request)
	}
	return requests, nil
}
