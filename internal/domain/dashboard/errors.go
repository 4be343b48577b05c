package dashboard

import "errors"

var (
	ErrDashboardUnavailable = errors.New("could not load dashboard")
)
