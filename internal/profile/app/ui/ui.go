//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Notifier=Notifier,Navigator=Navigator,Confirmer=Confirmer"
package ui

import "context"

const (
	SeverityDefault Severity = ""
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
)

const RouteDashboard Route = "/dashboard"

type (
	Severity string
	Route    string

	Notifier interface {
		Notify(ctx context.Context, msg string, severity Severity)
	}

	Navigator interface {
		Push(ctx context.Context, route Route)
	}

	// Confirmer asks the user a yes/no question and blocks until answered.
	Confirmer interface {
		Confirm(ctx context.Context, question string) bool
	}
)
