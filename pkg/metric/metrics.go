//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Metrics=Metrics"
package metric

import "time"

type (
	Labels map[string]string

	Metrics interface {
		With(Labels) Metrics
		WithLabel(name, value string) Metrics
		Increment(key string)
		Duration(key string, duration time.Duration)
	}
)
