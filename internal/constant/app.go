package constant

import "time"

const (
	QUERY_TIMEOUT_DURATION = 5 * time.Second

	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"
)

const (
	DefaultPage     uint = 1
	DefaultPageSize uint = 10
	MaxPageSize     uint = 100
)
