package ports

import "time"

type MetricsProvider interface {
	IncrementHTTPRequests(method, route, status string)
	RecordHTTPRequestDuration(method, route, status string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementPostOperations(operation string, success bool)
	IncrementUserOperations(operation string, success bool)
	IncrementAuthAttempts(success bool)
	IncrementSessionOperations(operation string, success bool)
	RecordCascadeDeletedPosts(count int64)

	SetServiceHealth(healthy bool)
}
