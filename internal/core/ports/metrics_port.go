package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
	RecordBackendCall(operation string, outcome string, start time.Time)
}
