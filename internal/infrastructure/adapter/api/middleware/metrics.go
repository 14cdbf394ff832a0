package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/metrics"
)

// HTTPMetrics middleware counts requests and tracks in-flight requests per
// method. The route template is used as the path label so lock identifiers
// don't explode the cardinality.
func HTTPMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method

		m.HttpInFlight.WithLabelValues(method).Inc()
		defer m.HttpInFlight.WithLabelValues(method).Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.HttpTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
