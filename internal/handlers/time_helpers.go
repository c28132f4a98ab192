package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// --------------------------------------------------
// Shared parsing helpers
// --------------------------------------------------

// All engine math runs in UTC. Dates and datetimes on the wire are
// interpreted there regardless of the server's local zone.

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, time.UTC)
}

func parseDateTime(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", value, time.UTC)
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
