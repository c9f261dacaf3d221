package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// orgIDFromContext reads the canonical organisation id placed in the context
// by RequireAuth. JWT numbers decode as float64. A zero or missing id means
// the token carries no tenant context, which is a 403 everywhere.
func orgIDFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get("organisation_id")
	if !exists {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok || f <= 0 {
		return 0, false
	}
	return uint(f), true
}

// requireOrgID aborts with the uniform 403 when the token has no resolvable
// tenant. Every scoped controller calls this before touching the database.
func requireOrgID(c *gin.Context) (uint, bool) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No organisation context"})
		return 0, false
	}
	return orgID, true
}

// isUniqueViolation matches Postgres unique-constraint failures both through
// GORM's translated error and the raw driver error code.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// scopedList applies the tenant filter, newest-first ordering and the
// optional limit/offset query parameters shared by every list endpoint.
func scopedList(c *gin.Context, db *gorm.DB, orgID uint) *gorm.DB {
	q := db.Where("organisation_id = ?", orgID).Order("created_at DESC")
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		q = q.Limit(limit)
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset > 0 {
		q = q.Offset(offset)
	}
	return q
}

// clampNonNegative defaults absent or negative numeric input to 0.
func clampNonNegative(v *int) int {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}
