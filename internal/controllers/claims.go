package controllers

import "github.com/gin-gonic/gin"

// Claim accessors for values RequireAuth stored on the context.
// JWT numeric claims decode as float64.

func claimUserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if f, ok := v.(float64); ok {
			return uint(f)
		}
	}
	return 0
}

func claimUID(c *gin.Context) string {
	if v, ok := c.Get("uid"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func claimRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// canActFor reports whether the requester may operate on rows belonging
// to the given uid: the owner themselves or any admin.
func canActFor(c *gin.Context, uid string) bool {
	return claimRole(c) == "admin" || claimUID(c) == uid
}

// canTouchOwner is the same check keyed by numeric user id.
func canTouchOwner(c *gin.Context, ownerID uint) bool {
	return claimRole(c) == "admin" || claimUserID(c) == ownerID
}
