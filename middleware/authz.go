package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/grantkit/authz"
	"github.com/skillsenselab/grantkit/errors"
	"github.com/skillsenselab/grantkit/privilege"
)

// PrincipalKey is the Gin context key where upstream authentication
// middleware stores the principal ID.
const PrincipalKey = "principal_id"

// RequireAccount returns a middleware that aborts unless the request's
// principal holds at least min on the account-domain area.
func RequireAccount(checker authz.Checker, area string, min privilege.AccessLevel) gin.HandlerFunc {
	return func(c *gin.Context) {
		principalID := c.GetString(PrincipalKey)
		if principalID == "" {
			abortWith(c, errors.Unauthorized(""))
			return
		}

		granted, err := checker.HasAccountPrivilege(c.Request.Context(), principalID, area, min)
		if err != nil {
			abortWith(c, errors.Internal(err))
			return
		}
		if !granted {
			abortWith(c, errors.Forbidden(""))
			return
		}
		c.Next()
	}
}

// RequireProject returns a middleware that aborts unless the request's
// principal holds at least min on the project-domain area within the
// project named by the contextParam route parameter.
func RequireProject(checker authz.Checker, contextParam, area string, min privilege.AccessLevel) gin.HandlerFunc {
	return func(c *gin.Context) {
		principalID := c.GetString(PrincipalKey)
		if principalID == "" {
			abortWith(c, errors.Unauthorized(""))
			return
		}

		contextID := c.Param(contextParam)
		if contextID == "" {
			abortWith(c, errors.MissingField(contextParam))
			return
		}

		granted, err := checker.HasProjectPrivilege(c.Request.Context(), principalID, contextID, area, min)
		if err != nil {
			abortWith(c, errors.Internal(err))
			return
		}
		if !granted {
			abortWith(c, errors.Forbidden(""))
			return
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, err *errors.AppError) {
	status := err.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, err.ToResponse())
}
