package handlers

import (
	"net/http"
	"strings"

	"societyhub/pkg"

	"github.com/gin-gonic/gin"
)

// Upstream auth (API gateway / Cognito authorizer) injects the caller's
// identity in this header. Handlers never parse tokens themselves.
const userIDHeader = "X-User-Id"

var errMissingActor = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing "+userIDHeader+" header", http.StatusUnauthorized)

func actorID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(userIDHeader))
}

// requireActor resolves the caller's user id or writes a 401 and returns
// false.
func requireActor(c *gin.Context) (string, bool) {
	id := actorID(c)
	if id == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return "", false
	}
	return id, true
}
