// Package middleware provides Gin handlers that enforce privilege
// requirements on routes. The kit ships only the handlers; mounting
// them, authenticating requests, and running the server belong to the
// consuming service.
//
// Handlers expect an upstream authentication middleware to have stored
// the principal ID in the Gin context under PrincipalKey.
//
//	r.GET("/reports",
//	    middleware.RequireAccount(checker, "analytics", privilege.Read),
//	    listReports)
//
//	r.POST("/projects/:projectID/campaigns",
//	    middleware.RequireProject(checker, "projectID", "campaigns", privilege.Write),
//	    createCampaign)
package middleware
