package httpserver

import (
	"context"

	chatHTTP "smart-planner/internal/chat/delivery/http"
	"smart-planner/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupChatDomain wires the conversational planner domain and registers its
// routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, deps...)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	mw := middleware.New(srv.l, srv.rateLimit)

	h := chatHTTP.New(srv.l, srv.orchestrator, srv.calendar)

	// Registers /api/v1/chat and /api/v1/plan
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
