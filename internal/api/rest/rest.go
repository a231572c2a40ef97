package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/universalnft/nft-bridge/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Read endpoints (public)
		v1.GET("/state", handler.GetState)
		v1.GET("/origins/:token_id", handler.GetOrigin)
		v1.GET("/chains/:chain_id", handler.GetChain)

		// One-time program setup (requires authentication)
		v1.POST("/initialize", middleware.Auth(authCfg), handler.Initialize)

		// Token operations (requires authentication)
		v1.POST("/tokens", middleware.Auth(authCfg), handler.MintToken)
		v1.POST("/transfers", middleware.Auth(authCfg), handler.CreateTransfer)
		v1.POST("/receive", middleware.Auth(authCfg), handler.Receive)

		// Admin endpoints (requires authentication; ownership is enforced
		// by the transfer service against the program state)
		admin := v1.Group("/admin", middleware.Auth(authCfg))
		{
			admin.POST("/pause", handler.Pause)
			admin.POST("/unpause", handler.Unpause)
			admin.PUT("/gateway", handler.SetGateway)
			admin.PUT("/gas-limit", handler.SetGasLimit)
			admin.PUT("/connected-contracts", handler.SetConnectedContract)
			admin.PUT("/nft-contract", handler.SetUniversalNFTContract)
		}
	}
}
