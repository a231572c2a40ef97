package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/universalnft/nft-bridge/internal/api/middleware"
	"github.com/universalnft/nft-bridge/internal/chains"
	"github.com/universalnft/nft-bridge/internal/domain"
	"github.com/universalnft/nft-bridge/internal/transfer"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// Initialize creates the program state
	// POST /api/v1/initialize
	Initialize(c *gin.Context)

	// MintToken mints a new token on this chain
	// POST /api/v1/tokens
	MintToken(c *gin.Context)

	// CreateTransfer burns a token and relays it to another chain
	// POST /api/v1/transfers
	CreateTransfer(c *gin.Context)

	// Receive applies an inbound cross-chain message directly, bypassing
	// the gateway stream. Intended for integration testing.
	// POST /api/v1/receive
	Receive(c *gin.Context)

	// GetState returns the program state
	// GET /api/v1/state
	GetState(c *gin.Context)

	// GetOrigin returns a token's origin record
	// GET /api/v1/origins/:token_id
	GetOrigin(c *gin.Context)

	// GetChain returns the registry entry for a chain id
	// GET /api/v1/chains/:chain_id
	GetChain(c *gin.Context)

	// Pause blocks all transfer operations
	// POST /api/v1/admin/pause
	Pause(c *gin.Context)

	// Unpause lifts the pause
	// POST /api/v1/admin/unpause
	Unpause(c *gin.Context)

	// SetGateway updates the gateway address
	// PUT /api/v1/admin/gateway
	SetGateway(c *gin.Context)

	// SetGasLimit updates the default outbound gas budget
	// PUT /api/v1/admin/gas-limit
	SetGasLimit(c *gin.Context)

	// SetConnectedContract registers the counterpart contract for a gas token
	// PUT /api/v1/admin/connected-contracts
	SetConnectedContract(c *gin.Context)

	// SetUniversalNFTContract updates the counterpart NFT contract
	// PUT /api/v1/admin/nft-contract
	SetUniversalNFTContract(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	service transfer.Service
}

// NewHandler creates a new REST API handler
func NewHandler(service transfer.Service) Handler {
	return &handler{
		service: service,
	}
}

// Initialize creates the program state
func (h *handler) Initialize(c *gin.Context) {
	var req InitializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	state, err := h.service.Initialize(c.Request.Context(), transfer.InitializeParams{
		Owner:                req.Owner,
		Gateway:              req.Gateway,
		UniversalNFTContract: req.UniversalNFTContract,
		GasLimit:             req.GasLimit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stateResponse(state))
}

// MintToken mints a new token on this chain
func (h *handler) MintToken(c *gin.Context) {
	var req MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	owner := req.Owner
	if owner == "" {
		owner = middleware.CallerAddress(c)
	}

	unit, err := h.service.Mint(c.Request.Context(), owner, req.URI, *req.ExpectedCounter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tokenResponse(unit))
}

// CreateTransfer burns a token and relays it to another chain
func (h *handler) CreateTransfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	err := h.service.Transfer(
		c.Request.Context(),
		middleware.CallerAddress(c),
		req.TokenID,
		domain.ChainID(req.DestinationChain),
		req.Receiver,
		req.GasLimit,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"token_id":          req.TokenID,
		"destination_chain": req.DestinationChain,
		"receiver":          req.Receiver,
	})
}

// Receive applies an inbound cross-chain message directly
func (h *handler) Receive(c *gin.Context) {
	var req ReceiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	err := h.service.OnCall(c.Request.Context(), domain.ChainID(req.SourceChain), req.Sender, req.ZRC20, req.Amount, req.Payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"source_chain": req.SourceChain})
}

// GetState returns the program state
func (h *handler) GetState(c *gin.Context) {
	state, err := h.service.State(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stateResponse(state))
}

// GetOrigin returns a token's origin record
func (h *handler) GetOrigin(c *gin.Context) {
	tokenID, err := strconv.ParseUint(c.Param("token_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid token id")
		return
	}

	origin, err := h.service.Origin(c.Request.Context(), tokenID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, originResponse(origin))
}

// GetChain returns the registry entry for a chain id
func (h *handler) GetChain(c *gin.Context) {
	chainID, err := strconv.ParseUint(c.Param("chain_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid chain id")
		return
	}

	c.JSON(http.StatusOK, ChainResponse{
		ChainID: chainID,
		Name:    chains.Name(domain.ChainID(chainID)),
	})
}

// Pause blocks all transfer operations
func (h *handler) Pause(c *gin.Context) {
	if err := h.service.Pause(c.Request.Context(), middleware.CallerAddress(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paused": true})
}

// Unpause lifts the pause
func (h *handler) Unpause(c *gin.Context) {
	if err := h.service.Unpause(c.Request.Context(), middleware.CallerAddress(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paused": false})
}

// SetGateway updates the gateway address
func (h *handler) SetGateway(c *gin.Context) {
	var req SetAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.service.SetGateway(c.Request.Context(), middleware.CallerAddress(c), req.Address); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gateway": req.Address})
}

// SetGasLimit updates the default outbound gas budget
func (h *handler) SetGasLimit(c *gin.Context) {
	var req SetGasLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.service.SetGasLimit(c.Request.Context(), middleware.CallerAddress(c), req.GasLimit); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gas_limit": req.GasLimit})
}

// SetConnectedContract registers the counterpart contract for a gas token
func (h *handler) SetConnectedContract(c *gin.Context) {
	var req SetConnectedContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	err := h.service.SetConnectedContract(
		c.Request.Context(),
		middleware.CallerAddress(c),
		req.ZRC20,
		req.Address,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"zrc20": req.ZRC20, "address": req.Address})
}

// SetUniversalNFTContract updates the counterpart NFT contract
func (h *handler) SetUniversalNFTContract(c *gin.Context) {
	var req SetAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.service.SetUniversalNFTContract(c.Request.Context(), middleware.CallerAddress(c), req.Address); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"universal_nft_contract": req.Address})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "nft-bridge",
	})
}
