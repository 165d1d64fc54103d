// Package mcp serves the tool registry over MCP JSON-RPC so external agents
// can call screening tasks.
package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/logger"
	"github.com/hireflow/backend/models"
	"github.com/hireflow/backend/tools"
)

// Server answers MCP requests from the tool registry
type Server struct {
	registry *tools.ToolRegistry
	info     ServerInfo
	log      *logrus.Entry
}

// NewServer creates an MCP server announcing itself as name/version
func NewServer(registry *tools.ToolRegistry, name, version string) *Server {
	return &Server{
		registry: registry,
		info:     ServerInfo{Name: name, Version: version},
		log:      logger.For("MCP"),
	}
}

// RegisterRoutes mounts the JSON-RPC endpoint and its REST shortcuts
func (s *Server) RegisterRoutes(router gin.IRoutes) {
	router.POST("/mcp", s.HandleMCP)
	router.POST("/mcp/tools/list", s.HandleToolsList)
	router.POST("/mcp/tools/call", s.HandleToolsCall)
}

// HandleMCP handles MCP JSON-RPC requests
// @Summary MCP JSON-RPC endpoint
// @Description Handles initialize, tools/list and tools/call for external agents
// @Tags MCP
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body Request true "JSON-RPC request"
// @Success 200 {object} Response
// @Failure 401 {object} models.ErrorResponse
// @Router /mcp [post]
func (s *Server) HandleMCP(c *gin.Context) {
	resp := Response{JSONRPC: jsonRPCVersion}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error = &RPCError{Code: CodeParseError, Message: "Parse error", Data: err.Error()}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.ID = req.ID
	result, rpcErr := s.dispatch(c.Request.Context(), req)
	if rpcErr != nil {
		resp.Error = rpcErr
	} else {
		resp.Result = result
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) dispatch(ctx context.Context, req Request) (interface{}, *RPCError) {
	switch req.Method {
	case "initialize":
		return InitializeResult{
			ProtocolVersion: ProtocolVersion,
			Capabilities:    map[string]interface{}{"tools": map[string]interface{}{}},
			ServerInfo:      s.info,
		}, nil
	case "ping":
		return map[string]interface{}{}, nil
	case "tools/list":
		return s.list(), nil
	case "tools/call":
		var params CallParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return nil, &RPCError{Code: CodeInvalidParams, Message: "Invalid params", Data: err.Error()}
		}
		return s.call(ctx, params), nil
	}

	s.log.WithField("method", req.Method).Warn("unknown MCP method")
	return nil, &RPCError{Code: CodeMethodNotFound, Message: "Method not found"}
}

// HandleToolsList handles POST /mcp/tools/list
// @Summary List MCP tools
// @Tags MCP
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ListResult
// @Failure 401 {object} models.ErrorResponse
// @Router /mcp/tools/list [post]
func (s *Server) HandleToolsList(c *gin.Context) {
	c.JSON(http.StatusOK, s.list())
}

// HandleToolsCall handles POST /mcp/tools/call
// @Summary Call an MCP tool
// @Tags MCP
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CallParams true "Tool name and arguments"
// @Success 200 {object} CallResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /mcp/tools/call [post]
func (s *Server) HandleToolsCall(c *gin.Context) {
	var params CallParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request",
			Code:  http.StatusBadRequest,
		})
		return
	}
	c.JSON(http.StatusOK, s.call(c.Request.Context(), params))
}

func (s *Server) list() ListResult {
	defs := s.registry.Definitions()
	out := ListResult{Tools: make([]Tool, len(defs))}
	for i, def := range defs {
		out.Tools[i] = Tool{Name: def.Name, Description: def.Description, InputSchema: def.Parameters}
	}
	return out
}

// call runs a tool. Both a missing tool and a success=false result come
// back with isError set.
func (s *Server) call(ctx context.Context, params CallParams) CallResult {
	raw, err := s.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		return textResult(err.Error(), true)
	}
	return textResult(string(raw), tools.IsFailure(raw))
}
