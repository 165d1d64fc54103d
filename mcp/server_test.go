package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/backend/tools"
)

type echoTool struct{}

func (echoTool) Name() string                        { return "echo" }
func (echoTool) Description() string                 { return "Echo the input" }
func (echoTool) InputSchema() map[string]interface{} { return map[string]interface{}{"type": "object"} }

func (echoTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in struct {
		Fail bool `json:"fail"`
	}
	_ = json.Unmarshal(input, &in)
	if in.Fail {
		return tools.Fail("asked to fail")
	}
	return tools.Succeed(json.RawMessage(input))
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	registry := tools.NewToolRegistry()
	registry.Register(echoTool{})

	r := gin.New()
	NewServer(registry, "hireflow", "1.0.0").RegisterRoutes(r.Group("/api"))
	return r
}

func post(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleMCP_Initialize(t *testing.T) {
	w := post(t, newTestRouter(), "/api/mcp", `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID     int              `json:"id"`
		Result InitializeResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, ProtocolVersion, resp.Result.ProtocolVersion)
	assert.Equal(t, "hireflow", resp.Result.ServerInfo.Name)
}

func TestHandleMCP_ToolsList(t *testing.T) {
	w := post(t, newTestRouter(), "/api/mcp", `{"jsonrpc":"2.0","id":"a","method":"tools/list"}`)

	var resp struct {
		Result ListResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Result.Tools, 1)
	assert.Equal(t, "echo", resp.Result.Tools[0].Name)
}

func TestHandleMCP_ToolsCall(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, "/api/mcp", `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"echo","arguments":{"x":1}}}`)
	var resp struct {
		Result CallResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Result.IsError)
	require.Len(t, resp.Result.Content, 1)
	assert.JSONEq(t, `{"success":true,"data":{"x":1}}`, resp.Result.Content[0].Text)

	w = post(t, r, "/api/mcp", `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"echo","arguments":{"fail":true}}}`)
	resp.Result = CallResult{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Result.IsError)

	w = post(t, r, "/api/mcp", `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"missing"}}`)
	resp.Result = CallResult{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Result.IsError)
	assert.Equal(t, "tool not found: missing", resp.Result.Content[0].Text)
}

func TestHandleMCP_Errors(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, "/api/mcp", `{"jsonrpc":"2.0","id":5,"method":"resources/list"}`)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeMethodNotFound, resp.Error.Code)

	w = post(t, r, "/api/mcp", `{not json`)
	resp = Response{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeParseError, resp.Error.Code)
}

func TestRESTEndpoints(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, "/api/mcp/tools/list", ``)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"echo"`)

	w = post(t, r, "/api/mcp/tools/call", `{"name":"echo","arguments":{"y":2}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var result CallResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.IsError)

	w = post(t, r, "/api/mcp/tools/call", `[]`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleMCP_PingAndInvalidParams(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, "/api/mcp", `{"jsonrpc":"2.0","id":6,"method":"ping"}`)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":6,"result":{}}`, w.Body.String())

	w = post(t, r, "/api/mcp", `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":[1]}`)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidParams, resp.Error.Code)
	assert.Nil(t, resp.Result)
}
