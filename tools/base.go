// Package tools exposes screening tasks as named tools for external agents.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/logger"
)

// ErrToolNotFound is returned by Call for an unregistered name
var ErrToolNotFound = errors.New("tool not found")

// Tool is one callable screening task
type Tool interface {
	// Name is the identifier agents call the tool by
	Name() string

	// Description tells the agent when to use the tool
	Description() string

	// InputSchema is the JSON schema of the arguments object
	InputSchema() map[string]interface{}

	// Execute runs the tool. Task failures are reported inside the result
	// (success=false); a returned error means the tool itself broke.
	Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error)
}

// Definition describes a tool in function-calling format
type Definition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ToolRegistry holds the tools served to agents
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	log   *logrus.Entry
}

// NewToolRegistry creates an empty registry
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
		log:   logger.For("Tools"),
	}
}

// Register adds tools, replacing any tool with the same name
func (r *ToolRegistry) Register(tools ...Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tool := range tools {
		r.tools[tool.Name()] = tool
	}
}

// Get looks a tool up by name
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns the registered tools sorted by name
func (r *ToolRegistry) List() []Tool {
	r.mu.RLock()
	list := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		list = append(list, tool)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// Definitions describes every registered tool, sorted by name
func (r *ToolRegistry) Definitions() []Definition {
	list := r.List()
	defs := make([]Definition, 0, len(list))
	for _, tool := range list {
		defs = append(defs, Definition{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.InputSchema(),
		})
	}
	return defs
}

// Call runs the named tool. Missing arguments are passed as an empty object.
func (r *ToolRegistry) Call(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}

	log := r.log.WithField("tool", name)
	start := time.Now()

	result, err := tool.Execute(ctx, args)
	if err != nil {
		log.WithError(err).Error("tool failed")
		return nil, err
	}

	log.WithField("duration", time.Since(start).String()).Info("tool completed")
	return result, nil
}

// Result is the envelope every tool returns
type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Succeed wraps data in a successful result
func Succeed(data interface{}) (json.RawMessage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool output: %w", err)
	}
	return json.Marshal(Result{Success: true, Data: raw})
}

// Fail builds a result reporting a task failure
func Fail(message string) (json.RawMessage, error) {
	return json.Marshal(Result{Success: false, Error: message})
}

// IsFailure reports whether raw is a result with success=false
func IsFailure(raw json.RawMessage) bool {
	var res Result
	return json.Unmarshal(raw, &res) == nil && !res.Success
}

func objectSchema(required []string, properties map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func property(kind, description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        kind,
		"description": description,
	}
}
