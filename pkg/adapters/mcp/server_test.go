package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/registry"
	"github.com/aretw0/automata/pkg/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg, err := registry.NewDefault(5, 3)
	require.NoError(t, err)
	return NewServer(service.New(reg, service.WithStore(memory.NewStore())))
}

func callTool(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)
	return text.Text
}

func TestEvaluateTool(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		automaton string
		input     string
		message   string
		accepted  bool
	}{
		{registry.ModCounter, "000001110000011100000", "Accepted", true},
		{registry.ModCounter, "0a", "Unknown symbol found. Rejected", false},
		{registry.EpsilonAB, "", "Accepted", true},
		{registry.EpsilonAB, "b", "Rejected", false},
	}

	for _, tt := range tests {
		t.Run(tt.automaton+"/"+tt.input, func(t *testing.T) {
			res, err := s.handleEvaluate(context.Background(), callTool("evaluate", map[string]any{
				"automaton": tt.automaton,
				"input":     tt.input,
			}))
			require.NoError(t, err)
			assert.False(t, res.IsError)

			var payload map[string]any
			require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
			assert.Equal(t, tt.message, payload["message"])
			assert.Equal(t, tt.accepted, payload["accepted"])
			assert.Equal(t, tt.automaton, payload["automaton"])
		})
	}
}

func TestEvaluateTool_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		args map[string]any
	}{
		{"Unknown Automaton", map[string]any{"automaton": "nope", "input": "0"}},
		{"Missing Input", map[string]any{"automaton": registry.ModCounter}},
		{"Missing Automaton", map[string]any{"input": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.handleEvaluate(context.Background(), callTool("evaluate", tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestListAutomataTool(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleList(context.Background(), callTool("list_automata", nil))
	require.NoError(t, err)

	var entries []registry.Entry
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, registry.EpsilonAB, entries[0].Name)
	assert.Equal(t, registry.KindDeterministic, entries[1].Kind)
}

func TestCatalogResource(t *testing.T) {
	s := newTestServer(t)

	contents, err := s.handleCatalog(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, CatalogURI, text.URI)
	assert.Contains(t, text.Text, registry.ModCounter)
}

func TestToolsAreRegistered(t *testing.T) {
	s := newTestServer(t)

	resp := s.MCPServer().HandleMessage(context.Background(),
		json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	var names []string
	for _, tool := range decoded.Result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"evaluate", "list_automata"}, names)
}
