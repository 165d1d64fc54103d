package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swaggerDoc struct {
	BasePath    string                                `json:"basePath"`
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func readDoc(t *testing.T) (swaggerDoc, string) {
	t.Helper()
	raw := SwaggerInfo.ReadDoc()

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc, raw
}

var refPattern = regexp.MustCompile(`"\$ref":\s*"#/definitions/([^"]+)"`)

func TestDoc_ReferencesResolve(t *testing.T) {
	doc, raw := readDoc(t)
	assert.Equal(t, "/api", doc.BasePath)

	refs := refPattern.FindAllStringSubmatch(raw, -1)
	require.NotEmpty(t, refs)
	for _, ref := range refs {
		assert.Contains(t, doc.Definitions, ref[1], "dangling $ref")
	}
}

var routePattern = regexp.MustCompile(`// @Router\s+(\S+)\s+\[(\w+)\]`)

func TestDoc_MatchesRouteAnnotations(t *testing.T) {
	doc, _ := readDoc(t)

	files, err := filepath.Glob("../handlers/*.go")
	require.NoError(t, err)
	files = append(files, "../mcp/server.go")

	annotated := 0
	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		src, err := os.ReadFile(file)
		require.NoError(t, err)

		for _, m := range routePattern.FindAllStringSubmatch(string(src), -1) {
			annotated++
			ops, ok := doc.Paths[m[1]]
			if assert.True(t, ok, "path %s missing from doc", m[1]) {
				assert.Contains(t, ops, strings.ToLower(m[2]), "%s %s missing from doc", m[2], m[1])
			}
		}
	}

	documented := 0
	for _, ops := range doc.Paths {
		documented += len(ops)
	}
	assert.Equal(t, annotated, documented)
}

func TestDoc_AnalyzeSchemas(t *testing.T) {
	doc, _ := readDoc(t)

	var op struct {
		Parameters []struct {
			In     string `json:"in"`
			Schema struct {
				Ref string `json:"$ref"`
			} `json:"schema"`
		} `json:"parameters"`
		Responses map[string]struct {
			Schema struct {
				Ref string `json:"$ref"`
			} `json:"schema"`
		} `json:"responses"`
		Security []map[string][]string `json:"security"`
	}
	require.NoError(t, json.Unmarshal(doc.Paths["/v1/analyze"]["post"], &op))

	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "body", op.Parameters[0].In)
	assert.Equal(t, "#/definitions/models.V1AnalyzeRequest", op.Parameters[0].Schema.Ref)
	assert.Equal(t, "#/definitions/models.ScoreResponse", op.Responses["200"].Schema.Ref)
	assert.Equal(t, "#/definitions/models.ErrorResponse", op.Responses["401"].Schema.Ref)
	require.Len(t, op.Security, 1)
	assert.Contains(t, op.Security[0], "ApiKeyAuth")

	var status struct {
		Enum []string `json:"enum"`
	}
	require.NoError(t, json.Unmarshal(doc.Definitions["models.CandidateStatus"], &status))
	assert.Equal(t, []string{"Pending", "Review", "Shortlisted", "Accepted", "Rejected"}, status.Enum)
}
