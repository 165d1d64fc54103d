// Package docs holds the Swagger document served under /swagger. It is kept
// by hand in step with the swag annotations on main.go and the handlers;
// docs_test.go fails when a route or schema reference drifts.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/analyze/onboarding": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Onboarding plan",
                "parameters": [
                    {
                        "description": "New hire and role",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.OnboardingRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.OnboardingResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/analyze/portfolio": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Portfolio review",
                "parameters": [
                    {
                        "description": "Portfolio URL or projects",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.PortfolioRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.PortfolioResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/analyze/role-architect": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Role architect",
                "parameters": [
                    {
                        "description": "Business goals",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RoleArchitectRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RoleArchitectResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/analyze/video": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Interview recording review",
                "parameters": [
                    {
                        "description": "Interview transcript",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.VideoRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.VideoResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/candidates": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Candidates"
                ],
                "summary": "List candidates",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by status (Pending, Review, Shortlisted, Accepted, Rejected)",
                        "name": "status",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CandidateListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Candidates"
                ],
                "summary": "Create candidate",
                "parameters": [
                    {
                        "description": "Candidate",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CreateCandidateRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Candidate"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/candidates/export": {
            "get": {
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "Candidates"
                ],
                "summary": "Export candidates",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by status",
                        "name": "status",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/candidates/rescore": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Candidates"
                ],
                "summary": "Rescore candidates in bulk",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by status",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Scoring persona",
                        "name": "persona",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.BulkRescoreResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/candidates/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Candidates"
                ],
                "summary": "Candidate statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CandidateStats"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/candidates/upload": {
            "post": {
                "description": "Parse and score a resume, store the file and create a candidate. A database failure removes the stored file.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Candidates"
                ],
                "summary": "Upload resume",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Resume",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Job description",
                        "name": "job_description",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Role label",
                        "name": "role",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Candidate name, overrides the parsed name",
                        "name": "name",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Candidate email, overrides the parsed email",
                        "name": "email",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Scoring persona",
                        "name": "persona",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Company culture",
                        "name": "company_culture",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Candidate"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/candidates/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Candidates"
                ],
                "summary": "Get candidate",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Candidate ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Candidate"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes the stored resume and avatar when present, then the record",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Candidates"
                ],
                "summary": "Delete candidate",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Candidate ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/candidates/{id}/accept": {
            "post": {
                "description": "Idempotent: accepting an accepted candidate changes nothing",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Candidates"
                ],
                "summary": "Accept candidate",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Candidate ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Candidate"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/candidates/{id}/avatar": {
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Candidates"
                ],
                "summary": "Upload candidate avatar",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Candidate ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "Image (PNG, JPEG, WEBP, GIF)",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Candidate"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/candidates/{id}/reject": {
            "post": {
                "description": "Idempotent: rejecting a rejected candidate changes nothing",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Candidates"
                ],
                "summary": "Reject candidate",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Candidate ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Candidate"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/candidates/{id}/rescore": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Candidates"
                ],
                "summary": "Rescore candidate",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Candidate ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Scoring persona",
                        "name": "persona",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Candidate"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/candidates/{id}/resume": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Candidates"
                ],
                "summary": "Resume download link",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Candidate ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SignedURLResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/candidates/{id}/status": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Candidates"
                ],
                "summary": "Update candidate status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Candidate ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New status",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UpdateStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Candidate"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/chat": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Chat"
                ],
                "summary": "Recruiter assistant chat",
                "parameters": [
                    {
                        "description": "Chat message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.ChatRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.ChatResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/chat/candidate": {
            "post": {
                "description": "Role-play the candidate. With candidate_id and a transcript store the conversation is persisted.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Chat"
                ],
                "summary": "Candidate persona chat",
                "parameters": [
                    {
                        "description": "Chat message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CandidateChatRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CandidateChatResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/chat/candidate/{id}/history": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Chat"
                ],
                "summary": "Candidate chat history",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Candidate ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.TranscriptResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/embeddings": {
            "post": {
                "description": "Splits text into overlapping chunks, embeds each and mean-pools the vectors",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Text embedding",
                "parameters": [
                    {
                        "description": "Text to embed",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.EmbeddingRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.EmbeddingResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/generate/jd": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Generation"
                ],
                "summary": "Generate job description",
                "parameters": [
                    {
                        "description": "Role details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.JDRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.JDResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the server is running, which AI providers are configured (in fallback order) and whether chat transcripts are stored",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "System"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "Server is healthy",
                        "schema": {
                            "$ref": "#/definitions/models.HealthResponse"
                        }
                    }
                }
            }
        },
        "/interview/addon": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Screening"
                ],
                "summary": "Extra interview question",
                "parameters": [
                    {
                        "description": "Round and candidate",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.InterviewAddonRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.InterviewAddonResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/mcp": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Handles initialize, tools/list and tools/call for external agents",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "MCP"
                ],
                "summary": "MCP JSON-RPC endpoint",
                "parameters": [
                    {
                        "description": "JSON-RPC request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/mcp.Request"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/mcp.Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/mcp/tools/call": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "MCP"
                ],
                "summary": "Call an MCP tool",
                "parameters": [
                    {
                        "description": "Tool name and arguments",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/mcp.CallParams"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/mcp.CallResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/mcp/tools/list": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "MCP"
                ],
                "summary": "List MCP tools",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/mcp.ListResult"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/outreach": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Generation"
                ],
                "summary": "Draft outreach message",
                "parameters": [
                    {
                        "description": "Outreach details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.OutreachRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.OutreachResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/parsing": {
            "post": {
                "description": "Extract structured candidate data from a resume file. Falls back to a demo payload with \"demo\": true when every AI provider fails.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Screening"
                ],
                "summary": "Parse resume",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Resume (PDF, DOC, DOCX, RTF, ODT, TXT, MD)",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.ParseResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/predict/salary": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Predict salary range",
                "parameters": [
                    {
                        "description": "Role and candidate details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.SalaryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SalaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/recommendations": {
            "post": {
                "description": "Always 200 once the request is valid; when every AI provider fails the payload is a placeholder with an error marker.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Screening"
                ],
                "summary": "Hiring recommendation",
                "parameters": [
                    {
                        "description": "Recommendation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RecommendationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RecommendationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/scoring": {
            "post": {
                "description": "Score a candidate 0-100 against a job description. The analysis always carries 15 interview questions, 5 per round.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Screening"
                ],
                "summary": "Score candidate",
                "parameters": [
                    {
                        "description": "Scoring request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.ScoreRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.ScoreResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/scoring/batch": {
            "post": {
                "description": "Pick the strongest of two or more candidates. Fewer than two is rejected before any AI call.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Screening"
                ],
                "summary": "Compare candidates",
                "parameters": [
                    {
                        "description": "Candidates to compare",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.BatchScoreRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.BatchScoreResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/tools": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Get a list of all available MCP tools for AI agents",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tools"
                ],
                "summary": "List available tools",
                "responses": {
                    "200": {
                        "description": "List of tools",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/analyze": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Same contract as /scoring, authenticated with the x-api-key header",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Public API"
                ],
                "summary": "Analyze candidate (public API)",
                "parameters": [
                    {
                        "description": "Analyze request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.V1AnalyzeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.ScoreResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "mcp.CallParams": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "arguments": {
                    "type": "object"
                }
            }
        },
        "mcp.CallResult": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/mcp.Content"
                    }
                },
                "isError": {
                    "type": "boolean"
                }
            }
        },
        "mcp.Content": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                }
            }
        },
        "mcp.ListResult": {
            "type": "object",
            "properties": {
                "tools": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/mcp.Tool"
                    }
                }
            }
        },
        "mcp.RPCError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "data": {}
            }
        },
        "mcp.Request": {
            "type": "object",
            "properties": {
                "jsonrpc": {
                    "type": "string"
                },
                "id": {},
                "method": {
                    "type": "string"
                },
                "params": {
                    "type": "object"
                }
            }
        },
        "mcp.Response": {
            "type": "object",
            "properties": {
                "jsonrpc": {
                    "type": "string"
                },
                "id": {},
                "result": {},
                "error": {
                    "$ref": "#/definitions/mcp.RPCError"
                }
            }
        },
        "mcp.Tool": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "inputSchema": {
                    "type": "object",
                    "additionalProperties": {}
                }
            }
        },
        "models.Analysis": {
            "type": "object",
            "properties": {
                "sub_scores": {
                    "$ref": "#/definitions/models.SubScores"
                },
                "reasoning": {
                    "type": "string"
                },
                "summary": {
                    "type": "string"
                },
                "strengths": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "weaknesses": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "missing_skills": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "red_flags": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "interview_questions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.InterviewQuestion"
                    }
                },
                "culture_fit": {
                    "type": "string"
                },
                "growth_potential": {
                    "type": "string"
                },
                "persona": {
                    "type": "string"
                },
                "provider": {
                    "type": "string"
                }
            }
        },
        "models.BatchScoreRequest": {
            "type": "object",
            "properties": {
                "candidates": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "jd": {
                    "type": "string"
                }
            }
        },
        "models.BatchScoreResponse": {
            "type": "object",
            "properties": {
                "top_pick": {
                    "type": "string"
                },
                "winning_rationale": {
                    "type": "string"
                },
                "confidence": {
                    "$ref": "#/definitions/models.FlexibleInt"
                },
                "trade_offs": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                }
            }
        },
        "models.BulkRescoreResponse": {
            "type": "object",
            "properties": {
                "rescored": {
                    "type": "integer"
                },
                "failed": {
                    "type": "integer"
                },
                "skipped": {
                    "type": "integer"
                },
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.RescoreResult"
                    }
                }
            }
        },
        "models.Candidate": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "job_description": {
                    "type": "string"
                },
                "score": {
                    "description": "nil until the first scoring call",
                    "type": "integer"
                },
                "status": {
                    "$ref": "#/definitions/models.CandidateStatus"
                },
                "extracted_data": {
                    "$ref": "#/definitions/models.ExtractedData"
                },
                "analysis": {
                    "$ref": "#/definitions/models.Analysis"
                },
                "resume_url": {
                    "type": "string"
                },
                "resume_name": {
                    "type": "string"
                },
                "avatar_url": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.CandidateChatRequest": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "history": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.ChatTurn"
                    }
                },
                "candidate_data": {
                    "type": "object"
                },
                "candidate": {
                    "type": "object"
                },
                "candidate_id": {
                    "type": "string"
                }
            }
        },
        "models.CandidateChatResponse": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                }
            }
        },
        "models.CandidateListResponse": {
            "type": "object",
            "properties": {
                "candidates": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Candidate"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "models.CandidateStats": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "scored": {
                    "type": "integer"
                },
                "average_score": {
                    "type": "number"
                },
                "by_status": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                }
            }
        },
        "models.CandidateStatus": {
            "type": "string",
            "enum": [
                "Pending",
                "Review",
                "Shortlisted",
                "Accepted",
                "Rejected"
            ],
            "x-enum-varnames": [
                "StatusPending",
                "StatusReview",
                "StatusShortlisted",
                "StatusAccepted",
                "StatusRejected"
            ]
        },
        "models.ChatRequest": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "history": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.ChatTurn"
                    }
                },
                "candidate": {
                    "type": "object"
                }
            }
        },
        "models.ChatResponse": {
            "type": "object",
            "properties": {
                "role": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                }
            }
        },
        "models.ChatTurn": {
            "type": "object",
            "properties": {
                "role": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                }
            }
        },
        "models.ChunkingInfo": {
            "type": "object",
            "properties": {
                "total_chunks": {
                    "type": "integer"
                },
                "chunk_size": {
                    "type": "integer"
                },
                "overlap": {
                    "type": "integer"
                },
                "strategy": {
                    "type": "string"
                },
                "total_characters": {
                    "type": "integer"
                }
            }
        },
        "models.CreateCandidateRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "job_description": {
                    "type": "string"
                },
                "extracted_data": {
                    "$ref": "#/definitions/models.ExtractedData"
                }
            }
        },
        "models.EmbeddingRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                }
            }
        },
        "models.EmbeddingResponse": {
            "type": "object",
            "properties": {
                "embedding": {
                    "type": "array",
                    "items": {
                        "type": "number"
                    }
                },
                "model": {
                    "type": "string"
                },
                "chunking_info": {
                    "$ref": "#/definitions/models.ChunkingInfo"
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "code": {
                    "type": "integer"
                },
                "details": {
                    "type": "string"
                }
            }
        },
        "models.Experience": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "duration": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "models.ExtractedData": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "summary": {
                    "type": "string"
                },
                "skills": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "projects": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Project"
                    }
                },
                "experience": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Experience"
                    }
                },
                "education": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "career_level": {
                    "type": "string"
                },
                "links": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                }
            }
        },
        "models.FlexibleInt": {
            "type": "integer"
        },
        "models.FlexibleStringSlice": {
            "type": "array",
            "items": {
                "type": "string"
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "providers": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "transcripts_stored": {
                    "description": "Whether candidate chat transcripts are persisted",
                    "type": "boolean"
                }
            }
        },
        "models.InterviewAddonRequest": {
            "type": "object",
            "properties": {
                "jd": {
                    "type": "string"
                },
                "candidate_data": {
                    "type": "object"
                },
                "round": {
                    "type": "string"
                },
                "user_query": {
                    "type": "string"
                }
            }
        },
        "models.InterviewAddonResponse": {
            "type": "object",
            "properties": {
                "round": {
                    "type": "string"
                },
                "question": {
                    "type": "string"
                },
                "expected_answer": {
                    "type": "string"
                }
            }
        },
        "models.InterviewQuestion": {
            "type": "object",
            "properties": {
                "round": {
                    "type": "string"
                },
                "question": {
                    "type": "string"
                },
                "expected_answer": {
                    "type": "string"
                }
            }
        },
        "models.JDRequest": {
            "type": "object",
            "properties": {
                "role_title": {
                    "type": "string"
                },
                "key_requirements": {
                    "type": "string"
                },
                "company_context": {
                    "type": "string"
                },
                "tone": {
                    "type": "string"
                }
            }
        },
        "models.JDResponse": {
            "type": "object",
            "properties": {
                "summary": {
                    "type": "string"
                },
                "responsibilities": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "required_skills": {
                    "$ref": "#/definitions/models.RequiredSkills"
                },
                "preferred": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "about_company": {
                    "type": "string"
                }
            }
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "models.OnboardingRequest": {
            "type": "object",
            "properties": {
                "candidate_data": {
                    "type": "object"
                },
                "role": {
                    "type": "string"
                },
                "team_context": {
                    "type": "string"
                }
            }
        },
        "models.OnboardingResponse": {
            "type": "object",
            "properties": {
                "first_30_days": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "first_60_days": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "first_90_days": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "training_focus": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "mentorship": {
                    "type": "string"
                },
                "risks": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                }
            }
        },
        "models.OutreachRequest": {
            "type": "object",
            "properties": {
                "candidate_name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "company_name": {
                    "type": "string"
                },
                "channel": {
                    "type": "string"
                },
                "tone": {
                    "type": "string"
                },
                "candidate_data": {
                    "type": "object"
                }
            }
        },
        "models.OutreachResponse": {
            "type": "object",
            "properties": {
                "channel": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "follow_up": {
                    "type": "string"
                }
            }
        },
        "models.ParseResponse": {
            "type": "object",
            "properties": {
                "filename": {
                    "type": "string"
                },
                "parsed_data": {
                    "$ref": "#/definitions/models.ExtractedData"
                },
                "provider": {
                    "type": "string"
                },
                "demo": {
                    "type": "boolean"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "models.PortfolioRequest": {
            "type": "object",
            "properties": {
                "portfolio_url": {
                    "type": "string"
                },
                "github_url": {
                    "type": "string"
                },
                "projects": {
                    "type": "object"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "models.PortfolioResponse": {
            "type": "object",
            "properties": {
                "overall_score": {
                    "$ref": "#/definitions/models.FlexibleInt"
                },
                "technical_depth": {
                    "type": "string"
                },
                "code_quality": {
                    "type": "string"
                },
                "project_highlights": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "concerns": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "verdict": {
                    "type": "string"
                }
            }
        },
        "models.Project": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "technologies": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                }
            }
        },
        "models.RecommendationRequest": {
            "type": "object",
            "properties": {
                "candidate": {
                    "type": "object"
                },
                "jobDescription": {
                    "type": "string"
                }
            }
        },
        "models.RecommendationResponse": {
            "type": "object",
            "properties": {
                "recommendation": {
                    "type": "string"
                },
                "confidence": {
                    "$ref": "#/definitions/models.FlexibleInt"
                },
                "reasoning": {
                    "type": "string"
                },
                "candidate_feedback": {
                    "type": "string"
                },
                "next_steps": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "red_flags": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "highlights": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "models.RequiredSkills": {
            "type": "object",
            "properties": {
                "technical": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "soft": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                }
            }
        },
        "models.RescoreResult": {
            "type": "object",
            "properties": {
                "candidate_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "score": {
                    "type": "integer"
                },
                "skipped": {
                    "type": "boolean"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "models.RoleArchitectRequest": {
            "type": "object",
            "properties": {
                "business_goals": {
                    "type": "string"
                },
                "team_size": {
                    "type": "integer"
                },
                "stage": {
                    "type": "string"
                },
                "budget": {
                    "type": "string"
                }
            }
        },
        "models.RoleArchitectResponse": {
            "type": "object",
            "properties": {
                "role_title": {
                    "type": "string"
                },
                "seniority": {
                    "type": "string"
                },
                "rationale": {
                    "type": "string"
                },
                "key_responsibilities": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "must_have_skills": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "nice_to_have_skills": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "success_metrics": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                }
            }
        },
        "models.SalaryRequest": {
            "type": "object",
            "properties": {
                "role": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "experience_years": {
                    "type": "number"
                },
                "skills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "candidate_data": {
                    "type": "object"
                }
            }
        },
        "models.SalaryResponse": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string"
                },
                "min": {
                    "$ref": "#/definitions/models.FlexibleInt"
                },
                "median": {
                    "$ref": "#/definitions/models.FlexibleInt"
                },
                "max": {
                    "$ref": "#/definitions/models.FlexibleInt"
                },
                "confidence": {
                    "$ref": "#/definitions/models.FlexibleInt"
                },
                "factors": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "market_insight": {
                    "type": "string"
                }
            }
        },
        "models.ScoreRequest": {
            "type": "object",
            "properties": {
                "jd": {
                    "type": "string"
                },
                "candidate_data": {
                    "type": "object"
                },
                "persona": {
                    "type": "string"
                },
                "company_culture": {
                    "type": "string"
                }
            }
        },
        "models.ScoreResponse": {
            "type": "object",
            "properties": {
                "score": {
                    "type": "integer"
                },
                "recommendation": {
                    "type": "string"
                },
                "confidence": {
                    "type": "integer"
                },
                "analysis": {
                    "$ref": "#/definitions/models.Analysis"
                }
            }
        },
        "models.SignedURLResponse": {
            "type": "object",
            "properties": {
                "url": {
                    "type": "string"
                },
                "expires_at": {
                    "type": "string"
                }
            }
        },
        "models.SubScores": {
            "type": "object",
            "properties": {
                "technical_skills": {
                    "$ref": "#/definitions/models.FlexibleInt"
                },
                "experience": {
                    "$ref": "#/definitions/models.FlexibleInt"
                },
                "education": {
                    "$ref": "#/definitions/models.FlexibleInt"
                },
                "culture_fit": {
                    "$ref": "#/definitions/models.FlexibleInt"
                },
                "communication": {
                    "$ref": "#/definitions/models.FlexibleInt"
                }
            }
        },
        "models.TranscriptResponse": {
            "type": "object",
            "properties": {
                "candidate_id": {
                    "type": "string"
                },
                "history": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.ChatTurn"
                    }
                }
            }
        },
        "models.UpdateStatusRequest": {
            "type": "object",
            "required": [
                "status"
            ],
            "properties": {
                "status": {
                    "type": "string"
                }
            }
        },
        "models.V1AnalyzeRequest": {
            "type": "object",
            "properties": {
                "jd": {
                    "type": "string"
                },
                "candidate": {
                    "type": "object"
                },
                "candidate_data": {
                    "type": "object"
                },
                "persona": {
                    "type": "string"
                },
                "company_culture": {
                    "type": "string"
                }
            }
        },
        "models.VideoRequest": {
            "type": "object",
            "properties": {
                "transcript": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "candidate_name": {
                    "type": "string"
                }
            }
        },
        "models.VideoResponse": {
            "type": "object",
            "properties": {
                "communication_score": {
                    "$ref": "#/definitions/models.FlexibleInt"
                },
                "confidence_score": {
                    "$ref": "#/definitions/models.FlexibleInt"
                },
                "clarity": {
                    "type": "string"
                },
                "key_moments": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "concerns": {
                    "$ref": "#/definitions/models.FlexibleStringSlice"
                },
                "summary": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "Shared secret for the public API and MCP endpoints.",
            "type": "apiKey",
            "name": "x-api-key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "HireFlow API",
	Description:      "AI-assisted resume screening backend: parsing, scoring, candidate management and recruiting content generation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
