// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/analyze": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["analysis"],
                "summary": "Analyze a document",
                "parameters": [
                    {"type": "file", "name": "file", "in": "formData"},
                    {"type": "string", "name": "blobUrl", "in": "formData"},
                    {"type": "string", "name": "blobKey", "in": "formData"},
                    {"type": "string", "name": "filename", "in": "formData"},
                    {"type": "string", "name": "contentType", "in": "formData"},
                    {"type": "string", "name": "provider", "in": "formData"},
                    {"type": "string", "name": "apiKey", "in": "formData"},
                    {"type": "string", "name": "model", "in": "formData"},
                    {"type": "boolean", "name": "save", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.AnalyzeOutput"}},
                    "400": {"description": "Missing file, unsupported type or text too short", "schema": {"$ref": "#/definitions/handler.AnalysisErrorResponse"}},
                    "500": {"description": "AI response could not be parsed", "schema": {"$ref": "#/definitions/handler.AnalysisErrorResponse"}},
                    "502": {"description": "Provider or blob download failure", "schema": {"$ref": "#/definitions/handler.AnalysisErrorResponse"}},
                    "503": {"description": "No provider configured", "schema": {"$ref": "#/definitions/handler.AnalysisErrorResponse"}}
                }
            }
        },
        "/analyses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analyses"],
                "summary": "List saved analyses",
                "parameters": [{"type": "integer", "default": 50, "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["analyses"],
                "summary": "Save an analysis",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateAnalysisRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "file_name and result are required", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["analyses"],
                "summary": "Clear the analysis history",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        },
        "/analyses/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analyses"],
                "summary": "Get a saved analysis",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["analyses"],
                "summary": "Delete a saved analysis",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/analyses/{id}/export": {
            "get": {
                "produces": ["text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["analyses"],
                "summary": "Export flashcards or quiz",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "string", "default": "csv", "name": "format", "in": "query"},
                    {"type": "string", "default": "flashcards", "name": "kind", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/explain": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["study"],
                "summary": "Explain a term",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ExplainRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Empty term", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/concepts/normalize": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["study"],
                "summary": "Normalize a key concept",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.NormalizeConceptRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Missing concept", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/blobs": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["blobs"],
                "summary": "Upload a document to blob storage",
                "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "503": {"description": "Blob storage disabled", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/providers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["providers"],
                "summary": "List configured providers",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        },
        "/providers/test": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["providers"],
                "summary": "Test provider credentials",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.TestProvidersRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        },
        "/quiz-sessions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "List quiz sessions",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Record a quiz session",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid session", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Clear the quiz history",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        }
    },
    "definitions": {
        "service.AnalyzeMeta": {
            "type": "object",
            "properties": {
                "provider": {"type": "string", "example": "google"},
                "model": {"type": "string", "example": "gemini-flash-latest"},
                "recordId": {"type": "integer"}
            }
        },
        "service.AnalyzeOutput": {
            "type": "object",
            "properties": {
                "result": {"type": "object"},
                "meta": {"$ref": "#/definitions/service.AnalyzeMeta"}
            }
        },
        "handler.AnalysisErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "text too short"},
                "code": {"type": "string", "example": "TEXT_TOO_SHORT"},
                "details": {"type": "string"}
            }
        },
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {},
                "meta": {}
            }
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/handler.APIError"}
            }
        },
        "handler.CreateAnalysisRequest": {
            "type": "object",
            "required": ["file_name", "result"],
            "properties": {
                "file_name": {"type": "string", "example": "aula-3.pdf"},
                "result": {"type": "object"}
            }
        },
        "handler.ExplainRequest": {
            "type": "object",
            "properties": {
                "term": {"type": "string", "example": "Lei de Ohm"},
                "provider": {"type": "string", "example": "google"},
                "apiKey": {"type": "string"},
                "model": {"type": "string", "example": "gemini-flash-latest"}
            }
        },
        "handler.NormalizeConceptRequest": {
            "type": "object",
            "properties": {
                "concept": {"type": "object"},
                "provider": {"type": "string"},
                "apiKey": {"type": "string"},
                "model": {"type": "string"}
            }
        },
        "handler.TestProvidersRequest": {
            "type": "object",
            "properties": {
                "providers": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object",
                        "properties": {"apiKey": {"type": "string"}}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "EstudaIA API",
	Description:      "Turns study documents into summaries, flashcards, quizzes and study plans.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
