// Package docs registers the OpenAPI document served under /api/docs.
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
        "/api/ask": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Ask the assistant a question",
                "parameters": [
                    {
                        "description": "Student question",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/chat.QuestionRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/chat.AnswerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/api/topics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Topics"],
                "summary": "List available topics",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/topic.Topic"}}}
                }
            }
        },
        "/api/topics/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Topics"],
                "summary": "Get one topic",
                "parameters": [
                    {"type": "string", "description": "Topic id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/topic.Topic"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Response"}}
                }
            }
        }
    },
    "definitions": {
        "chat.AnswerResponse": {
            "type": "object",
            "properties": {
                "answer": {"type": "string"},
                "conversation_id": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"},
                "topic": {"type": "string"}
            }
        },
        "chat.QuestionRequest": {
            "type": "object",
            "required": ["question"],
            "properties": {
                "conversation_id": {"type": "string"},
                "question": {"type": "string", "maxLength": 1000, "minLength": 1, "example": "What is Docker and what is it for?"},
                "topic": {"type": "string", "example": "Docker e Containerização"}
            }
        },
        "config.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "error": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "health.Response": {
            "type": "object",
            "properties": {
                "gemini_configured": {"type": "boolean"},
                "service": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"},
                "version": {"type": "string"}
            }
        },
        "topic.Topic": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "icon": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Chat Educacional Gemini API",
	Description:      "Educational Cloud Computing chat backed by Google Gemini.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
