// Package docs registers the OpenAPI document served at /swagger.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service status",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Application and database health",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users (paginated)",
                "parameters": [
                    {"type": "string", "description": "page number, falls back to 1", "name": "page[number]", "in": "query"},
                    {"type": "string", "description": "page size, falls back to the configured size", "name": "page[size]", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.UserPage"}},
                    "500": {"description": "error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/users/pages/current": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Current page descriptor",
                "parameters": [
                    {"type": "string", "description": "page number", "name": "page[number]", "in": "query"},
                    {"type": "string", "description": "page size", "name": "page[size]", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pagination.Page"}}
                }
            }
        },
        "/api/v1/users/pages/next": {
            "get": {
                "description": "Without total the next page is always returned. With total,\nnext is null once the current page reaches the end.",
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Next page descriptor",
                "parameters": [
                    {"type": "string", "description": "page number", "name": "page[number]", "in": "query"},
                    {"type": "string", "description": "page size", "name": "page[size]", "in": "query"},
                    {"type": "integer", "description": "total item count", "name": "total", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "{next, has_next}", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get one user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.UserDTO"}},
                    "404": {"description": "error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "model.UserDTO": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "username": {"type": "string"}
            }
        },
        "pagination.Page": {
            "type": "object",
            "properties": {
                "number": {"type": "integer"},
                "size": {"type": "integer"}
            }
        },
        "service.UserPage": {
            "type": "object",
            "properties": {
                "has_next": {"type": "boolean"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/model.UserDTO"}},
                "next": {"$ref": "#/definitions/pagination.Page"},
                "page": {"$ref": "#/definitions/pagination.Page"},
                "resource": {"type": "string"},
                "total": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "gopaginate API",
	Description:      "Paginated listing of users backed by GORM.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
