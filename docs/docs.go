// Package docs holds the OpenAPI description served at /swagger.
// Keep it in sync with the controller annotations (swag init -g cmd/api/main.go).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/users": {
            "get": {
                "description": "Looks up the user whose email and password match. A bearer token is returned in the X-Access-Token header.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Find user by credentials",
                "parameters": [
                    {"type": "string", "description": "Email", "name": "email", "in": "query", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "User found", "schema": {"$ref": "#/definitions/dto.UserEnvelope"}, "headers": {"X-Access-Token": {"type": "string", "description": "Signed access token"}}},
                    "400": {"description": "Missing email or password", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Creates a new user. The password is stored as a bcrypt hash.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "User information", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "User created", "schema": {"$ref": "#/definitions/dto.UserEnvelope"}, "headers": {"X-Access-Token": {"type": "string", "description": "Signed access token"}}},
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Email already exists", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns every course whose user_id matches. An owner with no courses yields an empty list.",
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "List courses by owner",
                "parameters": [
                    {"type": "string", "description": "Owner user ID", "name": "user_id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Courses retrieved", "schema": {"$ref": "#/definitions/dto.CourseListEnvelope"}},
                    "400": {"description": "Missing user_id", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Owner differs from the authenticated user", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates a course owned by an existing user. teachers and classes must be arrays of strings.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Create a course",
                "parameters": [
                    {"description": "Course information", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Course created", "schema": {"$ref": "#/definitions/dto.CourseEnvelope"}},
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Course owner differs from the authenticated user", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Owner not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Overwrites every field of an existing course. Omitted fields are cleared.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Update a course",
                "parameters": [
                    {"type": "string", "description": "Course ID", "name": "id", "in": "path", "required": true},
                    {"description": "Replacement course", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "Course updated", "schema": {"$ref": "#/definitions/dto.CourseEnvelope"}},
                    "400": {"description": "Invalid request data or owner change", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Course belongs to another user", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Course or owner not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Update failed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Deletes a course and returns the record as it was before deletion",
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Delete a course",
                "parameters": [
                    {"type": "string", "description": "Course ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Course deleted", "schema": {"$ref": "#/definitions/dto.CourseEnvelope"}},
                    "403": {"description": "Course belongs to another user", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Delete failed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "3f0c1d9e-8f5b-4b7e-9a43-1c2d3e4f5a6b"},
                "name": {"type": "string", "example": "Ana Souza"},
                "email": {"type": "string", "example": "ana@example.com"},
                "createdAt": {"type": "string", "example": "2024-01-01T10:00:00Z"}
            }
        },
        "models.Course": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "title": {"type": "string", "example": "Algebra"},
                "teachers": {"type": "array", "items": {"type": "string"}},
                "classes": {"type": "array", "items": {"type": "string"}},
                "start_time": {"type": "string", "example": "09:00"},
                "end_time": {"type": "string", "example": "10:00"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.RegisterUserRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string", "maxLength": 100, "example": "Ana Souza"},
                "email": {"type": "string", "example": "ana@example.com"},
                "password": {"type": "string", "minLength": 6, "maxLength": 72, "example": "s3cret-pass"}
            }
        },
        "dto.CourseRequest": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "title": {"type": "string", "example": "Algebra"},
                "teachers": {"type": "array", "items": {"type": "string"}},
                "classes": {"type": "array", "items": {"type": "string"}},
                "start_time": {"type": "string", "example": "09:00"},
                "end_time": {"type": "string", "example": "10:00"}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "RES_001"},
                "message": {"type": "string", "example": "course not found"},
                "field": {"type": "string"},
                "severity": {"type": "string", "example": "ERROR"},
                "details": {}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.UserEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"$ref": "#/definitions/models.User"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.CourseEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"$ref": "#/definitions/models.Course"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.CourseListEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.Course"}},
                "timestamp": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token returned in the X-Access-Token header, sent as \"Bearer <token>\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "CourseDesk API",
	Description:      "API for registering users and managing the courses they own",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
