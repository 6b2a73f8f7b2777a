// Package docs holds the Swagger definition served at /swagger/*.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "username already exists"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "responses": {"200": {"description": "OK"}, "401": {"description": "invalid username or password"}}
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/movies": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["movies"],
                "summary": "Add movie",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/movies/search": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["movies"],
                "summary": "Search movies by genre (paginated)",
                "parameters": [
                    {"name": "genre", "in": "query", "type": "string", "required": true},
                    {"name": "page", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/movies/search/next": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["movies"],
                "summary": "Next search page",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/movies/search/prev": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["movies"],
                "summary": "Previous search page",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/movies/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["movies"],
                "summary": "Get movie",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "movie not found"}}
            }
        },
        "/me/ratings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["ratings"],
                "summary": "List own ratings",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["ratings"],
                "summary": "Submit rating",
                "responses": {"200": {"description": "updated"}, "201": {"description": "created"}, "404": {"description": "movie not found"}}
            }
        },
        "/ratings/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["ratings"],
                "summary": "Delete rating",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "rating not found"}}
            }
        },
        "/users/{id}/ratings": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["ratings"],
                "summary": "Submit rating for any user (ADMIN)",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/analytics/top": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["analytics"],
                "summary": "Top rated movies",
                "parameters": [{"name": "limit", "in": "query", "type": "integer"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/analytics/top/chart": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["analytics"],
                "summary": "Top rated movies chart",
                "produces": ["text/html"],
                "responses": {"200": {"description": "HTML page"}}
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Healthcheck",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Movie Recommendation API",
	Description:      "Sign up, rate movies, search the catalog by genre and see the top rated ones.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
