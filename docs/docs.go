// Package docs registers the OpenAPI description served under /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/categories": {"get": {"tags": ["categories"], "summary": "List categories", "responses": {"200": {"description": "OK"}}}},
        "/categories/{id}": {"get": {"tags": ["categories"], "summary": "Get category", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/bikeorders": {
            "post": {"tags": ["bikeorders"], "summary": "Place order", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "get": {"tags": ["bikeorders"], "summary": "My orders", "security": [{"BearerAuth": []}], "parameters": [{"name": "email", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}
        },
        "/bikeorders/{id}": {"get": {"tags": ["bikeorders"], "summary": "Get order", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/create-payment-intent": {"post": {"tags": ["payments"], "summary": "Create payment intent", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}},
        "/payments": {"post": {"tags": ["payments"], "summary": "Record payment", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}},
        "/jwt": {"get": {"tags": ["users"], "summary": "Issue access token", "parameters": [{"name": "email", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/users": {
            "post": {"tags": ["users"], "summary": "Sign up", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "get": {"tags": ["users"], "summary": "List users", "responses": {"200": {"description": "OK"}}}
        },
        "/users/{id}": {"delete": {"tags": ["users"], "summary": "Delete user", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}},
        "/users/admin/{email}": {"get": {"tags": ["users"], "summary": "Is admin", "parameters": [{"name": "email", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/users/buyer/{email}": {"get": {"tags": ["users"], "summary": "Is buyer", "parameters": [{"name": "email", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/users/seller/{email}": {"get": {"tags": ["users"], "summary": "Is seller", "parameters": [{"name": "email", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/addedbikes": {
            "post": {"tags": ["addedbikes"], "summary": "Add listing", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}},
            "get": {"tags": ["addedbikes"], "summary": "Seller listings", "security": [{"BearerAuth": []}], "parameters": [{"name": "email", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}
        },
        "/addedbikes/{id}": {
            "delete": {"tags": ["addedbikes"], "summary": "Delete listing", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}},
            "put": {"tags": ["addedbikes"], "summary": "Advertise listing", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}
        },
        "/addedbikesss": {"get": {"tags": ["addedbikes"], "summary": "All listings", "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bikes4U Marketplace API",
	Description:      "Categories, orders, listings, users and checkout for the Bikes4U marketplace",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
