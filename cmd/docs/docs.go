// Package docs holds the Swagger document served under /swagger.
// Regenerate with: swag init -g cmd/pfm_backend/main.go -o cmd/docs
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
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register new user", "responses": {"201": {"description": "Created"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "User login", "responses": {"200": {"description": "OK"}}}},
        "/auth/google/exchange-code": {"post": {"tags": ["auth"], "summary": "Exchange a Google authorization code for an access token", "responses": {"200": {"description": "OK"}}}},
        "/users/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get the current user", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update the current user", "responses": {"200": {"description": "OK"}}}
        },
        "/data": {"delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete all ledger data", "responses": {"204": {"description": "No Content"}}}},
        "/accounts": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "List accounts", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Create a new account", "responses": {"201": {"description": "Created"}}}
        },
        "/accounts/entry-options": {"get": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Entry form options", "responses": {"200": {"description": "OK"}}}},
        "/accounts/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Get an account by ID", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Update an account", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Delete an account", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/transactions": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Ledger view", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Record an entry", "responses": {"201": {"description": "Created"}}}
        },
        "/transactions/recent": {"get": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Recently entered transactions", "responses": {"200": {"description": "OK"}}}},
        "/transactions/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Get a transaction", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Update a transaction", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Delete a transaction", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/presets": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["presets"], "summary": "List presets", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["presets"], "summary": "Create a preset", "responses": {"201": {"description": "Created"}}}
        },
        "/presets/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["presets"], "summary": "Get a preset", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["presets"], "summary": "Update a preset", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["presets"], "summary": "Delete a preset", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/budgets": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "List the budgets of a month", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Set the budget of an expense account for a month", "responses": {"200": {"description": "OK"}}}
        },
        "/budgets/carry-forward": {"post": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Copy last month's budgets", "responses": {"200": {"description": "OK"}}}},
        "/budgets/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Delete a budget", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}},
        "/reports/dashboard": {"get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Balance overview", "responses": {"200": {"description": "OK"}}}},
        "/reports/monthly": {"get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Monthly report", "responses": {"200": {"description": "OK"}}}},
        "/import/accounts": {"post": {"security": [{"BearerAuth": []}], "tags": ["import"], "summary": "Import accounts", "consumes": ["multipart/form-data"], "responses": {"200": {"description": "OK"}}}},
        "/import/transactions": {"post": {"security": [{"BearerAuth": []}], "tags": ["import"], "summary": "Import transactions", "consumes": ["multipart/form-data"], "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "PFM Backend API",
	Description:      "Personal double-entry bookkeeping: accounts, entries, budgets and reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
