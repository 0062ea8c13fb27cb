// Package docs holds the OpenAPI description served at /swagger.
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
        "/accounts": {
            "get": {
                "description": "Get all accounts of the owner",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List accounts",
                "parameters": [
                    {"type": "integer", "description": "Owner ID (default 1)", "name": "X-Owner-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "Accounts", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Account"}}},
                    "400": {"description": "Unknown owner", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Create an account with an optional opening balance",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Create account",
                "parameters": [
                    {"type": "integer", "description": "Owner ID (default 1)", "name": "X-Owner-ID", "in": "header"},
                    {"description": "Account details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/input.AccountInput"}}
                ],
                "responses": {
                    "201": {"description": "Account created", "schema": {"$ref": "#/definitions/models.Account"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/investments": {
            "get": {
                "description": "Get all investment holdings of the owner, newest purchase first",
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "List investments",
                "parameters": [
                    {"type": "integer", "description": "Owner ID (default 1)", "name": "X-Owner-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "Investments", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Investment"}}},
                    "400": {"description": "Unknown owner", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Record shares of a ticker bought at a price per share",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Add investment",
                "parameters": [
                    {"type": "integer", "description": "Owner ID (default 1)", "name": "X-Owner-ID", "in": "header"},
                    {"description": "Investment details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/input.InvestmentInput"}}
                ],
                "responses": {
                    "201": {"description": "Investment created", "schema": {"$ref": "#/definitions/models.Investment"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/expenses": {
            "get": {
                "description": "Get all expenses of the owner, newest first",
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "List expenses",
                "parameters": [
                    {"type": "integer", "description": "Owner ID (default 1)", "name": "X-Owner-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "Expenses", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Expense"}}},
                    "400": {"description": "Unknown owner", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Record an expense dated now",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Add expense",
                "parameters": [
                    {"type": "integer", "description": "Owner ID (default 1)", "name": "X-Owner-ID", "in": "header"},
                    {"description": "Expense details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/input.ExpenseInput"}}
                ],
                "responses": {
                    "201": {"description": "Expense created", "schema": {"$ref": "#/definitions/models.Expense"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/goals": {
            "get": {
                "description": "Get all savings goals in the order they were created",
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "List goals",
                "responses": {
                    "200": {"description": "Goals", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Goal"}}},
                    "500": {"description": "Storage error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Create a savings goal; current defaults to 0 and may not exceed target",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "Create goal",
                "parameters": [
                    {"description": "Goal details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/input.GoalInput"}}
                ],
                "responses": {
                    "201": {"description": "Goal created", "schema": {"$ref": "#/definitions/models.Goal"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "description": "Net worth, monthly cash flow, savings rate, portfolio and goal progress",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Get dashboard",
                "parameters": [
                    {"type": "integer", "description": "Owner ID (default 1)", "name": "X-Owner-ID", "in": "header"},
                    {"type": "string", "description": "Evaluation instant, RFC 3339 (default now)", "name": "as_of", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Dashboard", "schema": {"$ref": "#/definitions/handlers.DashboardResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.DashboardResponse": {
            "type": "object",
            "properties": {
                "display": {"type": "object"},
                "metrics": {"type": "object"}
            }
        },
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "VALIDATION_ERROR"},
                "message": {"type": "string", "example": "symbol is required"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "input.AccountInput": {
            "type": "object",
            "required": ["name", "type"],
            "properties": {
                "balance": {"type": "number"},
                "name": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "input.ExpenseInput": {
            "type": "object",
            "required": ["amount", "category", "description"],
            "properties": {
                "amount": {"type": "number"},
                "category": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "input.GoalInput": {
            "type": "object",
            "required": ["target", "title"],
            "properties": {
                "current": {"type": "number"},
                "target": {"type": "number"},
                "title": {"type": "string"}
            }
        },
        "input.InvestmentInput": {
            "type": "object",
            "required": ["purchase_price", "shares", "symbol"],
            "properties": {
                "purchase_price": {"type": "number"},
                "shares": {"type": "integer"},
                "symbol": {"type": "string"}
            }
        },
        "models.Account": {
            "type": "object",
            "properties": {
                "balance": {"type": "number"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "models.Expense": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "category": {"type": "string"},
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "user_id": {"type": "integer"}
            }
        },
        "models.Goal": {
            "type": "object",
            "properties": {
                "created": {"type": "string"},
                "current": {"type": "number"},
                "id": {"type": "string"},
                "target": {"type": "number"},
                "title": {"type": "string"}
            }
        },
        "models.Investment": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "current_price": {"type": "number"},
                "id": {"type": "integer"},
                "purchase_date": {"type": "string"},
                "purchase_price": {"type": "number"},
                "shares": {"type": "integer"},
                "symbol": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "WealthWise API",
	Description:      "WealthWise tracks accounts, investments, expenses and savings goals and aggregates them into a personal finance dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
