// Package docs registers the swagger description of the HTTP API.
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
        "/metrics": {
            "get": {"produces": ["application/json"], "tags": ["metrics"], "summary": "List tracked metrics in declared order", "responses": {"200": {"description": "OK"}}}
        },
        "/metrics/{id}": {
            "get": {"produces": ["application/json"], "tags": ["metrics"], "summary": "Get a metric",
                "parameters": [{"type": "string", "description": "Metric id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/metrics/{id}/stats": {
            "get": {"produces": ["application/json"], "tags": ["metrics"], "summary": "Derived weekly statistics for a metric",
                "parameters": [{"type": "string", "description": "Metric id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/metrics/{id}/today": {
            "put": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["metrics"], "summary": "Replace today's value of a metric",
                "parameters": [{"type": "string", "description": "Metric id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/habits": {
            "get": {"produces": ["application/json"], "tags": ["habits"], "summary": "List habits ordered by id", "responses": {"200": {"description": "OK"}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["habits"], "summary": "Add a habit", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/habits/summary": {
            "get": {"produces": ["application/json"], "tags": ["habits"], "summary": "Completed and total habit counts for today", "responses": {"200": {"description": "OK"}}}
        },
        "/habits/history": {
            "get": {"produces": ["application/json"], "tags": ["habits"], "summary": "Habit completion over the last 7 days", "responses": {"200": {"description": "OK"}}}
        },
        "/habits/{id}/toggle": {
            "post": {"produces": ["application/json"], "tags": ["habits"], "summary": "Flip today's completion flag of a habit",
                "parameters": [{"type": "integer", "description": "Habit id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/habits/{id}/target": {
            "put": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["habits"], "summary": "Replace the target of a habit",
                "parameters": [{"type": "integer", "description": "Habit id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/attention": {
            "get": {"produces": ["application/json"], "tags": ["reports"], "summary": "Metrics missing their goal today, in declared order", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/weekly": {
            "get": {"produces": ["application/json"], "tags": ["reports"], "summary": "Per-day composite of habit and metric goal percentages", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/summary": {
            "get": {"produces": ["application/json"], "tags": ["reports"], "summary": "Trailing week summary ratios", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/correlations": {
            "get": {"produces": ["application/json"], "tags": ["reports"], "summary": "Behaviour correlation statements", "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Habitricky Tracking API",
	Description:      "Habit and personal metric tracking engine.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
