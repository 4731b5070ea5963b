// Package docs holds the generated swagger spec registered with the swag
// runtime; the platform server serves it under /swagger/.
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
        "/api/feed/v1/posts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["feed"],
                "summary": "List all posts, newest first",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["feed"],
                "summary": "Submit a post, creating its channel on first use of the topic",
                "parameters": [
                    {"name": "X-User", "in": "header", "type": "string", "required": true, "description": "acting user handle"},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "missing topic or title"},
                    "401": {"description": "sign in required"}
                }
            }
        },
        "/api/feed/v1/posts/{post_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["feed"],
                "summary": "Fetch one post",
                "parameters": [
                    {"name": "post_id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "post not found"}
                }
            }
        },
        "/api/feed/v1/channels/{topic}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["feed"],
                "summary": "Look up a channel by topic",
                "parameters": [
                    {"name": "topic", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "channel not found"}
                }
            }
        },
        "/api/feed/v1/channels/{topic}/posts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["feed"],
                "summary": "List a channel's posts, newest first",
                "parameters": [
                    {"name": "topic", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK; unknown topics return an empty feed"}
                }
            }
        },
        "/api/votes/v1/posts/{post_id}/votes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["votes"],
                "summary": "Vote tally plus the caller's current effective vote",
                "parameters": [
                    {"name": "post_id", "in": "path", "type": "string", "required": true},
                    {"name": "X-User", "in": "header", "type": "string", "required": false}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["votes"],
                "summary": "Cast a vote; same-direction repeats are no-ops",
                "parameters": [
                    {"name": "post_id", "in": "path", "type": "string", "required": true},
                    {"name": "X-User", "in": "header", "type": "string", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "applied or no_change"},
                    "400": {"description": "invalid direction"},
                    "401": {"description": "sign in required"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Agora Community Feed API",
	Description:      "Topic channels, post submission, and append-only vote reconciliation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
