// Package docs registers the OpenAPI description served under /swagger/.
// Regenerate from the controller annotations with: swag init -g cmd/server/main.go
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
        "/store": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stores"],
                "summary": "List stores",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.StoreListSuccessResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "description": "Store names are unique.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["stores"],
                "summary": "Create a store",
                "parameters": [
                    {"description": "Store", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateStoreRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.StoreSuccessResponse"}},
                    "400": {"description": "error.code: bad_request or conflict", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/store/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stores"],
                "summary": "Get a store with its items and tags",
                "parameters": [{"type": "integer", "description": "Store ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.StoreSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "description": "Deletes the store together with its items and tags.",
                "produces": ["application/json"],
                "tags": ["stores"],
                "summary": "Delete a store",
                "parameters": [{"type": "integer", "description": "Store ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/store/{id}/tag": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tags"],
                "summary": "List the tags of a store",
                "parameters": [{"type": "integer", "description": "Store ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.TagListSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "description": "Tag names are unique.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tags"],
                "summary": "Create a tag in a store",
                "parameters": [
                    {"type": "integer", "description": "Store ID", "name": "id", "in": "path", "required": true},
                    {"description": "Tag", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateTagRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.TagSuccessResponse"}},
                    "400": {"description": "error.code: bad_request or conflict", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/item": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List items",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ItemListSuccessResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Requires a fresh access token. Optional tag_ids must belong to the same store.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Create an item",
                "parameters": [
                    {"description": "Item", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.ItemSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error: fresh_token_required, token_expired, ...", "schema": {"$ref": "#/definitions/helpers.TokenErrorResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/item/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Get an item with its tags",
                "parameters": [{"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ItemSuccessResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/helpers.TokenErrorResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "put": {
                "description": "Overwrites name and price of the item at id. If none exists it is created at id, which then requires store_id.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Replace or create an item",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true},
                    {"description": "Item", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.PutItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.ItemSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Requires an access token carrying the admin claim.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Delete an item",
                "parameters": [{"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageSuccessResponse"}},
                    "401": {"description": "error: authorization_required", "schema": {"$ref": "#/definitions/helpers.TokenErrorResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/item/{item_id}/tag/{tag_id}": {
            "post": {
                "description": "Item and tag must belong to the same store.",
                "produces": ["application/json"],
                "tags": ["tags"],
                "summary": "Link an item to a tag",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "item_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Tag ID", "name": "tag_id", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.TagSuccessResponse"}},
                    "400": {"description": "error.code: bad_request or conflict", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["tags"],
                "summary": "Remove a tag from an item",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "item_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Tag ID", "name": "tag_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/tag/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tags"],
                "summary": "Get a tag with its items",
                "parameters": [{"type": "integer", "description": "Tag ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.TagSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "description": "Fails while the tag is still linked to any item.",
                "produces": ["application/json"],
                "tags": ["tags"],
                "summary": "Delete a tag",
                "parameters": [{"type": "integer", "description": "Tag ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageSuccessResponse"}},
                    "400": {"description": "error.code: tag_in_use", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/register": {
            "post": {
                "description": "Creates a non-admin user. Passwords must be at least 8 characters.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CredentialsRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.UserSuccessResponse"}},
                    "400": {"description": "error.code: bad_request or conflict", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Returns a fresh access token and a refresh token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CredentialsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.LoginSuccessResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/refresh": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "The returned access token is not fresh.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange a refresh token for an access token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.RefreshSuccessResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/helpers.TokenErrorResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Revokes the presented access token.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageSuccessResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/helpers.TokenErrorResponse"}}
                }
            }
        },
        "/user/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.UserSuccessResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/helpers.TokenErrorResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Requires an access token carrying the admin claim.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageSuccessResponse"}},
                    "401": {"description": "error: authorization_required", "schema": {"$ref": "#/definitions/helpers.TokenErrorResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "data.status: ok", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "503": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "helpers.APIError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {"data": {}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "helpers.TokenErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "description": {"type": "string"}, "message": {"type": "string"}}
        },
        "domain.Store": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Item"}},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/domain.Tag"}}
            }
        },
        "domain.Item": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "store_id": {"type": "integer"},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/domain.Tag"}}
            }
        },
        "domain.Tag": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "store_id": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Item"}}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "is_admin": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "domain.TokenPair": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "refresh_token": {"type": "string"}}
        },
        "controllers.CreateStoreRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string", "maxLength": 80}}
        },
        "controllers.CreateTagRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string", "maxLength": 80}}
        },
        "controllers.CreateItemRequest": {
            "type": "object",
            "required": ["name", "price", "store_id"],
            "properties": {
                "name": {"type": "string", "maxLength": 80},
                "price": {"type": "number", "minimum": 0, "maximum": 99999999.99},
                "store_id": {"type": "integer"},
                "tag_ids": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "controllers.PutItemRequest": {
            "type": "object",
            "required": ["name", "price"],
            "properties": {
                "name": {"type": "string", "maxLength": 80},
                "price": {"type": "number", "minimum": 0, "maximum": 99999999.99},
                "store_id": {"type": "integer"}
            }
        },
        "controllers.CredentialsRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "controllers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "controllers.RefreshResponse": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}}
        },
        "controllers.StoreSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.Store"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.StoreListSuccessResponse": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/domain.Store"}}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.ItemSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.Item"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.ItemListSuccessResponse": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/domain.Item"}}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.TagSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.Tag"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.TagListSuccessResponse": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/domain.Tag"}}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.UserSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.User"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.LoginSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.TokenPair"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.RefreshSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/controllers.RefreshResponse"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.MessageSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/controllers.MessageResponse"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the access or refresh token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Stores API",
	Description:      "Stores, items and tags with JWT authentication and token revocation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
