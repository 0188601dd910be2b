// Package docs holds the OpenAPI description served under /swagger.
// It mirrors the handler annotations; regenerate with `swag init -g cmd/campusbot/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "BIET Admission Office",
            "email": "admissions@bietdvg.edu"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/chat": {
            "post": {
                "description": "Answers a free-text question, or returns a student record when a photo is attached",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chat"
                ],
                "summary": "Ask the campus assistant",
                "parameters": [
                    {
                        "description": "Message and optional base64 image",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ChatRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ChatResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/knowledge": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chat"
                ],
                "summary": "Knowledge base statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.KnowledgeStatsResponse"
                        }
                    }
                }
            }
        },
        "/api/suggestions": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chat"
                ],
                "summary": "Suggested questions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuggestionsResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.ChatRequest": {
            "type": "object",
            "properties": {
                "image": {
                    "type": "string"
                },
                "message": {
                    "type": "string",
                    "maxLength": 4000
                }
            }
        },
        "dto.ChatResponse": {
            "type": "object",
            "properties": {
                "reply": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "dto.KnowledgeStatsResponse": {
            "type": "object",
            "properties": {
                "admissions": {
                    "type": "integer"
                },
                "corpus_size": {
                    "type": "integer"
                },
                "courses": {
                    "type": "integer"
                },
                "departments": {
                    "type": "integer"
                },
                "facilities": {
                    "type": "integer"
                },
                "fee_structure": {
                    "type": "integer"
                },
                "placements": {
                    "type": "integer"
                },
                "qa_pairs": {
                    "type": "integer"
                },
                "vocabulary_size": {
                    "type": "integer"
                }
            }
        },
        "dto.SuggestionsResponse": {
            "type": "object",
            "properties": {
                "suggestions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BIET Campus Assistant API",
	Description:      "Answers questions about admissions, fees, placements, courses, facilities and departments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
