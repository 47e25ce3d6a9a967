// Package docs holds the OpenAPI description served at /v1/swagger.
// Regenerate with: swag init -g cmd/web/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@hostel.example"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin/meals": {
            "get": {
                "description": "Catalog sorted by likes or review count, paginated",
                "parameters": [
                    {
                        "description": "Sort field",
                        "enum": [
                            "likes",
                            "reviews_count"
                        ],
                        "in": "query",
                        "name": "sortBy",
                        "type": "string"
                    },
                    {
                        "description": "Sort order",
                        "enum": [
                            "asc",
                            "desc"
                        ],
                        "in": "query",
                        "name": "order",
                        "type": "string"
                    },
                    {
                        "description": "Page number (default: 1)",
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "description": "Items per page (default: 12)",
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "All meals",
                "tags": [
                    "admin"
                ]
            },
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "description": "Uploads the image and adds the meal to the catalog with the admin as distributor",
                "parameters": [
                    {
                        "description": "Title",
                        "in": "formData",
                        "name": "title",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Breakfast, Lunch, Dinner or Snack",
                        "in": "formData",
                        "name": "category",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Ingredients",
                        "in": "formData",
                        "name": "ingredients",
                        "type": "string"
                    },
                    {
                        "description": "Description",
                        "in": "formData",
                        "name": "description",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Price",
                        "in": "formData",
                        "name": "price",
                        "required": true,
                        "type": "number"
                    },
                    {
                        "description": "Meal image",
                        "in": "formData",
                        "name": "image",
                        "type": "file"
                    },
                    {
                        "description": "Image URL when no file is sent",
                        "in": "formData",
                        "name": "image_url",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "502": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Add a meal",
                "tags": [
                    "admin"
                ]
            }
        },
        "/admin/meals/{mealID}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Meal ID",
                        "in": "path",
                        "name": "mealID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Delete a meal",
                "tags": [
                    "admin"
                ]
            }
        },
        "/admin/profile": {
            "get": {
                "description": "The admin and the number of meals they distributed",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Admin profile",
                "tags": [
                    "admin"
                ]
            }
        },
        "/admin/requests": {
            "get": {
                "parameters": [
                    {
                        "description": "User name, email or meal title",
                        "in": "query",
                        "name": "search",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "type": "object"
                            },
                            "type": "array"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Requested meals",
                "tags": [
                    "admin"
                ]
            }
        },
        "/admin/requests/{requestID}/serve": {
            "patch": {
                "description": "Marks the request delivered",
                "parameters": [
                    {
                        "description": "Request ID",
                        "in": "path",
                        "name": "requestID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Serve a requested meal",
                "tags": [
                    "admin"
                ]
            }
        },
        "/admin/reviews": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "type": "object"
                            },
                            "type": "array"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "All reviews",
                "tags": [
                    "admin"
                ]
            }
        },
        "/admin/reviews/{reviewID}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Review ID",
                        "in": "path",
                        "name": "reviewID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Delete any review",
                "tags": [
                    "admin"
                ]
            }
        },
        "/admin/upcoming-meals": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "type": "object"
                            },
                            "type": "array"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Upcoming meals (admin)",
                "tags": [
                    "admin"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Upcoming meal",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Add an upcoming meal",
                "tags": [
                    "admin"
                ]
            }
        },
        "/admin/upcoming-meals/{mealID}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Upcoming meal ID",
                        "in": "path",
                        "name": "mealID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Discard an upcoming meal",
                "tags": [
                    "admin"
                ]
            }
        },
        "/admin/upcoming-meals/{mealID}/publish": {
            "post": {
                "description": "Moves the meal into the catalog in one call. On failure nothing changes and the admin may retry.",
                "parameters": [
                    {
                        "description": "Upcoming meal ID",
                        "in": "path",
                        "name": "mealID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "In progress",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "502": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Publish an upcoming meal",
                "tags": [
                    "admin"
                ]
            }
        },
        "/admin/users": {
            "get": {
                "description": "Users matching the search term on name or email, paginated",
                "parameters": [
                    {
                        "description": "Name or email",
                        "in": "query",
                        "name": "search",
                        "type": "string"
                    },
                    {
                        "description": "Page number (default: 1)",
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "description": "Items per page (default: 12)",
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "List users",
                "tags": [
                    "admin"
                ]
            }
        },
        "/admin/users/{userID}": {
            "delete": {
                "parameters": [
                    {
                        "description": "User ID",
                        "in": "path",
                        "name": "userID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Delete a user",
                "tags": [
                    "admin"
                ]
            }
        },
        "/admin/users/{userID}/role": {
            "patch": {
                "parameters": [
                    {
                        "description": "User ID",
                        "in": "path",
                        "name": "userID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Make a user admin",
                "tags": [
                    "admin"
                ]
            }
        },
        "/authentication/token": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Signs a bearer token for an identity already verified by the auth provider. Meant for trusted tooling.",
                "parameters": [
                    {
                        "description": "Identity",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Token",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Issue a session token",
                "tags": [
                    "authentication"
                ]
            }
        },
        "/dashboard/payments": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "type": "object"
                            },
                            "type": "array"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "My payment history",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/dashboard/profile": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "My profile",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/dashboard/requests": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "type": "object"
                            },
                            "type": "array"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "My requested meals",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/dashboard/requests/{requestID}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Request ID",
                        "in": "path",
                        "name": "requestID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Cancel one of my meal requests",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/dashboard/reviews": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "type": "object"
                            },
                            "type": "array"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "My reviews",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/dashboard/reviews/{reviewID}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Review ID",
                        "in": "path",
                        "name": "reviewID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Delete one of my reviews",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/health": {
            "get": {
                "description": "Reports service status, version and the catalog API it talks to",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Health check",
                "tags": [
                    "ops"
                ]
            }
        },
        "/home": {
            "get": {
                "description": "Banner, the first meals of each category tab and the membership packages",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "502": {
                        "description": "Catalog unavailable",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Home page",
                "tags": [
                    "home"
                ]
            }
        },
        "/meals": {
            "get": {
                "description": "Catalog filtered by category and search term, paginated",
                "parameters": [
                    {
                        "description": "All, Breakfast, Lunch, Dinner or Snack",
                        "in": "query",
                        "name": "category",
                        "type": "string"
                    },
                    {
                        "description": "Matches title, description and ingredients",
                        "in": "query",
                        "name": "search",
                        "type": "string"
                    },
                    {
                        "description": "Page number (default: 1)",
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "description": "Items per page (default: 12)",
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "502": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "List meals",
                "tags": [
                    "meals"
                ]
            }
        },
        "/meals/{mealID}": {
            "get": {
                "description": "One meal with its reviews and the like button state for the viewer",
                "parameters": [
                    {
                        "description": "Meal ID",
                        "in": "path",
                        "name": "mealID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "502": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Meal details",
                "tags": [
                    "meals"
                ]
            }
        },
        "/meals/{mealID}/like": {
            "post": {
                "description": "Adds one like by the current user. A meal can be liked once per user.",
                "parameters": [
                    {
                        "description": "Meal ID",
                        "in": "path",
                        "name": "mealID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "Already liked or in progress",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "502": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Like a meal",
                "tags": [
                    "meals"
                ]
            }
        },
        "/meals/{mealID}/request": {
            "post": {
                "description": "Files a pending meal request for the current user",
                "parameters": [
                    {
                        "description": "Meal ID",
                        "in": "path",
                        "name": "mealID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "In progress",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "502": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Request a meal",
                "tags": [
                    "meals"
                ]
            }
        },
        "/meals/{mealID}/reviews": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Appends a review by the current user and returns the full review list",
                "parameters": [
                    {
                        "description": "Meal ID",
                        "in": "path",
                        "name": "mealID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Review",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "In progress",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "422": {
                        "description": "Empty review",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "502": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Review a meal",
                "tags": [
                    "meals"
                ]
            }
        },
        "/membership": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "type": "object"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "Membership packages",
                "tags": [
                    "membership"
                ]
            }
        },
        "/membership/{packageName}": {
            "get": {
                "description": "Unknown names get the invalid package state",
                "parameters": [
                    {
                        "description": "silver, gold or platinum",
                        "in": "path",
                        "name": "packageName",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Invalid package",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Checkout page of a package",
                "tags": [
                    "membership"
                ]
            }
        },
        "/membership/{packageName}/checkout": {
            "post": {
                "description": "Upgrades the current user's badge to the package tier",
                "parameters": [
                    {
                        "description": "silver, gold or platinum",
                        "in": "path",
                        "name": "packageName",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid package",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "In progress",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "502": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Buy a membership",
                "tags": [
                    "membership"
                ]
            }
        },
        "/site": {
            "get": {
                "description": "Name, tagline and theme of the front end",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Site metadata",
                "tags": [
                    "home"
                ]
            }
        },
        "/upcoming-meals": {
            "get": {
                "description": "Candidates for the catalog, most liked first",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "type": "object"
                            },
                            "type": "array"
                        }
                    },
                    "502": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "summary": "Upcoming meals",
                "tags": [
                    "upcoming"
                ]
            }
        },
        "/upcoming-meals/{mealID}/like": {
            "post": {
                "description": "Likes rank upcoming meals for promotion. One like per user.",
                "parameters": [
                    {
                        "description": "Upcoming meal ID",
                        "in": "path",
                        "name": "mealID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "502": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Like an upcoming meal",
                "tags": [
                    "upcoming"
                ]
            }
        },
        "/users/federated": {
            "post": {
                "description": "Records the identity behind the token. Repeating it is harmless.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "502": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Join with a federated provider",
                "tags": [
                    "users"
                ]
            }
        },
        "/users/join": {
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "description": "Records a freshly registered identity with badge Bronze. The optional image is uploaded first.",
                "parameters": [
                    {
                        "description": "Display name",
                        "in": "formData",
                        "name": "name",
                        "type": "string"
                    },
                    {
                        "description": "Profile picture (JPEG, PNG or WebP, max 5MB)",
                        "in": "formData",
                        "name": "image",
                        "type": "file"
                    },
                    {
                        "description": "Profile picture URL when no file is sent",
                        "in": "formData",
                        "name": "image_url",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "502": {
                        "description": "error",
                        "schema": {
                            "type": "object"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Join with email and password",
                "tags": [
                    "users"
                ]
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        },
        "BasicAuth": {
            "type": "basic"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Hostel Meals Web API",
	Description:      "Screens of the hostel meals front end: catalog, reviews, membership and the admin dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
