package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Heinicus Mobile Mechanic API",
        "description": "Dispatch backend for a single-mechanic mobile repair operation",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Jobs", "description": "Service request lifecycle, parts, photos and work logs"},
        {"name": "Quotes", "description": "Pricing and payment lifecycle"},
        {"name": "Vehicles", "description": "Customer vehicles and maintenance schedule"},
        {"name": "Verifications", "description": "Mechanic identity review"},
        {"name": "Reports", "description": "Revenue summaries and document exports"},
        {"name": "Settings", "description": "Runtime feature flags and rates"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/jobs": {
            "get": {
                "tags": ["Jobs"],
                "summary": "List service requests",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Jobs"],
                "summary": "Create service request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateServiceRequestRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/jobs/{id}/status": {
            "put": {
                "tags": ["Jobs"],
                "summary": "Update job status",
                "description": "Any move is recorded. Completing with an unmet checklist is flagged in the response meta, or rejected with 412 when enforce=true.",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "enforce", "in": "query", "type": "boolean"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Completion checklist unmet", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/jobs/{id}/checklist": {
            "get": {
                "tags": ["Jobs"],
                "summary": "Completion checklist",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/quotes": {
            "post": {
                "tags": ["Quotes"],
                "summary": "Create quote",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateQuoteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/quotes/{id}/status": {
            "put": {
                "tags": ["Quotes"],
                "summary": "Update quote payment status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateQuoteStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/vehicles": {
            "get": {
                "tags": ["Vehicles"],
                "summary": "List vehicles",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Vehicles"],
                "summary": "Add vehicle",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VehicleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports/revenue": {
            "get": {
                "tags": ["Reports"],
                "summary": "Revenue summary",
                "parameters": [
                    {"name": "start_date", "in": "query", "type": "string"},
                    {"name": "end_date", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/settings": {
            "get": {
                "tags": ["Settings"],
                "summary": "Get runtime settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateServiceRequestRequest": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "description": {"type": "string"},
                "urgency": {"type": "string"},
                "vehicle_id": {"type": "string"},
                "vehicle_type": {"type": "string"},
                "vin_number": {"type": "string"},
                "estimated_duration": {"type": "integer"}
            },
            "required": ["type"]
        },
        "UpdateStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "mechanic_id": {"type": "string"},
                "notes": {"type": "string"}
            },
            "required": ["status"]
        },
        "CreateQuoteRequest": {
            "type": "object",
            "properties": {
                "service_request_id": {"type": "string"},
                "labor_cost": {"type": "number"},
                "parts_cost": {"type": "number"},
                "travel_cost": {"type": "number"},
                "estimated_duration": {"type": "number"},
                "valid_days": {"type": "integer"}
            },
            "required": ["service_request_id"]
        },
        "UpdateQuoteStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "payment_method": {"type": "string"},
                "deposit_amount": {"type": "number"}
            },
            "required": ["status"]
        },
        "VehicleRequest": {
            "type": "object",
            "properties": {
                "make": {"type": "string"},
                "model": {"type": "string"},
                "year": {"type": "integer"},
                "vin": {"type": "string"},
                "license_plate": {"type": "string"},
                "vehicle_type": {"type": "string"},
                "mileage": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
