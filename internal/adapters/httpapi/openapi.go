package httpapi

func openapiSpec() map[string]any {
	idParam := map[string]any{
		"name": "id", "in": "path", "required": true,
		"schema": map[string]any{"type": "integer", "format": "int64", "minimum": 1},
	}
	body := map[string]any{
		"required": true,
		"content": map[string]any{
			"application/json": map[string]any{"schema": map[string]any{"$ref": "#/components/schemas/NetflixShow"}},
		},
	}
	envelope := func(desc string) map[string]any {
		return map[string]any{
			"description": desc,
			"content": map[string]any{
				"application/json": map[string]any{"schema": map[string]any{"$ref": "#/components/schemas/Response"}},
			},
		}
	}
	nullable := func(typ string) map[string]any {
		return map[string]any{"type": typ, "nullable": true}
	}

	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "showsapi",
			"version": "1.0.0",
		},
		"components": map[string]any{
			"securitySchemes": map[string]any{
				"apiKey": map[string]any{"type": "apiKey", "in": "header", "name": "X-API-Key"},
			},
			"schemas": map[string]any{
				"Response": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"status":  map[string]any{"type": "integer"},
						"message": map[string]any{"type": "string"},
						"data":    map[string]any{"nullable": true},
					},
				},
				"NetflixShow": map[string]any{
					"type":     "object",
					"required": []string{"showType", "title", "country", "dateAdded", "releaseYear"},
					"properties": map[string]any{
						"id":               map[string]any{"type": "integer", "format": "int64", "readOnly": true},
						"showType":         map[string]any{"type": "string", "enum": []string{"MOVIE", "TV_SHOW"}},
						"title":            map[string]any{"type": "string"},
						"director":         nullable("string"),
						"castMembers":      nullable("string"),
						"country":          map[string]any{"type": "string", "maxLength": 60},
						"dateAdded":        map[string]any{"type": "string", "format": "date"},
						"releaseYear":      map[string]any{"type": "integer"},
						"rating":           map[string]any{"type": "integer", "minimum": 1, "maximum": 10, "nullable": true},
						"durationInMinute": nullable("integer"),
						"listedIn":         nullable("string"),
						"description":      nullable("string"),
					},
				},
			},
		},
		"paths": map[string]any{
			showsPath: map[string]any{
				"post": map[string]any{
					"summary":     "Create show",
					"requestBody": body,
					"responses": map[string]any{
						"201": envelope("Created"),
						"400": envelope("Invalid body or validation failure"),
					},
				},
				"get": map[string]any{
					"summary": "List shows",
					"responses": map[string]any{
						"200": envelope("Shows"),
						"404": envelope("No shows stored"),
					},
				},
			},
			showsPath + "/{id}": map[string]any{
				"parameters": []any{idParam},
				"get": map[string]any{
					"summary":   "Get show",
					"responses": map[string]any{"200": envelope("Show"), "404": envelope("Not found")},
				},
				"put": map[string]any{
					"summary":     "Replace show",
					"requestBody": body,
					"responses": map[string]any{
						"200": envelope("Updated"),
						"400": envelope("Invalid body or validation failure"),
						"404": envelope("Not found"),
					},
				},
				"delete": map[string]any{
					"summary":   "Delete show",
					"responses": map[string]any{"200": envelope("Deleted"), "404": envelope("Not found")},
				},
			},
			showsPath + "/{id}/audit": map[string]any{
				"parameters": []any{idParam},
				"get": map[string]any{
					"summary": "List audit events of a show, newest first",
					"parameters": []any{
						map[string]any{"name": "after", "in": "query", "schema": map[string]any{"type": "integer"}},
						map[string]any{"name": "limit", "in": "query", "schema": map[string]any{"type": "integer", "maximum": 1000}},
					},
					"responses": map[string]any{"200": envelope("Audit events")},
				},
			},
		},
	}
}
