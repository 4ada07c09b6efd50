package openapi

// Parameter locations.
const (
	InPath  = "path"
	InQuery = "query"
)

// Info describes the API as a whole.
type Info struct {
	Title       string
	Description string
	Version     string
}

// Parameter is a path or query parameter of an operation.
type Parameter struct {
	Name        string
	In          string
	Required    bool
	Description string
	Schema      *Map
}

// Response documents one status code of an operation.
type Response struct {
	Status      string
	Description string
	Schema      *Map // JSON body schema, nil for no body
}

// Operation is the documentation attached to a declared route.
type Operation struct {
	Method      string // upper-case HTTP method
	Path        string // OpenAPI path template, e.g. /restaurant/{name}
	OperationID string
	Summary     string
	Description string
	Tags        []string
	Parameters  []Parameter
	Responses   []Response
}

// Ref returns a schema referencing a component schema.
func Ref(name string) *Map {
	return NewMap().Set("$ref", "#/components/schemas/"+name)
}

// StringSchema returns {type: string} with an optional title.
func StringSchema(title string) *Map {
	m := NewMap().Set("type", "string")
	if title != "" {
		m.Set("title", title)
	}
	return m
}

// ArrayOf returns an array schema of items.
func ArrayOf(items *Map) *Map {
	return NewMap().Set("type", "array").Set("items", items)
}

// AnyOf returns a schema matching any of the given schemas.
func AnyOf(schemas ...*Map) *Map {
	return NewMap().Set("anyOf", schemas)
}
