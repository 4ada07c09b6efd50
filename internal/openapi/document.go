package openapi

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Version is the OpenAPI version the documents declare.
const Version = "3.1.0"

// Build assembles an OpenAPI document from operations in declaration order.
// Operations sharing a path are grouped under that path, keeping the
// position of the path's first declaration.
func Build(info Info, serverURL string, operations []Operation, components *Map) *Map {
	infoMap := NewMap().Set("title", info.Title)
	if info.Description != "" {
		infoMap.Set("description", info.Description)
	}
	infoMap.Set("version", info.Version)

	doc := NewMap().
		Set("openapi", Version).
		Set("info", infoMap)

	if serverURL != "" {
		doc.Set("servers", []*Map{NewMap().Set("url", serverURL)})
	}

	paths := NewMap()
	for _, op := range operations {
		item, ok := paths.Get(op.Path)
		if !ok {
			item = NewMap()
			paths.Set(op.Path, item)
		}
		item.(*Map).Set(strings.ToLower(op.Method), operationMap(op))
	}
	doc.Set("paths", paths)

	if components != nil && components.Len() > 0 {
		doc.Set("components", NewMap().Set("schemas", components))
	}

	return doc
}

func operationMap(op Operation) *Map {
	m := NewMap()
	if len(op.Tags) > 0 {
		m.Set("tags", op.Tags)
	}
	m.Set("summary", op.Summary)
	if op.Description != "" {
		m.Set("description", op.Description)
	}
	m.Set("operationId", op.OperationID)

	if len(op.Parameters) > 0 {
		params := make([]*Map, 0, len(op.Parameters))
		for _, p := range op.Parameters {
			pm := NewMap().
				Set("name", p.Name).
				Set("in", p.In).
				Set("required", p.Required)
			if p.Description != "" {
				pm.Set("description", p.Description)
			}
			if p.Schema != nil {
				pm.Set("schema", p.Schema)
			}
			params = append(params, pm)
		}
		m.Set("parameters", params)
	}

	responses := NewMap()
	for _, r := range op.Responses {
		rm := NewMap().Set("description", r.Description)
		if r.Schema != nil {
			rm.Set("content", NewMap().Set("application/json", NewMap().Set("schema", r.Schema)))
		}
		responses.Set(r.Status, rm)
	}
	m.Set("responses", responses)

	return m
}

// MarshalYAML renders doc as YAML with two-space indentation.
func MarshalYAML(doc *Map) ([]byte, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
