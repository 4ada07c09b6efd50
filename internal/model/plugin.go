package model

// PluginManifest is the document served at /.well-known/ai-plugin.json.
type PluginManifest struct {
	ID                  string    `json:"id"`
	SchemaVersion       string    `json:"schema_version"`
	NameForHuman        string    `json:"name_for_human"`
	NameForModel        string    `json:"name_for_model"`
	DescriptionForHuman string    `json:"description_for_human"`
	DescriptionForModel string    `json:"description_for_model"`
	API                 PluginAPI `json:"api"`
}

// PluginAPI points plugin clients at the OpenAPI document.
type PluginAPI struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}
