package models

// Template is a named, ordered list of columns an uploaded file's header
// must contain.
type Template struct {
	ID          string   `json:"id"          yaml:"-"`
	Name        string   `json:"name"        yaml:"name"`
	Description *string  `json:"description" yaml:"description"`
	Columns     []string `json:"columns"     yaml:"columns"`
}
