package templates

// Data is passed to every *.tmpl file in a template tree.
type Data struct {
	Name     string // Project name
	Language string // ts or js
	Auth     bool   // Whether the auth module is included
	Swagger  bool   // Whether API documentation is wired in
}
