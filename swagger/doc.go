// Package swagger assembles an OpenAPI 3 document for a gin application and
// serves it through Swagger UI.
//
// Request schemas are ordinary Go values. They are converted to JSON Schema by
// a Converter (invopop/jsonschema by default), post-processed into component
// schemas, and combined with a library of common response envelopes and any
// path operations documented in @openapi comment blocks.
//
//	type CreateUser struct {
//	    Email    string `json:"email" jsonschema:"format=email"`
//	    Password string `json:"password" jsonschema:"minLength=8"`
//	}
//
//	doc, err := swagger.Setup(router, swagger.Options{
//	    Title:   "Users API",
//	    Version: "1.0.0",
//	    Schemas: map[string]swagger.Schema{
//	        "CreateUser": &swagger.Request[CreateUser, struct{}, struct{}]{},
//	    },
//	    APIs: []string{"internal/**/*.go"},
//	})
//
// Request wrappers expose their body through BodyCarrier, so the component
// documents the body rather than the {body, query, params} wrapper.
package swagger
