package swagger

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/charcoles/charcole/logging/logger"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SecuritySchemeName is the name of the bearer scheme every document carries.
const SecuritySchemeName = "bearerAuth"

// Build assembles the OpenAPI document described by opts. Schema conversion,
// comment scanning and reference resolution problems are logged and skipped;
// only invalid options are returned as errors.
func Build(opts Options) (*openapi3.T, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = logger.StdLogger()
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       opts.Title,
			Version:     opts.Version,
			Description: opts.Description,
		},
		Components: &openapi3.Components{
			Schemas:   openapi3.Schemas{},
			Responses: openapi3.ResponseBodies{},
			SecuritySchemes: openapi3.SecuritySchemes{
				SecuritySchemeName: &openapi3.SecuritySchemeRef{Value: openapi3.NewJWTSecurityScheme()},
			},
		},
		Paths: openapi3.NewPaths(),
	}
	for _, url := range opts.Servers {
		doc.Servers = append(doc.Servers, &openapi3.Server{URL: url})
	}

	for name, js := range registerSafely(opts, log) {
		var s openapi3.Schema
		if err := roundTrip(js, &s); err != nil {
			log.WithField("schema", name).WithError(err).Warn("dropping schema not representable in OpenAPI")
			continue
		}
		doc.Components.Schemas[name] = &openapi3.SchemaRef{Value: &s}
	}

	for name, r := range mergeResponses(opts) {
		var res openapi3.Response
		if err := roundTrip(r, &res); err != nil {
			log.WithField("response", name).WithError(err).Warn("dropping invalid response")
			continue
		}
		doc.Components.Responses[name] = &openapi3.ResponseRef{Value: &res}
	}

	if len(opts.APIs) > 0 {
		paths, errs := ScanPaths(opts.BaseDir, opts.APIs)
		for _, err := range errs {
			log.WithError(err).Warn("skipping openapi comment")
		}
		for _, p := range slices.Sorted(maps.Keys(paths)) {
			var item openapi3.PathItem
			if err := roundTrip(paths[p], &item); err != nil {
				log.WithField("path", p).WithError(err).Warn("dropping invalid path item")
				continue
			}
			doc.Paths.Set(p, &item)
		}
	}

	if err := openapi3.NewLoader().ResolveRefsIn(doc, nil); err != nil {
		log.WithError(err).Warn("unresolved references in openapi document")
	}
	return doc, nil
}

// Setup builds the document and mounts the UI on r at opts.Path.
func Setup(r gin.IRoutes, opts Options) (*openapi3.T, error) {
	doc, err := Build(opts)
	if err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	Mount(r, opts.Path, StaticDocument(doc))

	log := opts.Logger
	if log == nil {
		log = logger.StdLogger()
	}
	log.WithField("path", opts.Path).Info("swagger docs mounted")
	return doc, nil
}

// registerSafely never lets a schema problem stop document assembly.
func registerSafely(opts Options, log logrus.FieldLogger) (out ComponentMap) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("schema registration failed, continuing without schemas")
			out = ComponentMap{}
		}
	}()
	if len(opts.Schemas) == 0 {
		return ComponentMap{}
	}
	reg := NewRegistry(WithLogger(log))
	if opts.Converter != nil {
		reg = NewRegistry(WithLogger(log), WithConverter(opts.Converter))
	}
	return reg.RegisterSchemas(opts.Schemas)
}

func mergeResponses(opts Options) map[string]Response {
	out := map[string]Response{}
	if *opts.IncludeCommonResponses {
		maps.Copy(out, CommonResponses())
	}
	maps.Copy(out, opts.CustomResponses)
	return out
}

func roundTrip(in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
