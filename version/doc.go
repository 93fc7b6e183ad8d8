// Package version exposes build information for create-charcole.
//
// Values are injected with ldflags:
//
//	go build -ldflags "-X github.com/charcoles/charcole/version.Version=1.2.0 \
//	  -X github.com/charcoles/charcole/version.Revision=$(git rev-parse --short HEAD) \
//	  -X github.com/charcoles/charcole/version.BuiltAt=$(date -u +%FT%TZ)" ./cmd/create-charcole
//
// Binaries built with go install fall back to the module build info.
package version
