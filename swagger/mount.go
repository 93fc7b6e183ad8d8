package swagger

import (
	"net/http"
	"strings"
	"sync"

	"github.com/charcoles/charcole/net/resp"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// DocumentSource provides the document served at {path}/doc.json.
type DocumentSource interface {
	Document() *openapi3.T
}

// StaticDocument returns a source that always serves doc.
func StaticDocument(doc *openapi3.T) DocumentSource { return staticSource{doc} }

type staticSource struct{ doc *openapi3.T }

func (s staticSource) Document() *openapi3.T { return s.doc }

// ReloadableDocument holds a document that can be replaced while it is served.
type ReloadableDocument struct {
	mu  sync.RWMutex
	doc *openapi3.T
}

// Store replaces the served document.
func (d *ReloadableDocument) Store(doc *openapi3.T) {
	d.mu.Lock()
	d.doc = doc
	d.mu.Unlock()
}

// Document implements DocumentSource.
func (d *ReloadableDocument) Document() *openapi3.T {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.doc
}

// Mount registers the Swagger UI under path. The UI loads its document from
// {path}/doc.json.
func Mount(r gin.IRoutes, path string, src DocumentSource) {
	path = "/" + strings.Trim(path, "/")
	ui := httpSwagger.Handler(
		httpSwagger.URL(path+"/doc.json"),
		httpSwagger.DeepLinking(true),
	)
	r.GET(path+"/*any", func(c *gin.Context) {
		switch c.Param("any") {
		case "/doc.json":
			doc := src.Document()
			if doc == nil {
				resp.Fail(c.Writer, &resp.Exception{Status: http.StatusServiceUnavailable, Message: "API documentation is not available yet"})
				return
			}
			c.JSON(http.StatusOK, doc)
		case "", "/":
			c.Redirect(http.StatusMovedPermanently, path+"/index.html")
		default:
			ui.ServeHTTP(c.Writer, c.Request)
		}
	})
}
