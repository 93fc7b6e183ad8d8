package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/charcoles/charcole/config"
	"github.com/charcoles/charcole/net/resp"
	"github.com/charcoles/charcole/swagger"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// serveFromConfig marks a bare --serve; the address then comes from docs.addr.
const serveFromConfig = "config"

type docsFlags struct {
	format string
	output string
	serve  string
	watch  bool
}

// NewDocsCommand creates the documentation command
func NewDocsCommand(s *session) *cobra.Command {
	f := &docsFlags{}

	cmd := &cobra.Command{
		Use:   "docs [project-dir]",
		Short: "Build the OpenAPI document of a generated project",
		Long: `Build the OpenAPI document from the @openapi comment blocks of a project.
The document is printed, written to --output, or served with Swagger UI.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			if f.format != "json" && f.format != "yaml" {
				return fmt.Errorf("unsupported format: %s", f.format)
			}
			f.serve = serveAddr(f.serve, s.cfg.Docs)
			if f.watch && f.serve == "" && f.output == "" {
				return errors.New("--watch needs --serve or --output")
			}
			return runDocs(cmd, s, dir, f)
		},
	}

	cmd.Flags().StringVarP(&f.format, "format", "f", "json", "output format (json or yaml)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file path")
	cmd.Flags().StringVar(&f.serve, "serve", "", "serve Swagger UI on this address (docs.addr from config when no value is given)")
	cmd.Flags().Lookup("serve").NoOptDefVal = serveFromConfig
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "rebuild when source files change")
	return cmd
}

func runDocs(cmd *cobra.Command, s *session, dir string, f *docsFlags) error {
	log := s.log.WithContext(cmd.Context()).WithField("dir", dir)
	opts, err := docsOptions(dir, s.cfg.Docs, log)
	if err != nil {
		return err
	}

	src := &swagger.ReloadableDocument{}
	rebuild := func() error {
		doc, err := swagger.Build(opts)
		if err != nil {
			return err
		}
		src.Store(doc)
		if f.output != "" {
			return writeDocument(f.output, doc, f.format)
		}
		if f.serve == "" {
			data, err := encodeDocument(doc, f.format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		return nil
	}
	if err := rebuild(); err != nil {
		return err
	}
	if f.output != "" {
		log.WithField("output", f.output).Info("openapi document written")
	}
	if f.serve == "" && !f.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	errCh := make(chan error, 2)
	if f.watch {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- watchSources(ctx, dir, log, func() {
				if err := rebuild(); err != nil {
					log.WithError(err).Error("failed to rebuild openapi document")
					return
				}
				log.Info("openapi document rebuilt")
			})
		}()
	}
	if f.serve != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- serveDocs(ctx, f.serve, opts.Path, src, log)
		}()
	}

	select {
	case <-ctx.Done():
	case err = <-errCh:
	}
	stop()
	wg.Wait()
	return err
}

// serveAddr resolves the --serve value against the configured docs address.
func serveAddr(flag string, cfg *config.Docs) string {
	if flag != serveFromConfig {
		return flag
	}
	if cfg == nil || cfg.Addr == "" {
		return ":8080"
	}
	return cfg.Addr
}

// docsOptions starts from SWAGGER_* variables and fills what they leave unset
// from the project and the CLI config.
func docsOptions(dir string, cfg *config.Docs, log logrus.FieldLogger) (swagger.Options, error) {
	opts, err := swagger.OptionsFromEnv()
	if err != nil {
		return swagger.Options{}, err
	}
	if _, ok := os.LookupEnv("SWAGGER_TITLE"); !ok {
		if name := projectName(dir); name != "" {
			opts.Title = name + " API"
		}
	}
	if _, ok := os.LookupEnv("SWAGGER_PATH"); !ok && cfg.Path != "" {
		opts.Path = cfg.Path
	}
	if len(opts.APIs) == 0 {
		opts.APIs = cfg.APIs
	}
	opts.BaseDir = dir
	opts.Logger = log
	return opts, nil
}

// projectName reads the name field of dir/package.json.
func projectName(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return ""
	}
	var pkg struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ""
	}
	return pkg.Name
}

func encodeDocument(doc *openapi3.T, format string) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	if format != "yaml" {
		return append(data, '\n'), nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeDocument(path string, doc *openapi3.T, format string) error {
	data, err := encodeDocument(doc, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func newDocsRouter(path string, src swagger.DocumentSource) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	swagger.Mount(r, path, src)
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, path+"/index.html")
	})
	r.NoRoute(func(c *gin.Context) {
		resp.NotFound(c.Writer, "")
	})
	return r
}

func serveDocs(ctx context.Context, addr, path string, src swagger.DocumentSource, log logrus.FieldLogger) error {
	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newDocsRouter(path, src),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Infof("serving Swagger UI at http://%s%s", displayAddr(addr), path)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("docs server: %w", err)
	}
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
