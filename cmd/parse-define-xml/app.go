package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/defineEditor/parse-define-xml/define"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type app struct {
	cfg     *Config
	version define.Version
	log     *zap.Logger
	out     io.Writer
}

// run parses every file, at most cfg.Jobs at a time, and renders the
// results in argument order. The first failure cancels the remaining files.
func (a *app) run(ctx context.Context, paths []string) error {
	docs := make([]define.DefineXML, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := a.parseFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			docs[i] = doc

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return a.render(paths, docs)
}

func (a *app) parseFile(path string) (define.DefineXML, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	a.log.Debug("Parsing Define-XML",
		zap.String("file", path),
		zap.Stringer("version", a.version),
		zap.Bool("arm", a.cfg.ARM),
		zap.Int("bytes", len(data)))

	doc, err := define.Parse(string(data), a.version, a.cfg.ARM)
	if err != nil {
		return nil, err
	}

	base := doc.Base()
	a.log.Info("Parsed Define-XML",
		zap.String("file", path),
		zap.String("metaDataVersion", base.OID),
		zap.Int("itemGroupDefs", base.ItemGroupDefs.Len()),
		zap.Int("itemDefs", base.ItemDefs.Len()),
		zap.Bool("arm", doc.HasARM()),
		zap.Duration("elapsed", time.Since(start)))

	for _, issue := range define.CheckVocabulary(doc) {
		a.log.Warn("Unpublished controlled term",
			zap.String("file", path),
			zap.Stringer("element", issue.Location),
			zap.String("field", issue.Field),
			zap.String("value", issue.Value),
			zap.String("suggestion", issue.Suggestion))
	}

	return doc, nil
}

func (a *app) render(paths []string, docs []define.DefineXML) error {
	switch a.cfg.Format {
	case formatDump:
		for i, doc := range docs {
			if len(docs) > 1 {
				fmt.Fprintf(a.out, "# %s\n", paths[i])
			}

			dumpConfig.Fdump(a.out, doc)
		}

		return nil
	default:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")

		if len(docs) == 1 {
			return enc.Encode(docs[0])
		}

		byPath := make(map[string]define.DefineXML, len(docs))
		for i, doc := range docs {
			byPath[paths[i]] = doc
		}

		return enc.Encode(byPath)
	}
}
