package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/tcdsl/internal/config"
	"github.com/vk/tcdsl/internal/ctxlog"
	"github.com/vk/tcdsl/internal/fsutil"
)

// Extension is the file extension handled by this loader.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and translates its op blocks.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, op := range root.Ops {
			decl, err := translateOp(op, file)
			if err != nil {
				return nil, err
			}
			model.Ops = append(model.Ops, decl)
		}
		logger.Debug("Loaded op definitions from HCL file.", "file", file, "ops", len(root.Ops))
	}

	logger.Debug("HCL loading complete.", "ops", len(model.Ops))
	return model, nil
}

// translateOp converts an op block into the agnostic model.
func translateOp(op *opBlock, file string) (*config.OpDecl, error) {
	decl := &config.OpDecl{
		Name:        op.Name,
		Description: op.Description,
		TypeParams:  op.TypeParams,
		File:        file,
	}

	for i, s := range op.Specializations {
		attrs, diags := s.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("op %q, specialization %d in %s: %w", op.Name, i, file, diags)
		}
		decl.Specializations = append(decl.Specializations, &config.SpecDecl{
			Bindings: extractExpressions(attrs),
		})
	}
	return decl, nil
}

func extractExpressions(attrs hcl.Attributes) map[string]hcl.Expression {
	exprs := make(map[string]hcl.Expression, len(attrs))
	for name, attr := range attrs {
		exprs[name] = attr.Expr
	}
	return exprs
}
