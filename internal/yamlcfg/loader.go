package yamlcfg

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/tcdsl/internal/config"
	"github.com/vk/tcdsl/internal/ctxlog"
	"github.com/vk/tcdsl/internal/fsutil"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingName       = errors.New("op is missing a name")
	ErrInvalidSpecialize = errors.New("specialization must be a mapping of parameter names to types")
)

// Extensions are the file extensions handled by this loader.
var Extensions = []string{".yaml", ".yml"}

type fileRoot struct {
	Ops []opNode `yaml:"ops"`
}

type opNode struct {
	Name            string      `yaml:"name"`
	Description     string      `yaml:"description"`
	TypeParams      []string    `yaml:"type_params"`
	Specializations []yaml.Node `yaml:"specializations"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every YAML file under paths and translates its ops.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}

	model := &config.Model{}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}

		var root fileRoot
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}

		for i := range root.Ops {
			decl, err := translateOp(&root.Ops[i], file)
			if err != nil {
				return nil, err
			}
			model.Ops = append(model.Ops, decl)
		}
		logger.Debug("Loaded op definitions from YAML file.", "file", file, "ops", len(root.Ops))
	}

	logger.Debug("YAML loading complete.", "ops", len(model.Ops))
	return model, nil
}

func translateOp(op *opNode, file string) (*config.OpDecl, error) {
	if op.Name == "" {
		return nil, fmt.Errorf("%s: %w", file, ErrMissingName)
	}

	decl := &config.OpDecl{
		Name:        op.Name,
		Description: op.Description,
		TypeParams:  op.TypeParams,
		File:        file,
	}

	for i := range op.Specializations {
		node := &op.Specializations[i]
		if node.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%s:%d: op %q, specialization %d: %w", file, node.Line, op.Name, i, ErrInvalidSpecialize)
		}

		bindings := make(map[string]hcl.Expression, len(node.Content)/2)
		for j := 0; j+1 < len(node.Content); j += 2 {
			key, value := node.Content[j], node.Content[j+1]
			if _, seen := bindings[key.Value]; seen {
				return nil, fmt.Errorf("%s:%d: op %q, parameter %q repeated: %w", file, key.Line, op.Name, key.Value, ErrInvalidSpecialize)
			}
			if value.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%s:%d: op %q, parameter %q: %w", file, value.Line, op.Name, key.Value, ErrInvalidSpecialize)
			}

			pos := hcl.Pos{Line: value.Line, Column: value.Column, Byte: 0}
			expr, diags := hclsyntax.ParseExpression([]byte(value.Value), file, pos)
			if diags.HasErrors() {
				return nil, fmt.Errorf("op %q, parameter %q: %w", op.Name, key.Value, diags)
			}
			bindings[key.Value] = expr
		}
		decl.Specializations = append(decl.Specializations, &config.SpecDecl{Bindings: bindings})
	}
	return decl, nil
}
