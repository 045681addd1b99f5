package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/tcdsl/internal/ctxlog"
)

// Validate checks the registered definitions. A declared type parameter that
// no specialization binds is reported as a warning. In strict mode, an op
// without any specialization is an error.
func (r *Registry) Validate(ctx context.Context, strict bool) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, def := range r.Definitions() {
		specs := def.Specializations()
		if len(specs) == 0 {
			if strict {
				errs = append(errs, fmt.Sprintf("op '%s': no specializations declared", def.Name()))
			} else {
				logger.Warn("Op declares no specializations.", "op", def.Name())
			}
			continue
		}

		for _, param := range def.TypeParams() {
			bound := false
			for _, s := range specs {
				if _, ok := s.Lookup(param.Name); ok {
					bound = true
					break
				}
			}
			if !bound {
				logger.Warn("Type parameter is never bound by any specialization.", "op", def.Name(), "param", param.Name)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
