package app

import (
	"fmt"

	"github.com/vk/tcdsl/internal/opref"
)

// renderAll prints every registered definition, separated by blank lines.
func (a *App) renderAll() error {
	for i, def := range a.registry.Definitions() {
		if i > 0 {
			if _, err := fmt.Fprintln(a.outW); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(a.outW, def.String()); err != nil {
			return err
		}
	}
	return nil
}

// renderRef prints one definition, or a single specialization as
// `name[index]: {bindings}`.
func (a *App) renderRef(ref opref.Ref) error {
	def, spec, err := a.registry.Lookup(ref)
	if err != nil {
		return err
	}
	if spec == nil {
		_, err = fmt.Fprintln(a.outW, def.String())
		return err
	}
	_, err = fmt.Fprintf(a.outW, "%s: %s\n", ref, spec)
	return err
}
