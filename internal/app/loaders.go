package app

import (
	"github.com/vk/tcdsl/internal/config"
	"github.com/vk/tcdsl/internal/hcl"
	"github.com/vk/tcdsl/internal/yamlcfg"
)

// defaultLoaders is the list of definition formats compiled into the binary.
// Ops are registered in loader order, HCL first.
func defaultLoaders() []config.Loader {
	return []config.Loader{
		hcl.NewLoader(),
		yamlcfg.NewLoader(),
	}
}
