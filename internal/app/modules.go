package app

import (
	"github.com/vk/framegraphgo/internal/registry"
	"github.com/vk/framegraphgo/modules/print"
	"github.com/vk/framegraphgo/modules/work"
)

// coreModules is the definitive list of all modules that are compiled into
// the framegraphgo binary.
var coreModules = []registry.Module{
	&print.Module{},
	&work.Module{},
}
