package app

import (
	"github.com/vk/assemblygo/internal/catalog"

	"github.com/vk/assemblygo/modules/clock"
	"github.com/vk/assemblygo/modules/eventbus"
	"github.com/vk/assemblygo/modules/kvstore"
	"github.com/vk/assemblygo/modules/reporter"
	"github.com/vk/assemblygo/modules/stats"
)

// coreModules is the default set of built-in component types available to
// manifests.
var coreModules = []catalog.Module{
	clock.Module{},
	eventbus.Module{},
	kvstore.Module{},
	reporter.Module{},
	stats.Module{},
}
