package executor

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/framegraphgo/internal/config"
	"github.com/vk/framegraphgo/internal/registry"
)

// decodeInput materializes a pass's params into the handler's input
// struct. A param the struct does not declare is rejected; a declared
// field the frame omits keeps its zero value.
func decodeInput(handler *registry.Handler, pass *config.Pass) (any, error) {
	if handler.NewInput == nil {
		return nil, nil
	}

	input := handler.NewInput()
	if len(pass.Params) == 0 {
		return input, nil
	}

	obj := cty.ObjectVal(pass.Params)
	if err := gocty.FromCtyValue(obj, input); err != nil {
		return nil, fmt.Errorf("invalid params for pass '%s': %w", pass.Name, err)
	}
	return input, nil
}
