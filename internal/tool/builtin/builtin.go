package builtin

import (
	toolcore "github.com/harunnryd/genji/internal/tool"
)

// All returns the built-in tools in advertisement order. The order is
// fixed: the model conditions on the tool list, so it must be identical
// on every request.
func All(options toolcore.BuiltinOptions) []toolcore.Tool {
	return []toolcore.Tool{
		NewBashTool(options),
		NewReadFileTool(options),
		NewWriteFileTool(options),
		NewEditFileTool(options),
	}
}
