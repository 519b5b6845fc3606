package tool

// BuiltinOptions carries runtime dependencies needed by built-in tool
// constructors.
type BuiltinOptions struct {
	// Confirm gates every side-effecting builtin. Required.
	Confirm Confirmer
	// MaxOutputBytes caps captured tool output. Zero means the default.
	MaxOutputBytes int
	// AutoAllowCommands lists command names (first shell word) that bash
	// may run without prompting. Empty means everything prompts.
	AutoAllowCommands []string
}

const DefaultBuiltinMaxOutputBytes = 100_000

func (o BuiltinOptions) OutputLimit() int {
	if o.MaxOutputBytes > 0 {
		return o.MaxOutputBytes
	}
	return DefaultBuiltinMaxOutputBytes
}

// Common input structs

type BashInput struct {
	Command string `json:"command"`
}

type ReadFileInput struct {
	FilePath string `json:"file_path"`
	Offset   *int   `json:"offset"`
	Limit    *int   `json:"limit"`
}

type WriteFileInput struct {
	FilePath string `json:"file_path"`
	Content  string `json:"content"`
}

type EditFileInput struct {
	FilePath  string `json:"file_path"`
	OldString string `json:"old_string"`
	NewString string `json:"new_string"`
}
