// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount is the number of registered configuration fields.
const DefinedFieldsCount = 11

// Self-check harness - these keys parameterize the bii check suites.
const (
	HarnessSize           = "harness.size"
	HarnessPromptSize     = "harness.prompt_size"
	HarnessVectorSections = "harness.vector_sections"
	HarnessStackSections  = "harness.stack_sections"
)

// Rendering - these keys shape how container contents are printed.
const (
	RenderWrap = "render.wrap"
)

// Scripting - these keys configure the embedded Lua runtime.
const (
	ScriptPreloadLibs = "script.preload_libs"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
)
