package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid markout.json",
		Detail:   "The markout.json configuration file is malformed.",
		DocURL:   "https://markout.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Missing required configuration",
		Detail:   "A required configuration value is not set.",
		DocURL:   "https://markout.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid output directory",
		Detail:   "The configured output directory is empty or not a valid path.",
		DocURL:   "https://markout.dev/docs/errors/E103",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Invalid base URL",
		Detail:   "The configured base URL could not be parsed.",
		DocURL:   "https://markout.dev/docs/errors/E104",
	},
	"E105": {
		Category: CategoryConfig,
		Message:  "Not a markout project",
		Detail:   "The current directory is not a markout project. Run this command from a directory with markout.json.",
		DocURL:   "https://markout.dev/docs/errors/E105",
	},
	"E106": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The configured port number must be between 1 and 65535.",
		DocURL:   "https://markout.dev/docs/errors/E106",
	},

	// ============================================
	// Catalog Errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategoryCatalog,
		Message:  "Invalid catalog file",
		Detail:   "The element catalog could not be parsed as YAML.",
		DocURL:   "https://markout.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryCatalog,
		Message:  "Duplicate catalog entry",
		Detail:   "Two catalog entries generate the same Go identifier.",
		DocURL:   "https://markout.dev/docs/errors/E202",
	},
	"E203": {
		Category: CategoryCatalog,
		Message:  "Invalid catalog identifier",
		Detail:   "A catalog entry name is not an exported Go identifier.",
		DocURL:   "https://markout.dev/docs/errors/E203",
	},
	"E204": {
		Category: CategoryCatalog,
		Message:  "Unknown attribute kind",
		Detail:   "Attribute kinds must be one of: string, int, float, bool, flag.",
		DocURL:   "https://markout.dev/docs/errors/E204",
	},
	"E205": {
		Category: CategoryCatalog,
		Message:  "Missing catalog field",
		Detail:   "A catalog entry is missing its name or tag.",
		DocURL:   "https://markout.dev/docs/errors/E205",
	},
	"E206": {
		Category: CategoryCatalog,
		Message:  "Code generation failed",
		Detail:   "The generated source could not be produced or formatted.",
		DocURL:   "https://markout.dev/docs/errors/E206",
	},

	// ============================================
	// Build Errors (E300-E399)
	// ============================================

	"E301": {
		Category: CategoryBuild,
		Message:  "Build failed",
		Detail:   "The site program exited with an error. Check the output for details.",
		DocURL:   "https://markout.dev/docs/errors/E301",
	},
	"E302": {
		Category: CategoryBuild,
		Message:  "Duplicate page path",
		Detail:   "Two pages are registered at the same URL path.",
		DocURL:   "https://markout.dev/docs/errors/E302",
	},
	"E303": {
		Category: CategoryBuild,
		Message:  "Invalid page path",
		Detail:   "Page paths must start with a slash and contain no dot segments.",
		DocURL:   "https://markout.dev/docs/errors/E303",
	},
	"E304": {
		Category: CategoryBuild,
		Message:  "Page render failed",
		Detail:   "A page function returned an error while rendering.",
		DocURL:   "https://markout.dev/docs/errors/E304",
	},
	"E305": {
		Category: CategoryBuild,
		Message:  "Asset not found",
		Detail:   "A referenced asset does not exist in the assets directory.",
		DocURL:   "https://markout.dev/docs/errors/E305",
	},
	"E306": {
		Category: CategoryBuild,
		Message:  "Go not found",
		Detail:   "Go is not installed or not in PATH.",
		DocURL:   "https://markout.dev/docs/errors/E306",
	},

	// ============================================
	// Publish Errors (E400-E499)
	// ============================================

	"E401": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "One or more files could not be written to the publish target.",
		DocURL:   "https://markout.dev/docs/errors/E401",
	},
	"E402": {
		Category: CategoryPublish,
		Message:  "Invalid publish target",
		Detail:   "The target path escapes the publish root.",
		DocURL:   "https://markout.dev/docs/errors/E402",
	},
	"E403": {
		Category: CategoryPublish,
		Message:  "S3 upload failed",
		Detail:   "An object could not be uploaded to the S3 bucket.",
		DocURL:   "https://markout.dev/docs/errors/E403",
	},
	"E404": {
		Category: CategoryPublish,
		Message:  "S3 listing failed",
		Detail:   "The S3 bucket contents could not be listed for pruning.",
		DocURL:   "https://markout.dev/docs/errors/E404",
	},
	"E405": {
		Category: CategoryPublish,
		Message:  "Nothing to publish",
		Detail:   "The output directory is missing or empty. Run a build first.",
		DocURL:   "https://markout.dev/docs/errors/E405",
	},

	// ============================================
	// CLI Errors (E500-E599)
	// ============================================

	"E501": {
		Category: CategoryCLI,
		Message:  "Project directory already exists",
		Detail:   "A directory with this name already exists.",
		DocURL:   "https://markout.dev/docs/errors/E501",
	},
	"E502": {
		Category: CategoryCLI,
		Message:  "Invalid project name",
		Detail:   "Project names must be valid Go module names.",
		DocURL:   "https://markout.dev/docs/errors/E502",
	},
	"E503": {
		Category: CategoryCLI,
		Message:  "Invalid template",
		Detail:   "The specified project template doesn't exist.",
		DocURL:   "https://markout.dev/docs/errors/E503",
	},
	"E504": {
		Category: CategoryCLI,
		Message:  "Preview server failed",
		Detail:   "The preview server could not be started.",
		DocURL:   "https://markout.dev/docs/errors/E504",
	},
	"E505": {
		Category: CategoryCLI,
		Message:  "Watch failed",
		Detail:   "The file watcher could not be started.",
		DocURL:   "https://markout.dev/docs/errors/E505",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
