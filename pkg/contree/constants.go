package contree

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Command completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration
	ExitTraversal        = 20 // Path escaped its boundary
	ExitAmbiguous        = 21 // Strict lookup matched several files
	ExitInvalidCriterion = 22 // Malformed query criterion
	ExitTreeLoad         = 23 // Content tree could not be loaded
)

const (
	// DefaultMetadataSuffix is the suffix of sidecar metadata files.
	// A file named "cover.png.meta.yaml" carries the metadata of "cover.png"
	// and is never addressable as a content file itself.
	DefaultMetadataSuffix = ".meta.yaml"

	// PageSettingsFile is the per-directory settings document read by the directory mapper.
	PageSettingsFile = "page.yaml"

	// PageContentFile is the per-directory raw content document read by the directory mapper.
	PageContentFile = "content.md"

	// RootPath is the full path of the root page of every tree.
	RootPath = "/"
)
