package config

// SourceFileExt is the canonical source file extension.
const SourceFileExt = ".mor"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{SourceFileExt, ".morsel"}

// ManifestFile is the optional per-directory interpreter manifest.
const ManifestFile = "morsel.yaml"

// DefaultPrompt is shown by the REPL when the manifest sets none.
const DefaultPrompt = "morsel> "
