package domain

// ArtifactKind classifies a wasm binary by its header.
type ArtifactKind string

const (
	KindCoreModule ArtifactKind = "core-module"
	KindComponent  ArtifactKind = "component"
	KindUnknown    ArtifactKind = "unknown"
)

// ArtifactInfo is the result of a well-formedness check on one wasm file.
type ArtifactInfo struct {
	Path      string       `json:"path"`
	Kind      ArtifactKind `json:"kind"`
	SizeBytes int64        `json:"size_bytes"`
	Valid     bool         `json:"valid"`
	Detail    string       `json:"detail,omitempty"`
}

// InspectReport extends ArtifactInfo with the interface surface counts taken
// from the extracted WIT text, when the extraction tool was available.
type InspectReport struct {
	Artifact     ArtifactInfo `json:"artifact"`
	WitAvailable bool         `json:"wit_available"`
	Interfaces   int          `json:"interfaces"`
	Exports      int          `json:"exports"`
	Imports      int          `json:"imports"`
	Note         string       `json:"note,omitempty"`
}

// InspectSummary aggregates reports over a batch of artifacts.
type InspectSummary struct {
	Reports  []InspectReport `json:"reports"`
	Valid    int             `json:"valid"`
	Total    int             `json:"total"`
	AllValid bool            `json:"all_valid"`
}
