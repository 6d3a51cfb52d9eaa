package traduki

// Pagination is the cursor carried by every list response: the offset of the
// first returned item and the limit the server applied.
type Pagination struct {
	Offset int `json:"offset" yaml:"offset"`
	Limit  int `json:"limit"  yaml:"limit"`
}

// ListResponse is a single page of a server-held collection.
type ListResponse[T any] struct {
	Data       []T        `json:"data"       yaml:"data"`
	Pagination Pagination `json:"pagination" yaml:"pagination"`
}

// PatchOp enumerates the patch operation verbs.
type PatchOp string

const (
	PatchOpAdd     PatchOp = "add"
	PatchOpRemove  PatchOp = "remove"
	PatchOpReplace PatchOp = "replace"
	PatchOpMove    PatchOp = "move"
	PatchOpCopy    PatchOp = "copy"
	PatchOpTest    PatchOp = "test"
)

// PatchOperation describes one mutation to a server-held resource. The SDK
// treats the path and value as opaque.
type PatchOperation struct {
	Op    PatchOp `json:"op"              yaml:"op"`
	Path  string  `json:"path"            yaml:"path"`
	Value any     `json:"value,omitempty" yaml:"value,omitempty"`
}

// OperationStatus enumerates the states of asynchronous server work
// (translation builds, exports, imports, report generation).
type OperationStatus string

const (
	OperationCreated    OperationStatus = "created"
	OperationInProgress OperationStatus = "inProgress"
	OperationFinished   OperationStatus = "finished"
	OperationFailed     OperationStatus = "failed"
	OperationCanceled   OperationStatus = "canceled"
)

// Terminal reports whether the status is final.
func (s OperationStatus) Terminal() bool {
	return s == OperationFinished || s == OperationFailed || s == OperationCanceled
}

// Operation is the status object for asynchronous server work.
type Operation struct {
	Identifier string          `json:"identifier"           yaml:"identifier"`
	Status     OperationStatus `json:"status"               yaml:"status"`
	Progress   int             `json:"progress"             yaml:"progress"`
	Attributes map[string]any  `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	CreatedAt  *Timestamp      `json:"createdAt,omitempty"  yaml:"createdAt,omitempty"`
	UpdatedAt  *Timestamp      `json:"updatedAt,omitempty"  yaml:"updatedAt,omitempty"`
	StartedAt  *Timestamp      `json:"startedAt,omitempty"  yaml:"startedAt,omitempty"`
	FinishedAt *Timestamp      `json:"finishedAt,omitempty" yaml:"finishedAt,omitempty"`
}

// DownloadLink is a pre-signed URL for generated artifacts.
type DownloadLink struct {
	URL       string     `json:"url"                 yaml:"url"`
	ExpiresAt *Timestamp `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`
}
