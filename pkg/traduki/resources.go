package traduki

import (
	"context"
	"io"
)

// Visibility controls who can see a project.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityOpen    Visibility = "open"
)

// Project represents a localization project.
type Project struct {
	ID                int64      `json:"id"                 yaml:"id"`
	Name              string     `json:"name"               yaml:"name"`
	Identifier        string     `json:"identifier"         yaml:"identifier"`
	Description       string     `json:"description"        yaml:"description"`
	Visibility        Visibility `json:"visibility"         yaml:"visibility"`
	SourceLanguageID  string     `json:"sourceLanguageId"   yaml:"sourceLanguageId"`
	TargetLanguageIDs []string   `json:"targetLanguageIds"  yaml:"targetLanguageIds"`
	LogoURL           string     `json:"logoUrl,omitempty"  yaml:"logoUrl,omitempty"`
	CreatedAt         *Timestamp `json:"createdAt"          yaml:"createdAt"`
	UpdatedAt         *Timestamp `json:"updatedAt"          yaml:"updatedAt"`
}

// ProjectCreateRequest creates a project.
type ProjectCreateRequest struct {
	Name              string     `json:"name"`
	Identifier        string     `json:"identifier,omitempty"`
	SourceLanguageID  string     `json:"sourceLanguageId"`
	TargetLanguageIDs []string   `json:"targetLanguageIds,omitempty"`
	Visibility        Visibility `json:"visibility,omitempty"`
	Description       string     `json:"description,omitempty"`
}

// ProjectsClient manages projects.
type ProjectsClient interface {
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Project], error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Project, error)
	Get(ctx context.Context, projectID int64) (*Project, error)
	Add(ctx context.Context, request *ProjectCreateRequest) (*Project, error)
	Edit(ctx context.Context, projectID int64, ops []PatchOperation) (*Project, error)
	Delete(ctx context.Context, projectID int64) error
}

// FileType identifies the format of a source file.
type FileType string

const (
	FileTypeAuto       FileType = "auto"
	FileTypeAndroid    FileType = "android"
	FileTypeStrings    FileType = "macosx"
	FileTypeGettext    FileType = "gettext"
	FileTypeProperties FileType = "properties"
	FileTypeJSON       FileType = "json"
	FileTypeXLIFF      FileType = "xliff"
)

// File represents a translatable source file.
type File struct {
	ID          int64      `json:"id"                    yaml:"id"`
	ProjectID   int64      `json:"projectId"             yaml:"projectId"`
	BranchID    *int64     `json:"branchId,omitempty"    yaml:"branchId,omitempty"`
	DirectoryID *int64     `json:"directoryId,omitempty" yaml:"directoryId,omitempty"`
	Name        string     `json:"name"                  yaml:"name"`
	Title       string     `json:"title,omitempty"       yaml:"title,omitempty"`
	Type        FileType   `json:"type"                  yaml:"type"`
	Path        string     `json:"path"                  yaml:"path"`
	Status      string     `json:"status"                yaml:"status"`
	RevisionID  int64      `json:"revisionId"            yaml:"revisionId"`
	CreatedAt   *Timestamp `json:"createdAt"             yaml:"createdAt"`
	UpdatedAt   *Timestamp `json:"updatedAt"             yaml:"updatedAt"`
}

// FileCreateRequest registers an uploaded storage object as a source file.
type FileCreateRequest struct {
	StorageID   int64    `json:"storageId"`
	Name        string   `json:"name"`
	Title       string   `json:"title,omitempty"`
	DirectoryID int64    `json:"directoryId,omitempty"`
	BranchID    int64    `json:"branchId,omitempty"`
	Type        FileType `json:"type,omitempty"`
}

// FileUpdateRequest replaces a file's content from a storage object.
type FileUpdateRequest struct {
	StorageID int64 `json:"storageId"`
}

// Directory represents a folder in a project's file tree.
type Directory struct {
	ID        int64      `json:"id"              yaml:"id"`
	ProjectID int64      `json:"projectId"       yaml:"projectId"`
	Name      string     `json:"name"            yaml:"name"`
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Path      string     `json:"path"            yaml:"path"`
	CreatedAt *Timestamp `json:"createdAt"       yaml:"createdAt"`
	UpdatedAt *Timestamp `json:"updatedAt"       yaml:"updatedAt"`
}

// DirectoryCreateRequest creates a directory.
type DirectoryCreateRequest struct {
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	DirectoryID int64  `json:"directoryId,omitempty"`
	BranchID    int64  `json:"branchId,omitempty"`
}

// SourceFilesClient manages the project file tree.
type SourceFilesClient interface {
	ListFiles(ctx context.Context, projectID int64, opts *ListOptions) (*ListResponse[File], error)
	GetFile(ctx context.Context, projectID, fileID int64) (*File, error)
	AddFile(ctx context.Context, projectID int64, request *FileCreateRequest) (*File, error)
	UpdateFile(ctx context.Context, projectID, fileID int64, request *FileUpdateRequest) (*File, error)
	EditFile(ctx context.Context, projectID, fileID int64, ops []PatchOperation) (*File, error)
	DeleteFile(ctx context.Context, projectID, fileID int64) error
	DownloadFile(ctx context.Context, projectID, fileID int64) (*DownloadLink, error)

	ListDirectories(ctx context.Context, projectID int64, opts *ListOptions) (*ListResponse[Directory], error)
	GetDirectory(ctx context.Context, projectID, directoryID int64) (*Directory, error)
	AddDirectory(ctx context.Context, projectID int64, request *DirectoryCreateRequest) (*Directory, error)
	DeleteDirectory(ctx context.Context, projectID, directoryID int64) error
}

// SourceString represents one translatable string.
type SourceString struct {
	ID         int64      `json:"id"                  yaml:"id"`
	ProjectID  int64      `json:"projectId"           yaml:"projectId"`
	FileID     int64      `json:"fileId"              yaml:"fileId"`
	Identifier string     `json:"identifier"          yaml:"identifier"`
	Text       string     `json:"text"                yaml:"text"`
	Context    string     `json:"context,omitempty"   yaml:"context,omitempty"`
	MaxLength  int        `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	IsHidden   bool       `json:"isHidden"            yaml:"isHidden"`
	LabelIDs   []int64    `json:"labelIds,omitempty"  yaml:"labelIds,omitempty"`
	CreatedAt  *Timestamp `json:"createdAt"           yaml:"createdAt"`
	UpdatedAt  *Timestamp `json:"updatedAt"           yaml:"updatedAt"`
}

// StringCreateRequest creates a source string.
type StringCreateRequest struct {
	FileID     int64   `json:"fileId"`
	Identifier string  `json:"identifier,omitempty"`
	Text       string  `json:"text"`
	Context    string  `json:"context,omitempty"`
	MaxLength  int     `json:"maxLength,omitempty"`
	IsHidden   bool    `json:"isHidden,omitempty"`
	LabelIDs   []int64 `json:"labelIds,omitempty"`
}

// StringsClient manages source strings. BatchEdit applies a sequence of
// patch entries across many strings in one request.
type StringsClient interface {
	List(ctx context.Context, projectID int64, opts *ListOptions) (*ListResponse[SourceString], error)
	ListAll(ctx context.Context, projectID int64, opts *ListOptions) ([]SourceString, error)
	Get(ctx context.Context, projectID, stringID int64) (*SourceString, error)
	Add(ctx context.Context, projectID int64, request *StringCreateRequest) (*SourceString, error)
	Edit(ctx context.Context, projectID, stringID int64, ops []PatchOperation) (*SourceString, error)
	BatchEdit(ctx context.Context, projectID int64, ops []PatchOperation) ([]SourceString, error)
	Delete(ctx context.Context, projectID, stringID int64) error
}

// Translation represents one translation of a string into a target language.
type Translation struct {
	ID         int64      `json:"id"               yaml:"id"`
	StringID   int64      `json:"stringId"         yaml:"stringId"`
	LanguageID string     `json:"languageId"       yaml:"languageId"`
	Text       string     `json:"text"             yaml:"text"`
	Rating     int        `json:"rating,omitempty" yaml:"rating,omitempty"`
	UserID     int64      `json:"userId,omitempty" yaml:"userId,omitempty"`
	CreatedAt  *Timestamp `json:"createdAt"        yaml:"createdAt"`
}

// TranslationCreateRequest suggests a translation.
type TranslationCreateRequest struct {
	StringID   int64  `json:"stringId"`
	LanguageID string `json:"languageId"`
	Text       string `json:"text"`
}

// PreTranslateMethod selects the engine for pre-translation.
type PreTranslateMethod string

const (
	PreTranslateMT PreTranslateMethod = "mt"
	PreTranslateTM PreTranslateMethod = "tm"
)

// PreTranslationRequest starts server-side pre-translation.
type PreTranslationRequest struct {
	LanguageIDs []string           `json:"languageIds"`
	FileIDs     []int64            `json:"fileIds,omitempty"`
	Method      PreTranslateMethod `json:"method,omitempty"`
	EngineID    int64              `json:"engineId,omitempty"`
}

// BuildRequest starts a project translation build.
type BuildRequest struct {
	BranchID                int64    `json:"branchId,omitempty"`
	TargetLanguageIDs       []string `json:"targetLanguageIds,omitempty"`
	SkipUntranslatedStrings bool     `json:"skipUntranslatedStrings,omitempty"`
	ExportApprovedOnly      bool     `json:"exportApprovedOnly,omitempty"`
}

// TranslationsClient manages translations, pre-translation, and builds.
type TranslationsClient interface {
	ListByLanguage(ctx context.Context, projectID int64, languageID string, opts *ListOptions) (*ListResponse[Translation], error)
	ListByString(ctx context.Context, projectID, stringID int64, opts *ListOptions) (*ListResponse[Translation], error)
	Get(ctx context.Context, projectID, translationID int64) (*Translation, error)
	Add(ctx context.Context, projectID int64, request *TranslationCreateRequest) (*Translation, error)
	Delete(ctx context.Context, projectID, translationID int64) error

	ApplyPreTranslation(ctx context.Context, projectID int64, request *PreTranslationRequest) (*Operation, error)
	PreTranslationStatus(ctx context.Context, projectID int64, preTranslationID string) (*Operation, error)

	BuildProjectTranslation(ctx context.Context, projectID int64, request *BuildRequest) (*Operation, error)
	BuildStatus(ctx context.Context, projectID int64, buildID string) (*Operation, error)
	DownloadBuild(ctx context.Context, projectID int64, buildID string) (*DownloadLink, error)
}

// CommentType distinguishes plain comments from tracked issues.
type CommentType string

const (
	CommentTypeComment CommentType = "comment"
	CommentTypeIssue   CommentType = "issue"
)

// IssueStatus tracks the lifecycle of an issue comment.
type IssueStatus string

const (
	IssueStatusOpen     IssueStatus = "open"
	IssueStatusResolved IssueStatus = "resolved"
)

// StringComment is a discussion entry attached to a source string.
type StringComment struct {
	ID          int64       `json:"id"                    yaml:"id"`
	StringID    int64       `json:"stringId"              yaml:"stringId"`
	UserID      int64       `json:"userId"                yaml:"userId"`
	Text        string      `json:"text"                  yaml:"text"`
	Type        CommentType `json:"type"                  yaml:"type"`
	IssueStatus IssueStatus `json:"issueStatus,omitempty" yaml:"issueStatus,omitempty"`
	LanguageID  string      `json:"languageId,omitempty"  yaml:"languageId,omitempty"`
	CreatedAt   *Timestamp  `json:"createdAt"             yaml:"createdAt"`
}

// StringCommentCreateRequest adds a comment or issue to a string.
type StringCommentCreateRequest struct {
	StringID   int64       `json:"stringId"`
	Text       string      `json:"text"`
	Type       CommentType `json:"type,omitempty"`
	LanguageID string      `json:"targetLanguageId,omitempty"`
}

// StringCommentsClient manages string comments and issues.
type StringCommentsClient interface {
	List(ctx context.Context, projectID int64, opts *ListOptions) (*ListResponse[StringComment], error)
	Get(ctx context.Context, projectID, commentID int64) (*StringComment, error)
	Add(ctx context.Context, projectID int64, request *StringCommentCreateRequest) (*StringComment, error)
	Edit(ctx context.Context, projectID, commentID int64, ops []PatchOperation) (*StringComment, error)
	Delete(ctx context.Context, projectID, commentID int64) error
}

// Label tags strings for selective export and filtering.
type Label struct {
	ID    int64  `json:"id"    yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// LabelCreateRequest creates a label.
type LabelCreateRequest struct {
	Title string `json:"title"`
}

// LabelsClient manages labels and their string assignments.
type LabelsClient interface {
	List(ctx context.Context, projectID int64, opts *ListOptions) (*ListResponse[Label], error)
	Get(ctx context.Context, projectID, labelID int64) (*Label, error)
	Add(ctx context.Context, projectID int64, request *LabelCreateRequest) (*Label, error)
	Edit(ctx context.Context, projectID, labelID int64, ops []PatchOperation) (*Label, error)
	Delete(ctx context.Context, projectID, labelID int64) error

	AssignToStrings(ctx context.Context, projectID, labelID int64, stringIDs []int64) ([]SourceString, error)
	UnassignFromStrings(ctx context.Context, projectID, labelID int64, stringIDs []int64) ([]SourceString, error)
}

// ScreenshotSize is the pixel size of a screenshot.
type ScreenshotSize struct {
	Width  int `json:"width"  yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Screenshot gives translators visual context for strings.
type Screenshot struct {
	ID        int64          `json:"id"        yaml:"id"`
	UserID    int64          `json:"userId"    yaml:"userId"`
	URL       string         `json:"url"       yaml:"url"`
	Name      string         `json:"name"      yaml:"name"`
	Size      ScreenshotSize `json:"size"      yaml:"size"`
	TagsCount int            `json:"tagsCount" yaml:"tagsCount"`
	CreatedAt *Timestamp     `json:"createdAt" yaml:"createdAt"`
	UpdatedAt *Timestamp     `json:"updatedAt" yaml:"updatedAt"`
}

// ScreenshotCreateRequest registers an uploaded image as a screenshot.
type ScreenshotCreateRequest struct {
	StorageID int64  `json:"storageId"`
	Name      string `json:"name"`
}

// ScreenshotsClient manages screenshots.
type ScreenshotsClient interface {
	List(ctx context.Context, projectID int64, opts *ListOptions) (*ListResponse[Screenshot], error)
	Get(ctx context.Context, projectID, screenshotID int64) (*Screenshot, error)
	Add(ctx context.Context, projectID int64, request *ScreenshotCreateRequest) (*Screenshot, error)
	Edit(ctx context.Context, projectID, screenshotID int64, ops []PatchOperation) (*Screenshot, error)
	Delete(ctx context.Context, projectID, screenshotID int64) error
}

// TaskType is an integer-backed enumeration of task kinds.
type TaskType int

const (
	TaskTypeTranslate TaskType = 0
	TaskTypeProofread TaskType = 1
)

// TaskStatus tracks a task through its workflow.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "inProgress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusClosed     TaskStatus = "closed"
)

// Task assigns translation or proofreading work.
type Task struct {
	ID             int64      `json:"id"                       yaml:"id"`
	ProjectID      int64      `json:"projectId"                yaml:"projectId"`
	CreatorID      int64      `json:"creatorId"                yaml:"creatorId"`
	Type           TaskType   `json:"type"                     yaml:"type"`
	Status         TaskStatus `json:"status"                   yaml:"status"`
	Title          string     `json:"title"                    yaml:"title"`
	LanguageID     string     `json:"languageId"               yaml:"languageId"`
	FileIDs        []int64    `json:"fileIds,omitempty"        yaml:"fileIds,omitempty"`
	WorkflowStepID int64      `json:"workflowStepId,omitempty" yaml:"workflowStepId,omitempty"`
	WordsCount     int        `json:"wordsCount"               yaml:"wordsCount"`
	Deadline       *Timestamp `json:"deadline,omitempty"       yaml:"deadline,omitempty"`
	CreatedAt      *Timestamp `json:"createdAt"                yaml:"createdAt"`
}

// TaskCreateRequest creates a task. WorkflowStepID is honored only by
// enterprise deployments; the public variant rejects it client-side.
type TaskCreateRequest struct {
	Title          string     `json:"title"`
	Type           TaskType   `json:"type"`
	LanguageID     string     `json:"languageId"`
	FileIDs        []int64    `json:"fileIds,omitempty"`
	WorkflowStepID int64      `json:"workflowStepId,omitempty"`
	AssigneeIDs    []int64    `json:"assigneeIds,omitempty"`
	Deadline       *Timestamp `json:"deadline,omitempty"`
}

// TasksClient manages tasks. Public and enterprise deployments use different
// concrete implementations behind this interface.
type TasksClient interface {
	List(ctx context.Context, projectID int64, opts *ListOptions) (*ListResponse[Task], error)
	Get(ctx context.Context, projectID, taskID int64) (*Task, error)
	Add(ctx context.Context, projectID int64, request *TaskCreateRequest) (*Task, error)
	Edit(ctx context.Context, projectID, taskID int64, ops []PatchOperation) (*Task, error)
	Delete(ctx context.Context, projectID, taskID int64) error
}

// UserRole enumerates project member roles.
type UserRole string

const (
	UserRoleManager     UserRole = "manager"
	UserRoleDeveloper   UserRole = "developer"
	UserRoleTranslator  UserRole = "translator"
	UserRoleProofreader UserRole = "proofreader"
	UserRoleMember      UserRole = "member"
)

// User represents a platform account.
type User struct {
	ID        int64      `json:"id"                 yaml:"id"`
	Username  string     `json:"username"           yaml:"username"`
	Email     string     `json:"email,omitempty"    yaml:"email,omitempty"`
	FullName  string     `json:"fullName,omitempty" yaml:"fullName,omitempty"`
	AvatarURL string     `json:"avatarUrl,omitempty" yaml:"avatarUrl,omitempty"`
	Status    string     `json:"status,omitempty"   yaml:"status,omitempty"`
	CreatedAt *Timestamp `json:"createdAt"          yaml:"createdAt"`
}

// ProjectMember is a user's membership in one project.
type ProjectMember struct {
	ID       int64      `json:"id"                 yaml:"id"`
	Username string     `json:"username"           yaml:"username"`
	FullName string     `json:"fullName,omitempty" yaml:"fullName,omitempty"`
	Role     UserRole   `json:"role"               yaml:"role"`
	JoinedAt *Timestamp `json:"joinedAt"           yaml:"joinedAt"`
}

// UserInviteRequest invites a user to an enterprise organization.
type UserInviteRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
}

// UsersClient manages users. Project-member operations exist on both
// deployments; organization-level operations exist only on enterprise and
// fail with PermissionDenied, without network I/O, on the public variant.
type UsersClient interface {
	GetAuthenticated(ctx context.Context) (*User, error)
	ListProjectMembers(ctx context.Context, projectID int64, opts *ListOptions) (*ListResponse[ProjectMember], error)
	GetProjectMember(ctx context.Context, projectID, memberID int64) (*ProjectMember, error)

	// Organization-level operations (enterprise only).
	List(ctx context.Context, opts *ListOptions) (*ListResponse[User], error)
	Get(ctx context.Context, userID int64) (*User, error)
	Invite(ctx context.Context, request *UserInviteRequest) (*User, error)
	Edit(ctx context.Context, userID int64, ops []PatchOperation) (*User, error)
	Delete(ctx context.Context, userID int64) error
}

// Storage is a raw uploaded file awaiting attachment to a resource.
type Storage struct {
	ID       int64  `json:"id"       yaml:"id"`
	FileName string `json:"fileName" yaml:"fileName"`
}

// StoragesClient manages raw uploads. Add streams the content in a single
// request; chunked transfer is a transport concern above this SDK.
type StoragesClient interface {
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Storage], error)
	Get(ctx context.Context, storageID int64) (*Storage, error)
	Add(ctx context.Context, fileName string, content io.Reader) (*Storage, error)
	Delete(ctx context.Context, storageID int64) error
}

// BundleFormat enumerates bundle export formats.
type BundleFormat string

const (
	BundleFormatAndroid BundleFormat = "android"
	BundleFormatStrings BundleFormat = "macosx"
	BundleFormatXLIFF   BundleFormat = "xliff"
	BundleFormatJSON    BundleFormat = "json"
)

// Bundle selects and packages project content for export.
type Bundle struct {
	ID             int64        `json:"id"                       yaml:"id"`
	Name           string       `json:"name"                     yaml:"name"`
	Format         BundleFormat `json:"format"                   yaml:"format"`
	SourcePatterns []string     `json:"sourcePatterns"           yaml:"sourcePatterns"`
	IgnorePatterns []string     `json:"ignorePatterns,omitempty" yaml:"ignorePatterns,omitempty"`
	ExportPattern  string       `json:"exportPattern"            yaml:"exportPattern"`
	LabelIDs       []int64      `json:"labelIds,omitempty"       yaml:"labelIds,omitempty"`
	CreatedAt      *Timestamp   `json:"createdAt"                yaml:"createdAt"`
	UpdatedAt      *Timestamp   `json:"updatedAt"                yaml:"updatedAt"`
}

// BundleCreateRequest creates a bundle.
type BundleCreateRequest struct {
	Name           string       `json:"name"`
	Format         BundleFormat `json:"format"`
	SourcePatterns []string     `json:"sourcePatterns"`
	IgnorePatterns []string     `json:"ignorePatterns,omitempty"`
	ExportPattern  string       `json:"exportPattern"`
	LabelIDs       []int64      `json:"labelIds,omitempty"`
}

// BundlesClient manages bundles and their exports.
type BundlesClient interface {
	List(ctx context.Context, projectID int64, opts *ListOptions) (*ListResponse[Bundle], error)
	Get(ctx context.Context, projectID, bundleID int64) (*Bundle, error)
	Add(ctx context.Context, projectID int64, request *BundleCreateRequest) (*Bundle, error)
	Edit(ctx context.Context, projectID, bundleID int64, ops []PatchOperation) (*Bundle, error)
	Delete(ctx context.Context, projectID, bundleID int64) error

	Export(ctx context.Context, projectID, bundleID int64) (*Operation, error)
	ExportStatus(ctx context.Context, projectID, bundleID int64, exportID string) (*Operation, error)
	DownloadExport(ctx context.Context, projectID, bundleID int64, exportID string) (*DownloadLink, error)
}

// Distribution serves built translations to applications over a CDN.
type Distribution struct {
	Hash      string     `json:"hash"      yaml:"hash"`
	Name      string     `json:"name"      yaml:"name"`
	FileIDs   []int64    `json:"fileIds"   yaml:"fileIds"`
	CreatedAt *Timestamp `json:"createdAt" yaml:"createdAt"`
	UpdatedAt *Timestamp `json:"updatedAt" yaml:"updatedAt"`
}

// DistributionCreateRequest creates a distribution.
type DistributionCreateRequest struct {
	Name    string  `json:"name"`
	FileIDs []int64 `json:"fileIds,omitempty"`
}

// DistributionRelease is the state of a distribution release roll-out.
type DistributionRelease struct {
	Status            string     `json:"status"                      yaml:"status"`
	Progress          int        `json:"progress"                    yaml:"progress"`
	CurrentLanguageID string     `json:"currentLanguageId,omitempty" yaml:"currentLanguageId,omitempty"`
	CurrentFileID     int64      `json:"currentFileId,omitempty"     yaml:"currentFileId,omitempty"`
	Date              *Timestamp `json:"date,omitempty"              yaml:"date,omitempty"`
}

// DistributionsClient manages distributions.
type DistributionsClient interface {
	List(ctx context.Context, projectID int64, opts *ListOptions) (*ListResponse[Distribution], error)
	Get(ctx context.Context, projectID int64, hash string) (*Distribution, error)
	Add(ctx context.Context, projectID int64, request *DistributionCreateRequest) (*Distribution, error)
	Edit(ctx context.Context, projectID int64, hash string, ops []PatchOperation) (*Distribution, error)
	Delete(ctx context.Context, projectID int64, hash string) error

	Release(ctx context.Context, projectID int64, hash string) (*DistributionRelease, error)
	GetRelease(ctx context.Context, projectID int64, hash string) (*DistributionRelease, error)
}

// PartOfSpeech classifies glossary terms.
type PartOfSpeech string

const (
	PartOfSpeechNoun      PartOfSpeech = "noun"
	PartOfSpeechVerb      PartOfSpeech = "verb"
	PartOfSpeechAdjective PartOfSpeech = "adjective"
	PartOfSpeechAdverb    PartOfSpeech = "adverb"
)

// Glossary is a project- or organization-level terminology collection.
type Glossary struct {
	ID         int64      `json:"id"         yaml:"id"`
	Name       string     `json:"name"       yaml:"name"`
	LanguageID string     `json:"languageId" yaml:"languageId"`
	TermsCount int        `json:"termsCount" yaml:"termsCount"`
	CreatedAt  *Timestamp `json:"createdAt"  yaml:"createdAt"`
}

// GlossaryCreateRequest creates a glossary.
type GlossaryCreateRequest struct {
	Name       string `json:"name"`
	LanguageID string `json:"languageId"`
}

// Term is one glossary entry.
type Term struct {
	ID           int64        `json:"id"                     yaml:"id"`
	GlossaryID   int64        `json:"glossaryId"             yaml:"glossaryId"`
	UserID       int64        `json:"userId"                 yaml:"userId"`
	LanguageID   string       `json:"languageId"             yaml:"languageId"`
	Text         string       `json:"text"                   yaml:"text"`
	Description  string       `json:"description,omitempty"  yaml:"description,omitempty"`
	PartOfSpeech PartOfSpeech `json:"partOfSpeech,omitempty" yaml:"partOfSpeech,omitempty"`
	CreatedAt    *Timestamp   `json:"createdAt"              yaml:"createdAt"`
	UpdatedAt    *Timestamp   `json:"updatedAt"              yaml:"updatedAt"`
}

// TermCreateRequest adds a term to a glossary.
type TermCreateRequest struct {
	LanguageID   string       `json:"languageId"`
	Text         string       `json:"text"`
	Description  string       `json:"description,omitempty"`
	PartOfSpeech PartOfSpeech `json:"partOfSpeech,omitempty"`
}

// GlossaryExportFormat enumerates glossary export formats.
type GlossaryExportFormat string

const (
	GlossaryExportTBX GlossaryExportFormat = "tbx"
	GlossaryExportCSV GlossaryExportFormat = "csv"
)

// GlossariesClient manages glossaries and their terms.
type GlossariesClient interface {
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Glossary], error)
	Get(ctx context.Context, glossaryID int64) (*Glossary, error)
	Add(ctx context.Context, request *GlossaryCreateRequest) (*Glossary, error)
	Edit(ctx context.Context, glossaryID int64, ops []PatchOperation) (*Glossary, error)
	Delete(ctx context.Context, glossaryID int64) error

	ListTerms(ctx context.Context, glossaryID int64, opts *ListOptions) (*ListResponse[Term], error)
	AddTerm(ctx context.Context, glossaryID int64, request *TermCreateRequest) (*Term, error)
	DeleteTerm(ctx context.Context, glossaryID, termID int64) error

	Export(ctx context.Context, glossaryID int64, format GlossaryExportFormat) (*Operation, error)
	ExportStatus(ctx context.Context, glossaryID int64, exportID string) (*Operation, error)
	DownloadExport(ctx context.Context, glossaryID int64, exportID string) (*DownloadLink, error)
	Import(ctx context.Context, glossaryID, storageID int64) (*Operation, error)
}

// TMExportFormat enumerates translation memory export formats.
type TMExportFormat string

const (
	TMExportTMX  TMExportFormat = "tmx"
	TMExportCSV  TMExportFormat = "csv"
	TMExportXLSX TMExportFormat = "xlsx"
)

// TranslationMemory is a reusable store of past translations.
type TranslationMemory struct {
	ID            int64      `json:"id"            yaml:"id"`
	Name          string     `json:"name"          yaml:"name"`
	LanguageID    string     `json:"languageId"    yaml:"languageId"`
	SegmentsCount int        `json:"segmentsCount" yaml:"segmentsCount"`
	CreatedAt     *Timestamp `json:"createdAt"     yaml:"createdAt"`
}

// TranslationMemoryCreateRequest creates a translation memory.
type TranslationMemoryCreateRequest struct {
	Name       string `json:"name"`
	LanguageID string `json:"languageId"`
}

// TranslationMemoriesClient manages translation memories.
type TranslationMemoriesClient interface {
	List(ctx context.Context, opts *ListOptions) (*ListResponse[TranslationMemory], error)
	Get(ctx context.Context, tmID int64) (*TranslationMemory, error)
	Add(ctx context.Context, request *TranslationMemoryCreateRequest) (*TranslationMemory, error)
	Edit(ctx context.Context, tmID int64, ops []PatchOperation) (*TranslationMemory, error)
	Delete(ctx context.Context, tmID int64) error

	Export(ctx context.Context, tmID int64, format TMExportFormat) (*Operation, error)
	ExportStatus(ctx context.Context, tmID int64, exportID string) (*Operation, error)
	DownloadExport(ctx context.Context, tmID int64, exportID string) (*DownloadLink, error)
	Import(ctx context.Context, tmID, storageID int64) (*Operation, error)
}

// WebhookEvent enumerates the events a webhook can subscribe to.
type WebhookEvent string

const (
	WebhookEventFileAdded          WebhookEvent = "file.added"
	WebhookEventFileUpdated        WebhookEvent = "file.updated"
	WebhookEventStringAdded        WebhookEvent = "string.added"
	WebhookEventTranslationUpdated WebhookEvent = "translation.updated"
	WebhookEventSuggestionApproved WebhookEvent = "suggestion.approved"
)

// WebhookRequestType is the HTTP verb used for deliveries.
type WebhookRequestType string

const (
	WebhookRequestGET  WebhookRequestType = "GET"
	WebhookRequestPOST WebhookRequestType = "POST"
)

// Webhook delivers project events to an external URL.
type Webhook struct {
	ID          int64              `json:"id"                yaml:"id"`
	ProjectID   int64              `json:"projectId"         yaml:"projectId"`
	Name        string             `json:"name"              yaml:"name"`
	URL         string             `json:"url"               yaml:"url"`
	Events      []WebhookEvent     `json:"events"            yaml:"events"`
	RequestType WebhookRequestType `json:"requestType"       yaml:"requestType"`
	Payload     map[string]any     `json:"payload,omitempty" yaml:"payload,omitempty"`
	IsActive    bool               `json:"isActive"          yaml:"isActive"`
	CreatedAt   *Timestamp         `json:"createdAt"         yaml:"createdAt"`
}

// WebhookCreateRequest creates a webhook.
type WebhookCreateRequest struct {
	Name        string             `json:"name"`
	URL         string             `json:"url"`
	Events      []WebhookEvent     `json:"events"`
	RequestType WebhookRequestType `json:"requestType"`
	Payload     map[string]any     `json:"payload,omitempty"`
	IsActive    bool               `json:"isActive,omitempty"`
}

// WebhooksClient manages webhooks.
type WebhooksClient interface {
	List(ctx context.Context, projectID int64, opts *ListOptions) (*ListResponse[Webhook], error)
	Get(ctx context.Context, projectID, webhookID int64) (*Webhook, error)
	Add(ctx context.Context, projectID int64, request *WebhookCreateRequest) (*Webhook, error)
	Edit(ctx context.Context, projectID, webhookID int64, ops []PatchOperation) (*Webhook, error)
	Delete(ctx context.Context, projectID, webhookID int64) error
}

// ReportName enumerates the report templates.
type ReportName string

const (
	ReportCostsEstimation  ReportName = "costs-estimation"
	ReportTranslationCosts ReportName = "translation-costs"
	ReportTopMembers       ReportName = "top-members"
)

// ReportGenerateRequest starts report generation. Schema is report-specific
// and passed through opaquely.
type ReportGenerateRequest struct {
	Name   ReportName     `json:"name"`
	Schema map[string]any `json:"schema,omitempty"`
}

// ReportsClient generates and downloads reports. Project-level reports exist
// on both deployments; organization-level reports exist only on enterprise
// and fail with PermissionDenied, without network I/O, on the public variant.
type ReportsClient interface {
	Generate(ctx context.Context, projectID int64, request *ReportGenerateRequest) (*Operation, error)
	Status(ctx context.Context, projectID int64, reportID string) (*Operation, error)
	Download(ctx context.Context, projectID int64, reportID string) (*DownloadLink, error)

	// Organization-level reports (enterprise only).
	GenerateOrganizationReport(ctx context.Context, request *ReportGenerateRequest) (*Operation, error)
	OrganizationReportStatus(ctx context.Context, reportID string) (*Operation, error)
	DownloadOrganizationReport(ctx context.Context, reportID string) (*DownloadLink, error)
}

// Group nests projects in an enterprise organization.
type Group struct {
	ID            int64      `json:"id"                 yaml:"id"`
	Name          string     `json:"name"               yaml:"name"`
	Description   string     `json:"description,omitempty" yaml:"description,omitempty"`
	ParentID      int64      `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	ProjectsCount int        `json:"projectsCount"      yaml:"projectsCount"`
	CreatedAt     *Timestamp `json:"createdAt"          yaml:"createdAt"`
}

// GroupCreateRequest creates a group.
type GroupCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    int64  `json:"parentId,omitempty"`
}

// GroupsClient manages enterprise project groups.
type GroupsClient interface {
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Group], error)
	Get(ctx context.Context, groupID int64) (*Group, error)
	Add(ctx context.Context, request *GroupCreateRequest) (*Group, error)
	Edit(ctx context.Context, groupID int64, ops []PatchOperation) (*Group, error)
	Delete(ctx context.Context, groupID int64) error
}

// Team is a named set of users in an enterprise organization.
type Team struct {
	ID           int64      `json:"id"           yaml:"id"`
	Name         string     `json:"name"         yaml:"name"`
	TotalMembers int        `json:"totalMembers" yaml:"totalMembers"`
	CreatedAt    *Timestamp `json:"createdAt"    yaml:"createdAt"`
}

// TeamCreateRequest creates a team.
type TeamCreateRequest struct {
	Name string `json:"name"`
}

// TeamsClient manages enterprise teams.
type TeamsClient interface {
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Team], error)
	Get(ctx context.Context, teamID int64) (*Team, error)
	Add(ctx context.Context, request *TeamCreateRequest) (*Team, error)
	Edit(ctx context.Context, teamID int64, ops []PatchOperation) (*Team, error)
	Delete(ctx context.Context, teamID int64) error

	AddMember(ctx context.Context, teamID, userID int64) error
	RemoveMember(ctx context.Context, teamID, userID int64) error
}

// BillingPlan is the subscription plan of a public-deployment account.
type BillingPlan struct {
	Name         string     `json:"name"         yaml:"name"`
	PlanID       string     `json:"planId"       yaml:"planId"`
	WordsLimit   int        `json:"wordsLimit"   yaml:"wordsLimit"`
	AutoRenew    bool       `json:"autoRenew"    yaml:"autoRenew"`
	PeriodEndsAt *Timestamp `json:"periodEndsAt" yaml:"periodEndsAt"`
}

// BillingUsage is the current consumption against the plan.
type BillingUsage struct {
	WordsUsed     int `json:"wordsUsed"     yaml:"wordsUsed"`
	ProjectsCount int `json:"projectsCount" yaml:"projectsCount"`
	MembersCount  int `json:"membersCount"  yaml:"membersCount"`
}

// BillingClient reads subscription state. It exists only on the public
// multi-tenant deployment.
type BillingClient interface {
	GetPlan(ctx context.Context) (*BillingPlan, error)
	GetUsage(ctx context.Context) (*BillingUsage, error)
}

// MTEngine is a configured machine-translation engine.
type MTEngine struct {
	ID                   int64    `json:"id"                             yaml:"id"`
	GroupID              int64    `json:"groupId,omitempty"              yaml:"groupId,omitempty"`
	Name                 string   `json:"name"                           yaml:"name"`
	Type                 string   `json:"type"                           yaml:"type"`
	SupportedLanguageIDs []string `json:"supportedLanguageIds,omitempty" yaml:"supportedLanguageIds,omitempty"`
	ProjectIDs           []int64  `json:"projectIds,omitempty"           yaml:"projectIds,omitempty"`
	IsEnabled            bool     `json:"isEnabled"                      yaml:"isEnabled"`
}

// MachineTranslationsClient lists the MT engines available to the account.
// Engine configuration itself is managed in the platform UI.
type MachineTranslationsClient interface {
	List(ctx context.Context, opts *ListOptions) (*ListResponse[MTEngine], error)
	Get(ctx context.Context, mtID int64) (*MTEngine, error)
}
