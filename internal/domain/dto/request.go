package dto

import "strconv"

// ValidationError represents a field validation error with optional
// machine-readable detail per field.
type ValidationError struct {
	Field   string
	Message string
	Details map[string]string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewTranslation is one per-language value supplied when creating a key.
type NewTranslation struct {
	LanguageISO string `json:"language_iso" binding:"required" example:"fr"`
	Translation string `json:"translation" example:"Acheter"`
} // @name NewTranslation

// NewKey describes one translation key to create upstream.
type NewKey struct {
	KeyName      string           `json:"key_name" binding:"required" example:"cta.buy"`
	Description  string           `json:"description,omitempty"`
	Platforms    []string         `json:"platforms,omitempty" example:"web"`
	Tags         []string         `json:"tags,omitempty"`
	Translations []NewTranslation `json:"translations,omitempty"`
} // @name NewKey

// CreateKeysRequest is the JSON body for the key creation endpoint.
// @Description Request to create translation keys in the target project
type CreateKeysRequest struct {
	Keys []NewKey `json:"keys" binding:"required"`
} // @name CreateKeysRequest

// Validate performs custom validation on the request.
func (r *CreateKeysRequest) Validate() error {
	if len(r.Keys) == 0 {
		return &ValidationError{Field: "keys", Message: "at least one key is required"}
	}
	for i, k := range r.Keys {
		if k.KeyName == "" {
			return &ValidationError{
				Field:   "keys",
				Message: "key_name is required for every key",
				Details: map[string]string{"index": strconv.Itoa(i)},
			}
		}
	}
	return nil
}

// UpdateTranslationRequest is the JSON body for updating a single translation.
type UpdateTranslationRequest struct {
	Translation  string `json:"translation" binding:"required"`
	IsReviewed   *bool  `json:"is_reviewed,omitempty"`
	IsUnverified *bool  `json:"is_unverified,omitempty"`
} // @name UpdateTranslationRequest

// Validate performs custom validation on the request.
func (r *UpdateTranslationRequest) Validate() error {
	if r.Translation == "" {
		return &ValidationError{Field: "translation", Message: "must not be empty"}
	}
	return nil
}

// UploadFileRequest is the JSON body for the file upload endpoint.
//
// Data may arrive either as literal file content or already base64-encoded;
// the payload codec classifies it before transmission. Setting DataEncoded
// bypasses the classification entirely.
type UploadFileRequest struct {
	Data     string `json:"data" binding:"required"`
	Filename string `json:"filename" binding:"required" example:"site.json"`
	LangISO  string `json:"lang_iso" binding:"required" example:"fr"`
	// DataEncoded, when set, declares whether Data is already base64-encoded,
	// skipping the heuristic classification.
	DataEncoded         *bool `json:"data_encoded,omitempty"`
	ConvertPlaceholders *bool `json:"convert_placeholders,omitempty"`
	TagInsertedKeys     *bool `json:"tag_inserted_keys,omitempty"`
} // @name UploadFileRequest

// Validate performs custom validation on the request.
func (r *UploadFileRequest) Validate() error {
	switch {
	case r.Data == "":
		return &ValidationError{Field: "data", Message: "must not be empty"}
	case r.Filename == "":
		return &ValidationError{Field: "filename", Message: "must not be empty"}
	case r.LangISO == "":
		return &ValidationError{Field: "lang_iso", Message: "must not be empty"}
	}
	return nil
}

// DownloadFilesRequest is the JSON body for the file download endpoint.
type DownloadFilesRequest struct {
	Format            string   `json:"format" binding:"required" example:"json"`
	FilterLangs       []string `json:"filter_langs,omitempty"`
	OriginalFilenames *bool    `json:"original_filenames,omitempty"`
} // @name DownloadFilesRequest

// Validate performs custom validation on the request.
func (r *DownloadFilesRequest) Validate() error {
	if r.Format == "" {
		return &ValidationError{Field: "format", Message: "must not be empty"}
	}
	return nil
}

// TaskLanguage assigns users to one language of a task.
type TaskLanguage struct {
	LanguageISO string  `json:"language_iso" binding:"required" example:"de"`
	Users       []int64 `json:"users,omitempty"`
} // @name TaskLanguage

// CreateTaskRequest is the JSON body for the task creation endpoint.
type CreateTaskRequest struct {
	Title       string         `json:"title" binding:"required" example:"Review French copy"`
	Description string         `json:"description,omitempty"`
	TaskType    string         `json:"task_type,omitempty" example:"translation"`
	Keys        []int64        `json:"keys,omitempty"`
	Languages   []TaskLanguage `json:"languages" binding:"required"`
} // @name CreateTaskRequest

// Validate performs custom validation on the request.
func (r *CreateTaskRequest) Validate() error {
	if r.Title == "" {
		return &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if len(r.Languages) == 0 {
		return &ValidationError{Field: "languages", Message: "at least one language is required"}
	}
	return nil
}

// ContributorLanguage grants a contributor access to one language.
type ContributorLanguage struct {
	LangISO    string `json:"lang_iso" binding:"required" example:"fr"`
	IsWritable bool   `json:"is_writable,omitempty"`
} // @name ContributorLanguage

// NewContributor describes one contributor to add to the project.
type NewContributor struct {
	Email      string                `json:"email" binding:"required" example:"translator@example.com"`
	Fullname   string                `json:"fullname,omitempty"`
	IsAdmin    bool                  `json:"is_admin,omitempty"`
	IsReviewer bool                  `json:"is_reviewer,omitempty"`
	Languages  []ContributorLanguage `json:"languages,omitempty"`
} // @name NewContributor

// CreateContributorsRequest is the JSON body for the contributor creation endpoint.
type CreateContributorsRequest struct {
	Contributors []NewContributor `json:"contributors" binding:"required"`
} // @name CreateContributorsRequest

// Validate performs custom validation on the request.
func (r *CreateContributorsRequest) Validate() error {
	if len(r.Contributors) == 0 {
		return &ValidationError{Field: "contributors", Message: "at least one contributor is required"}
	}
	for i, c := range r.Contributors {
		if c.Email == "" {
			return &ValidationError{
				Field:   "contributors",
				Message: "email is required for every contributor",
				Details: map[string]string{"index": strconv.Itoa(i)},
			}
		}
	}
	return nil
}
