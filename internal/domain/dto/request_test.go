package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateKeysRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateKeysRequest
		wantErr string
	}{
		{
			name:    "empty keys rejected",
			request: CreateKeysRequest{},
			wantErr: "keys: at least one key is required",
		},
		{
			name: "missing key_name rejected",
			request: CreateKeysRequest{Keys: []NewKey{
				{KeyName: "cta.buy"},
				{KeyName: ""},
			}},
			wantErr: "keys: key_name is required for every key",
		},
		{
			name: "valid keys accepted",
			request: CreateKeysRequest{Keys: []NewKey{
				{KeyName: "cta.buy", Translations: []NewTranslation{{LanguageISO: "fr", Translation: "Acheter"}}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestCreateKeysRequest_ValidateReportsOffendingIndex(t *testing.T) {
	req := CreateKeysRequest{Keys: []NewKey{{KeyName: "ok"}, {KeyName: ""}}}

	err := req.Validate()
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "1", vErr.Details["index"])
}

func TestUpdateTranslationRequest_Validate(t *testing.T) {
	assert.Error(t, (&UpdateTranslationRequest{}).Validate())
	assert.NoError(t, (&UpdateTranslationRequest{Translation: "Kaufen"}).Validate())
}

func TestUploadFileRequest_Validate(t *testing.T) {
	valid := UploadFileRequest{Data: "{}", Filename: "site.json", LangISO: "fr"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*UploadFileRequest)
		field   string
	}{
		{"missing data", func(r *UploadFileRequest) { r.Data = "" }, "data"},
		{"missing filename", func(r *UploadFileRequest) { r.Filename = "" }, "filename"},
		{"missing lang_iso", func(r *UploadFileRequest) { r.LangISO = "" }, "lang_iso"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestDownloadFilesRequest_Validate(t *testing.T) {
	assert.Error(t, (&DownloadFilesRequest{}).Validate())
	assert.NoError(t, (&DownloadFilesRequest{Format: "json"}).Validate())
}

func TestCreateTaskRequest_Validate(t *testing.T) {
	assert.Error(t, (&CreateTaskRequest{Languages: []TaskLanguage{{LanguageISO: "de"}}}).Validate())
	assert.Error(t, (&CreateTaskRequest{Title: "Review"}).Validate())
	assert.NoError(t, (&CreateTaskRequest{
		Title:     "Review",
		Languages: []TaskLanguage{{LanguageISO: "de"}},
	}).Validate())
}

func TestCreateContributorsRequest_Validate(t *testing.T) {
	assert.Error(t, (&CreateContributorsRequest{}).Validate())
	assert.Error(t, (&CreateContributorsRequest{
		Contributors: []NewContributor{{Email: ""}},
	}).Validate())
	assert.NoError(t, (&CreateContributorsRequest{
		Contributors: []NewContributor{{Email: "translator@example.com"}},
	}).Validate())
}
