package campus

import (
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		entity     string
		payload    any
		wantFields []string
	}{
		{
			name:       "EmptyTeacher",
			entity:     "teacher",
			payload:    NewTeacher{},
			wantFields: []string{"name (required)", "email (required)", "department (required)"},
		},
		{
			name:       "BuildingWithoutLongitude",
			entity:     "campus building",
			payload:    NewCampusBuilding{Name: ptr("n"), Description: ptr("d"), Latitude: ptr("35.3"), BuildingType: ptr("b")},
			wantFields: []string{"longitude (required)"},
		},
		{
			name:    "BuildingWithEmptyText",
			entity:  "campus building",
			payload: NewCampusBuilding{Name: ptr(""), Description: ptr(""), Latitude: ptr(""), Longitude: ptr(""), BuildingType: ptr("")},
		},
		{
			name:       "EmptyNewsItem",
			entity:     "news item",
			payload:    NewNewsItem{},
			wantFields: []string{"title (required)", "excerpt (required)", "content (required)", "category (required)", "publishedAt (required)"},
		},
		{
			name:       "TeacherWithEmptyName",
			entity:     "teacher",
			payload:    NewTeacher{Name: "", Email: "e", Department: "d"},
			wantFields: []string{"name (required)"},
		},
		{
			name:    "QuickLinkWithEmptyDescription",
			entity:  "quick link",
			payload: NewQuickLink{Title: ptr("t"), Description: ptr(""), URL: ptr("u"), Icon: ptr(IconMail), Color: ptr("c")},
		},
		{
			name:       "UnknownLanguage",
			entity:     "settings",
			payload:    SettingsPatch{Language: ptr("fr")},
			wantFields: []string{"language (oneof)"},
		},
		{
			name:    "EmptyPatch",
			entity:  "settings",
			payload: SettingsPatch{},
		},
		{
			name:    "EnglishLanguage",
			entity:  "settings",
			payload: SettingsPatch{Language: ptr(LanguageEnglish)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.entity, tt.payload)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.entity, ve.Entity)
			assert.Equal(t, tt.wantFields, ve.Fields)

			var fieldErrs validator.ValidationErrors
			assert.ErrorAs(t, err, &fieldErrs)
		})
	}
}

func TestValidationError(t *testing.T) {
	err := Validate("quick link", NewQuickLink{Title: ptr("t"), Description: ptr("d"), Icon: ptr(IconBookOpen), Color: ptr("c")})
	assert.EqualError(t, err, "invalid quick link: url (required)")

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsValidation(ErrStorage))
}
