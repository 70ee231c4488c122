package app

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"artistly/internal/domain/application"
)

const (
	minNameLength = 2
	minBioLength  = 50
)

// Validate checks every field of the application and keeps the first violation
// per field. The profile image is optional and never checked.
func Validate(f application.Fields) application.ValidationResult {
	fields := map[string]string{}
	if msg := checkText(f.Name, minNameLength, "Name is required", "Name must be at least 2 characters"); msg != "" {
		fields[application.FieldName] = msg
	}
	if msg := checkText(f.Bio, minBioLength, "Bio is required", "Bio must be at least 50 characters"); msg != "" {
		fields[application.FieldBio] = msg
	}
	if countSelected(f.Categories) == 0 {
		fields[application.FieldCategories] = "Please select at least one category"
	}
	if countSelected(f.Languages) == 0 {
		fields[application.FieldLanguages] = "Please select at least one language"
	}
	if !application.IsKnownFeeRange(strings.TrimSpace(f.FeeRange)) {
		fields[application.FieldFeeRange] = "Fee range is required"
	}
	if strings.TrimSpace(f.Location) == "" {
		fields[application.FieldLocation] = "Location is required"
	}
	if len(fields) == 0 {
		return application.ValidationResult{}
	}
	return application.ValidationResult{Fields: fields}
}

func checkText(value string, min int, requiredMsg, shortMsg string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return requiredMsg
	}
	if characterCount(value) < min {
		return shortMsg
	}
	return ""
}

// characterCount counts user-perceived characters of NFC text, so "é" typed as
// e + combining accent counts once.
func characterCount(value string) int {
	return utf8.RuneCountInString(norm.NFC.String(value))
}

func countSelected(values []string) int {
	count := 0
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			count++
		}
	}
	return count
}
