package application

// Field names used as keys of validation results.
const (
	FieldName       = "name"
	FieldBio        = "bio"
	FieldCategories = "categories"
	FieldLanguages  = "languages"
	FieldFeeRange   = "feeRange"
	FieldLocation   = "location"
)

var FeeRanges = []string{
	"₹50,000-1,00,000",
	"₹1,00,000-2,50,000",
	"₹2,50,000-5,00,000",
	"₹5,00,000-10,00,000",
	"₹10,00,000+",
}

var Categories = []string{"singers", "dancers", "speakers", "djs"}

var Languages = []string{
	"Hindi",
	"English",
	"Tamil",
	"Telugu",
	"Bengali",
	"Marathi",
	"Gujarati",
	"Punjabi",
	"Malayalam",
	"Kannada",
}

func IsKnownFeeRange(value string) bool {
	for _, tier := range FeeRanges {
		if tier == value {
			return true
		}
	}
	return false
}

// Options is what the onboarding form offers for its multi-select and select inputs.
type Options struct {
	Categories []string `json:"categories"`
	Languages  []string `json:"languages"`
	FeeRanges  []string `json:"feeRanges"`
}

func DefaultOptions() Options {
	return Options{
		Categories: append([]string(nil), Categories...),
		Languages:  append([]string(nil), Languages...),
		FeeRanges:  append([]string(nil), FeeRanges...),
	}
}
