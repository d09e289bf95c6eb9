package taxonomy

import "strings"

// IntentCategory is the closed set of intents the assistant understands.
// Classifiers must always resolve to a member of this set.
type IntentCategory string

const (
	CategoryGeneralAdvice   IntentCategory = "GENERAL_ADVICE"
	CategoryProviderSummary IntentCategory = "PROVIDER_SUMMARY"
	CategoryFindProviders   IntentCategory = "FIND_PROVIDERS"
	CategoryFindJobs        IntentCategory = "FIND_JOBS"
	CategoryHowTo           IntentCategory = "HOW_TO"
	CategoryPriceEstimate   IntentCategory = "PRICE_ESTIMATE"
	CategoryOutOfScope      IntentCategory = "OUT_OF_SCOPE"
)

// AllCategories returns every intent category in a stable order.
func AllCategories() []IntentCategory {
	return []IntentCategory{
		CategoryGeneralAdvice,
		CategoryProviderSummary,
		CategoryFindProviders,
		CategoryFindJobs,
		CategoryHowTo,
		CategoryPriceEstimate,
		CategoryOutOfScope,
	}
}

// ParseCategory resolves a raw model reply to a category token.
// The reply is trimmed and compared case-insensitively; anything outside
// the closed set resolves to (CategoryOutOfScope, false).
func ParseCategory(raw string) (IntentCategory, bool) {
	token := strings.ToUpper(strings.TrimSpace(raw))
	for _, c := range AllCategories() {
		if token == string(c) {
			return c, true
		}
	}
	return CategoryOutOfScope, false
}
