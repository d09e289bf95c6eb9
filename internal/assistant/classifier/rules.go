package classifier

import (
	"strings"

	"marketplace-assistant/internal/model"
	"marketplace-assistant/internal/taxonomy"
)

// summaryPhrases resolve to PROVIDER_SUMMARY regardless of role.
var summaryPhrases = []string{
	"tell me about",
	"info about",
	"about",
	"describe",
	"who is",
}

// jobPhrases signal the caller wants job postings.
var jobPhrases = []string{
	"find me job",
	"find job",
	"find work",
	"need work",
	"need a job",
	"need job",
	"looking for work",
	"looking for job",
	"work near me",
	"job near me",
	"any job",
	"jobs available",
}

// workerPhrases signal the caller wants service providers.
var workerPhrases = []string{
	"find me worker",
	"find worker",
	"find a worker",
	"need worker",
	"need a worker",
	"looking for worker",
	"worker near me",
	"provider near me",
	"find provider",
}

// seekVerbs combined with a service keyword also count as provider-seeking,
// e.g. "I need a plumber", "looking for an electrician".
var seekVerbs = []string{"need", "want", "find", "looking for", "searching for"}

// matchRules is the deterministic fast path. Order is significant:
// provider-summary phrasings win over everything, then role-conditioned
// redirections (so the access policy can refuse with the right message),
// then role-appropriate shortcuts. Returns ok=false when inconclusive —
// never OUT_OF_SCOPE.
func matchRules(utterance string, role model.Role) (taxonomy.IntentCategory, bool) {
	lower := strings.ToLower(utterance)

	for _, p := range summaryPhrases {
		if strings.Contains(lower, p) {
			return taxonomy.CategoryProviderSummary, true
		}
	}

	// Worker phrases are tested before job phrases: "find work", "need
	// work" and "looking for work" are substrings of their worker
	// counterparts and would shadow them otherwise.
	workerSeeking := containsAny(lower, workerPhrases)
	jobSeeking := !workerSeeking && containsAny(lower, jobPhrases)
	if !workerSeeking && !jobSeeking {
		if _, ok := taxonomy.MatchService(lower); ok {
			workerSeeking = containsAny(lower, seekVerbs)
		}
	}

	switch role {
	case model.RoleSeeker:
		if jobSeeking {
			// Redirection: classified FIND_JOBS so the policy layer can
			// refuse and steer the seeker back to FIND_PROVIDERS.
			return taxonomy.CategoryFindJobs, true
		}
		if workerSeeking {
			return taxonomy.CategoryFindProviders, true
		}
	case model.RoleProvider:
		if workerSeeking {
			// Redirection: symmetric refusal path for providers.
			return taxonomy.CategoryFindProviders, true
		}
		if jobSeeking {
			return taxonomy.CategoryFindJobs, true
		}
	}

	return "", false
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
