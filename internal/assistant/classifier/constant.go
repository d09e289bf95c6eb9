package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.assistant.classifier.Classify"
)

// Classification prompt. The reply must be exactly one category token.
const (
	PromptClassify = `You are the intent classifier of a household-services marketplace assistant.

Categories:
- GENERAL_ADVICE: general household questions and advice
- PROVIDER_SUMMARY: information about a specific named service provider
- FIND_PROVIDERS: the user wants to hire a service provider
- FIND_JOBS: the user wants job postings to work on
- HOW_TO: step-by-step instructions for a household task
- PRICE_ESTIMATE: how much a service or repair should cost
- OUT_OF_SCOPE: anything unrelated to household services

The user's role is %s. A SEEKER asking for jobs must still be classified FIND_JOBS, and a PROVIDER asking for other providers must still be classified FIND_PROVIDERS; the policy layer handles the refusal.

Message: "%s"

Answer with exactly one category token and nothing else.`
)

// ClassifyTemperature keeps the token reply deterministic.
const ClassifyTemperature = 0.1
