package usecase

// Log prefixes
const (
	LogPrefixAsk    = "internal.assistant.usecase.Ask"
	LogPrefixResume = "internal.assistant.usecase.Resume"
)

// Result limits
const (
	// TopResults caps provider and job listings.
	TopResults = 5

	// MaxCandidates caps a disambiguation candidate list.
	MaxCandidates = 5

	// MaxFollowUpAttempts caps invalid replies for one pending follow-up
	// before the dialogue is terminated with the restart answer.
	MaxFollowUpAttempts = 3
)

// Fixed refusal texts emitted by the access policy.
const (
	MsgSeekerJobsRefusal = "Job postings are for service providers looking for work. " +
		"As a seeker you can hire help instead — try asking me to find providers, " +
		"for example \"find me an electrician\"."

	MsgProviderDirectoryRefusal = "The provider directory is for seekers looking to hire. " +
		"As a provider you can look for work instead — try asking me to find jobs near you."
)

// Fixed answers for degraded and terminal paths.
const (
	MsgCompletionFallback = "Sorry, I'm having trouble answering right now. Please try again in a moment."

	MsgRestart = "Sorry, I lost track of that conversation. Please ask your question again from the start."

	MsgEmptyUtterance = "I didn't catch anything — please type your question."

	MsgLookupFailed = "I couldn't reach the marketplace records just now. Please try again shortly."

	MsgOutOfScope = "I can help you with household services: finding providers, finding jobs, " +
		"price estimates, how-to guidance and info about specific providers. " +
		"Could you rephrase your question in that direction?"
)

// Follow-up prompts.
const (
	MsgAskProviderName = "Which provider do you mean? Please reply with their name."

	MsgAskServiceCategory = "What kind of service do you need? For example: plumbing, electrical or cleaning."

	MsgAskLocation = "Which area should I look in? Please reply with your location."

	MsgChooseCandidateRetry = "That didn't match any of the options. Please reply with the number " +
		"of your choice, or part of a name, service or location from the list."
)

// Prose prompts sent to the completion service.
const (
	PromptAdvice = `You are a friendly assistant on a household-services marketplace. The user is a %s.
Answer the following question with short, practical advice. Stay within household services.

Question: "%s"`

	PromptHowTo = `You are a friendly assistant on a household-services marketplace. The user is a %s.
Give short numbered steps for the task below. If the task is risky (electrical, gas), say when to hire a professional instead.

Task: "%s"`

	PromptPriceEstimate = `You are a pricing assistant on a household-services marketplace in Bangladesh.
Estimate a fair price range in BDT for %s work, based on these recent job budgets: %s.
Reply in two short sentences. If the data is thin, say the range is indicative.

Request: "%s"`

	PromptProviderSummary = `You are an assistant on a household-services marketplace.
Write a short friendly paragraph introducing this provider to a potential customer. Facts only, no invention:
%s`
)
