package taxonomy

import "strings"

// nameTriggers are the words that precede a provider name in an utterance,
// e.g. "tell me about Karim", "the worker Rahim".
var nameTriggers = []string{"about", "named", "worker"}

const tokenCutset = ".,!?\"'()"

// ExtractName pulls a candidate provider name out of free text by locating
// a trigger word and taking the following token. Returns ("", false) when
// no trigger is followed by a token — callers treat absence as "ask the
// user", never as an error.
func ExtractName(text string) (string, bool) {
	fields := strings.Fields(text)
	for i, f := range fields {
		word := strings.ToLower(strings.Trim(f, tokenCutset))
		for _, trigger := range nameTriggers {
			if word != trigger {
				continue
			}
			if i+1 >= len(fields) {
				continue
			}
			name := strings.Trim(fields[i+1], tokenCutset)
			if name == "" {
				continue
			}
			return name, true
		}
	}
	return "", false
}
