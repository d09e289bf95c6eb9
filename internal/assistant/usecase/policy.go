package usecase

import (
	"marketplace-assistant/internal/model"
	"marketplace-assistant/internal/taxonomy"
)

// applyPolicy is the role-based visibility gate applied after
// classification and before synthesis. It is a pure function: for a
// forbidden (category, role) pair it returns the fixed refusal text and
// refused=true, which short-circuits synthesis entirely. All other pairs
// pass through unchanged.
func applyPolicy(category taxonomy.IntentCategory, role model.Role) (refusal string, refused bool) {
	switch {
	case role == model.RoleSeeker && category == taxonomy.CategoryFindJobs:
		return MsgSeekerJobsRefusal, true
	case role == model.RoleProvider && category == taxonomy.CategoryFindProviders:
		return MsgProviderDirectoryRefusal, true
	}
	return "", false
}
