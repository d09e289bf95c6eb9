package taxonomy

import "strings"

// Canonical service categories offered on the marketplace.
const (
	ServicePlumbing        = "plumbing"
	ServiceElectrical      = "electrical"
	ServiceCleaning        = "cleaning"
	ServiceCarpentry       = "carpentry"
	ServicePainting        = "painting"
	ServiceApplianceRepair = "appliance repair"
	ServiceGardening       = "gardening"
	ServicePestControl     = "pest control"
)

type synonymGroup struct {
	canonical string
	synonyms  []string
}

// synonymTable maps lexical variants to canonical service categories.
// Declaration order is a deliberate tie-break: when several groups match
// an utterance, the first declared group wins. Do not reorder.
var synonymTable = []synonymGroup{
	{ServicePlumbing, []string{"plumber", "pipe", "leak", "tap", "faucet", "drain", "sanitary"}},
	{ServiceElectrical, []string{"electrician", "wiring", "electricity", "ceiling fan", "light fitting", "switchboard", "socket"}},
	{ServiceCleaning, []string{"cleaner", "cleaning", "housekeeping", "maid", "deep clean", "sofa wash"}},
	{ServiceCarpentry, []string{"carpenter", "woodwork", "furniture", "door repair", "cabinet"}},
	{ServicePainting, []string{"painter", "paint", "whitewash", "varnish"}},
	{ServiceApplianceRepair, []string{"appliance", "fridge", "refrigerator", "air conditioner", "aircon", "washing machine", "oven", "microwave"}},
	{ServiceGardening, []string{"gardener", "garden", "lawn", "landscaping", "plants"}},
	{ServicePestControl, []string{"pest", "termite", "cockroach", "rodent", "mosquito"}},
}

// ServiceCategories returns the canonical categories in declaration order.
func ServiceCategories() []string {
	out := make([]string, 0, len(synonymTable))
	for _, g := range synonymTable {
		out = append(out, g.canonical)
	}
	return out
}

// ValidService reports whether s is a canonical service category.
func ValidService(s string) bool {
	for _, g := range synonymTable {
		if g.canonical == s {
			return true
		}
	}
	return false
}

// MatchService resolves free text to a canonical service category.
// Matching is case-insensitive substring containment. A verbatim canonical
// name wins over any synonym; otherwise the first matching synonym group in
// declaration order wins.
func MatchService(text string) (string, bool) {
	lower := strings.ToLower(text)

	for _, g := range synonymTable {
		if strings.Contains(lower, g.canonical) {
			return g.canonical, true
		}
	}

	for _, g := range synonymTable {
		for _, syn := range g.synonyms {
			if strings.Contains(lower, syn) {
				return g.canonical, true
			}
		}
	}

	return "", false
}
