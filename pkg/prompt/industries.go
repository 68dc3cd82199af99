package prompt

import "strings"

// Industry playbooks keyed by a substring matched against the tenant's
// industry field, so "Real Estate Agency" picks up real_estate.
var industryTemplates = []struct {
	key      string
	template string
}{
	{"real_estate", "\nINDUSTRY: REAL ESTATE\n- Show available units.\n- Ask for budget, location, rooms.\n- Offer inspection.\n"},
	{"healthcare", "\nINDUSTRY: HEALTHCARE / CLINIC\n- Show service availability.\n- Offer appointment slots.\n- Collect patient details.\n"},
	{"restaurant", "\nINDUSTRY: RESTAURANT\n- Show menu if asked.\n- Confirm delivery areas.\n- Collect order & customer info.\n"},
	{"beauty", "\nINDUSTRY: BEAUTY SALON / SPA\n- Share prices.\n- Ask preferred style & date.\n- Book appointment.\n"},
	{"retail", "\nINDUSTRY: SUPERMARKET / RETAIL\n- Confirm stock availability.\n- Reserve items.\n- Collect customer info.\n"},
	{"logistics", "\nINDUSTRY: LOGISTICS / DELIVERY\n- Ask weight, pickup, destination.\n- Generate price estimate.\n- Book delivery.\n"},
	{"education", "\nINDUSTRY: SCHOOL / TRAINING\n- Share course details.\n- Ask preferred session.\n- Collect name & WhatsApp.\n"},
	{"consulting", "\nINDUSTRY: CONSULTING / SERVICES\n- Explain services.\n- Book consultation.\n"},
	{"ngo", "\nINDUSTRY: NGO / COMMUNITY\n- Explain mission.\n- Accept donations or volunteer signups.\n"},
}

const knownIndustryFallback = "\nINDUSTRY: GENERAL BUSINESS\n- Explain services/products.\n- Answer inquiries professionally.\n- Collect customer info if interested.\n"

const generalIndustryTemplate = "\nINDUSTRY: GENERAL\n- Provide helpful information about products/services.\n- Answer questions based on the details provided below.\n"

// industryPlaybook returns the playbook for a declared industry, or the
// general-business playbook when none matches.
func industryPlaybook(industry string) string {
	normalized := strings.ReplaceAll(strings.ToLower(industry), " ", "_")
	for _, entry := range industryTemplates {
		if strings.Contains(normalized, entry.key) {
			return entry.template
		}
	}
	return knownIndustryFallback
}
