package models

// UpdateSettingsRequest replaces the tenant's business profile fields.
// PUT semantics: every field is written as given, empty strings clear.
type UpdateSettingsRequest struct {
	Industry           string `json:"industry"`
	Description        string `json:"description"`
	ServicesText       string `json:"services_text"`
	Tone               string `json:"tone"`
	FAQ                string `json:"faq"`
	CustomInstructions string `json:"custom_instructions"`
	Location           string `json:"location"`
	Hours              string `json:"hours"`
}

// CreateKnowledgeDocRequest adds one document to the tenant's knowledge
// base.
type CreateKnowledgeDocRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
