package planner

import "strings"

var baseTemplates = map[string][]string{
	"webapp": {
		"Plan UI components for {feature} with responsive design.",
		"Create a React component hierarchy for {feature}.",
	},
	"api": {
		"Design REST endpoints for {feature}. Include OpenAPI spec.",
		"Generate CRUD API with authentication for {feature}.",
	},
	"ml": {
		"Design ML pipeline for {objective}, including preprocessing steps.",
		"Suggest model architecture for {objective}.",
	},
	"cli": {
		"Create command structure for {feature}.",
		"Design CLI interface with proper argument parsing.",
	},
}

var templateEnhancements = map[string]string{
	"clean_code":     "- Follow clean code principles.\n- Add comments and docstrings.",
	"security_first": "- Include security best practices.\n- Validate all inputs.",
	"performance":    "- Optimize for low latency.\n- Add caching where possible.",
}

// DefaultTemplateStyle is applied when no enhancement style is given
const DefaultTemplateStyle = "clean_code"

// BaseTemplates returns the prompt templates for a use case. The lookup
// is case-insensitive; unknown use cases get a placeholder entry rather
// than an error.
func BaseTemplates(useCase string) []string {
	if templates, ok := baseTemplates[strings.ToLower(useCase)]; ok {
		return templates
	}
	return []string{"No templates available for this use case."}
}

// EnhanceTemplate appends style-specific guidance to a base template.
// Unknown styles get generic guidance.
func EnhanceTemplate(baseTemplate, style string) string {
	extra, ok := templateEnhancements[style]
	if !ok {
		extra = "- General improvements applied."
	}
	return baseTemplate + "\n\nAdditional Guidance:\n" + extra
}
