package ai

// Idea generation prompts
const (
	IdeaSystemPrompt = `You are a social media trend expert and content strategist.`

	// Filled with topic, category description and category id
	CategoryIdeaUserPrompt = `Generate 5 creative social media content ideas for "%s" specifically for %s.
For each idea, include:
1. A catchy title (max 60 chars)
2. Brief description (1-2 sentences)
3. Content type (e.g., video, reel, story, post)
4. Estimated virality potential (low, medium, high)
5. Target audience

Return as a JSON array with fields: title, description, content_type, virality, target_audience, category.
Set category to: %s`

	// Filled with topic only
	MixedIdeaUserPrompt = `Generate 5 creative social media content ideas across different categories for "%s".
Include a mix of humor, tech, finance, fitness, and lifestyle ideas.
For each idea, include:
1. A catchy title (max 60 chars)
2. Brief description (1-2 sentences)
3. Content type (e.g., video, reel, story, post)
4. Estimated virality potential (low, medium, high)
5. Target audience
6. Category (one of: humor, tech, finance, fitness, education, lifestyle)

Return as a JSON array with fields: title, description, content_type, virality, target_audience, category.`

	// Appended for providers without a native JSON mode
	JSONOnlyInstruction = "\n\nIMPORTANT: Respond ONLY with valid JSON. No markdown, no explanation, just the JSON."
)
