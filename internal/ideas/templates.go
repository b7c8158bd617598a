package ideas

import (
	"strings"

	"github.com/idea-agent/internal/models"
)

// MaxMixedIdeas caps the fallback list for the "all" category
const MaxMixedIdeas = 5

// template holds an idea with a {topic} placeholder in its title and description
type template struct {
	title          string
	description    string
	contentType    models.ContentType
	virality       models.Virality
	targetAudience string
}

var templates = map[models.Category][]template{
	models.CategoryHumor: {
		{
			title:          "When {topic} Goes Hilariously Wrong",
			description:    "A compilation of funny {topic} fails that everyone can relate to.",
			contentType:    models.ContentTypeVideo,
			virality:       models.ViralityHigh,
			targetAudience: "General audience with interest in comedy",
		},
		{
			title:          "{topic} Expectations vs. Reality",
			description:    "Contrasting what people expect from {topic} with the often-amusing reality.",
			contentType:    models.ContentTypeReel,
			virality:       models.ViralityHigh,
			targetAudience: "Young adults and teens",
		},
	},
	models.CategoryTech: {
		{
			title:          "5 {topic} Hacks You Never Knew Existed",
			description:    "Quick technical tips to master {topic} that most people don't know about.",
			contentType:    models.ContentTypeTutorial,
			virality:       models.ViralityMedium,
			targetAudience: "Tech enthusiasts and early adopters",
		},
		{
			title:          "The Future of {topic}: 2025 Predictions",
			description:    "Analysis of upcoming trends and technologies related to {topic}.",
			contentType:    models.ContentTypePost,
			virality:       models.ViralityMedium,
			targetAudience: "Industry professionals and tech followers",
		},
	},
	models.CategoryFinance: {
		{
			title:          "How {topic} Can Save You $1000 This Month",
			description:    "Practical financial strategies using {topic} for immediate savings.",
			contentType:    models.ContentTypeVideo,
			virality:       models.ViralityMedium,
			targetAudience: "Budget-conscious adults",
		},
		{
			title:          "Investing in {topic}: Beginner's Guide",
			description:    "Step-by-step approach to understanding investment opportunities in {topic}.",
			contentType:    models.ContentTypeSeries,
			virality:       models.ViralityLow,
			targetAudience: "New investors",
		},
	},
	models.CategoryFitness: {
		{
			title:          "10-Minute {topic} Workout for Busy People",
			description:    "Quick and effective workout routine incorporating {topic} principles.",
			contentType:    models.ContentTypeReel,
			virality:       models.ViralityHigh,
			targetAudience: "Busy professionals interested in fitness",
		},
		{
			title:          "{topic} Transformation Challenge",
			description:    "30-day fitness journey using {topic} methods with visible results.",
			contentType:    models.ContentTypeSeries,
			virality:       models.ViralityMedium,
			targetAudience: "Fitness enthusiasts looking for challenges",
		},
	},
	models.CategoryEducation: {
		{
			title:          "{topic} Explained in 60 Seconds",
			description:    "Quick, easy-to-understand explanation of {topic} for beginners.",
			contentType:    models.ContentTypeReel,
			virality:       models.ViralityMedium,
			targetAudience: "Students and lifelong learners",
		},
		{
			title:          "What Schools Don't Teach About {topic}",
			description:    "Lesser-known but important facts about {topic} that aren't in textbooks.",
			contentType:    models.ContentTypeVideo,
			virality:       models.ViralityMedium,
			targetAudience: "Curious minds and alternative education followers",
		},
	},
	models.CategoryLifestyle: {
		{
			title:          "Day in the Life: {topic} Edition",
			description:    "Follow-along vlog showing how {topic} integrates into daily routines.",
			contentType:    models.ContentTypeVlog,
			virality:       models.ViralityMedium,
			targetAudience: "Lifestyle content followers",
		},
		{
			title:          "{topic} Room Makeover",
			description:    "Transforming a space with {topic}-inspired aesthetics and functionality.",
			contentType:    models.ContentTypeVideo,
			virality:       models.ViralityMedium,
			targetAudience: "Home decor and design enthusiasts",
		},
	},
}

func (t template) render(topic string, category models.Category) models.ContentIdea {
	return models.ContentIdea{
		Title:          strings.ReplaceAll(t.title, "{topic}", topic),
		Description:    strings.ReplaceAll(t.description, "{topic}", topic),
		ContentType:    t.contentType,
		Virality:       t.virality,
		TargetAudience: t.targetAudience,
		Category:       category,
	}
}

// Fallback returns template ideas for a topic without calling any service.
// A specific category yields its two templates; "all" yields the first
// template of each category in enumeration order, capped at MaxMixedIdeas.
// Categories outside the closed set get the humor templates.
func Fallback(topic string, category models.Category) []models.ContentIdea {
	if category != models.CategoryAll {
		if _, ok := templates[category]; !ok {
			category = models.CategoryHumor
		}

		list := templates[category]
		ideas := make([]models.ContentIdea, 0, len(list))
		for _, t := range list {
			ideas = append(ideas, t.render(topic, category))
		}
		return ideas
	}

	ideas := make([]models.ContentIdea, 0, MaxMixedIdeas)
	for _, c := range models.ContentCategories() {
		ideas = append(ideas, templates[c][0].render(topic, c))
		if len(ideas) >= MaxMixedIdeas {
			break
		}
	}
	return ideas
}
