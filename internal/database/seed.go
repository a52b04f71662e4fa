package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/chizhinime/brand-pawa-sub000/internal/logger"
	"github.com/chizhinime/brand-pawa-sub000/internal/models"
)

// Seed installs the starter catalog on an empty database so a fresh
// deployment is usable. It never touches existing rows.
func Seed(db *gorm.DB, log *logger.Logger) {
	var count int64
	db.Model(&models.Diagnostic{}).Count(&count)
	if count == 0 {
		seedBrandPowerDiagnostic(db, log)
	}

	db.Model(&models.Challenge{}).Count(&count)
	if count == 0 {
		seedChallenges(db, log)
	}
}

func seedBrandPowerDiagnostic(db *gorm.DB, log *logger.Logger) {
	diagnostic := models.Diagnostic{
		Slug:        "brand-power",
		Title:       "Brand Power Diagnostic",
		Description: "Ten questions that measure how visible, credible and distinct your brand is today.",
	}
	if err := db.Create(&diagnostic).Error; err != nil {
		log.Error("seed: diagnostic", "error", err)
		return
	}

	questions := []struct {
		text    string
		options []models.QuestionOption
	}{
		{"When someone searches your brand name, what do they find?", scaleOptions("Nothing at all", "A bare profile or two", "A consistent presence", "A strong page-one presence")},
		{"How often do you publish content your audience can see?", scaleOptions("Never", "A few times a year", "Most weeks", "Several times a week")},
		{"Could a stranger describe what you sell after 30 seconds on your page?", scaleOptions("Definitely not", "They would guess wrong", "Roughly, yes", "Instantly and accurately")},
		{"How many customer reviews or testimonials can you point to?", scaleOptions("None", "One or two", "A handful, somewhat dated", "Many, recent and specific")},
		{"Do you have proof of results you can show publicly?", scaleOptions("No proof", "Private results only", "A few public examples", "Documented case studies")},
		{"How do people usually hear about you?", scaleOptions("They don't", "Paid ads only", "Some word of mouth", "Regular referrals and mentions")},
		{"Does your brand look and sound the same everywhere?", scaleOptions("No shared look or voice", "Loose resemblance", "Mostly consistent", "Unmistakably consistent")},
		{"Can you name what you do differently from your nearest competitor?", scaleOptions("No idea", "Vague notion", "Yes, but unstated publicly", "Yes, and it's front and center")},
		{"How do your prices compare to the market?", scaleOptions("Compete on being cheapest", "Slightly under market", "At market", "Premium and defended")},
		{"Do customers come back or refer others without prompting?", scaleOptions("Never", "Rarely", "Sometimes", "Consistently")},
	}

	for i, q := range questions {
		question := models.DiagnosticQuestion{
			DiagnosticID: diagnostic.ID,
			Text:         q.text,
			OrderNum:     i + 1,
		}
		if err := db.Create(&question).Error; err != nil {
			log.Error("seed: question", "error", err)
			return
		}
		for _, o := range q.options {
			o.QuestionID = question.ID
			if err := db.Create(&o).Error; err != nil {
				log.Error("seed: option", "error", err)
				return
			}
		}
	}

	pillars := []models.Pillar{
		{DiagnosticID: diagnostic.ID, Name: "Visibility", QuestionOrder: datatypes.NewJSONSlice([]int{1, 2, 3}), MaxScore: 30},
		{DiagnosticID: diagnostic.ID, Name: "Credibility", QuestionOrder: datatypes.NewJSONSlice([]int{4, 5, 6}), MaxScore: 30},
		{DiagnosticID: diagnostic.ID, Name: "Differentiation", QuestionOrder: datatypes.NewJSONSlice([]int{7, 8, 9, 10}), MaxScore: 40},
	}
	for _, p := range pillars {
		if err := db.Create(&p).Error; err != nil {
			log.Error("seed: pillar", "error", err)
			return
		}
	}

	log.Info("seeded brand power diagnostic", "questions", len(questions))
}

func scaleOptions(labels ...string) []models.QuestionOption {
	points := []int{0, 4, 7, 10}
	options := make([]models.QuestionOption, len(labels))
	for i, label := range labels {
		options[i] = models.QuestionOption{Label: label, Points: points[i]}
	}
	return options
}

func seedChallenges(db *gorm.DB, log *logger.Logger) {
	sprint := models.Challenge{
		Slug:         "visibility-sprint",
		Name:         "7-Day Visibility Sprint",
		Category:     "visibility",
		Difficulty:   "starter",
		DailyMinutes: 20,
		RewardPoints: 50,
	}
	if err := db.Create(&sprint).Error; err != nil {
		log.Error("seed: challenge", "error", err)
		return
	}
	sprintWeek := models.ChallengeDuration{ChallengeID: sprint.ID, Days: 7, Label: "One week"}
	if err := db.Create(&sprintWeek).Error; err != nil {
		log.Error("seed: duration", "error", err)
		return
	}
	seedTasks(db, log, sprintWeek.ID, []models.ChallengeTask{
		{DayNumber: 1, Title: "Claim your profiles", CompletionType: models.TaskCompletionCheck,
			Rationale:      "An unclaimed profile is a door your customers knock on with no answer.",
			ContentProduct: "Claim or update your brand's profile on the two marketplaces your buyers browse most.",
			ContentService: "Claim or update your profile on the two directories your clients search first."},
		{DayNumber: 2, Title: "Write your one-line promise", CompletionType: models.TaskCompletionText,
			Rationale:      "If you can't say it in one line, your audience can't repeat it at all.",
			ContentProduct: "Write one sentence naming who your product is for and the result it delivers.",
			ContentService: "Write one sentence naming who you serve and the outcome you deliver."},
		{DayNumber: 3, Title: "Post once, anywhere", CompletionType: models.TaskCompletionCheck,
			Rationale:      "Visibility compounds from showing up, not from the perfect first post.",
			ContentProduct: "Publish one post showing your product in use, with your promise as the caption.",
			ContentService: "Publish one post answering a question a client asked you this month."},
		{DayNumber: 4, Title: "Ask for one review", CompletionType: models.TaskCompletionCheck,
			Rationale:      "One fresh, specific review outweighs ten stale star ratings.",
			ContentProduct: "Message your most recent happy customer and ask for a short written review.",
			ContentService: "Message your most recent satisfied client and ask for a short testimonial."},
		{DayNumber: 5, Title: "Fix your bio everywhere", CompletionType: models.TaskCompletionCheck,
			Rationale:      "A mismatched bio makes people wonder which version of you is real.",
			ContentProduct: "Paste your one-line promise into every profile bio you claimed on day 1.",
			ContentService: "Paste your one-line promise into every directory profile you claimed on day 1."},
		{DayNumber: 6, Title: "Engage, don't broadcast", CompletionType: models.TaskCompletionCheck, Optional: true,
			Rationale:      "Conversation puts your name in feeds your posts never reach.",
			ContentProduct: "Leave three useful comments where your buyers hang out. No links, no pitch.",
			ContentService: "Answer one question in a community your clients frequent. No links, no pitch."},
		{DayNumber: 7, Title: "Book next week's posts", CompletionType: models.TaskCompletionText,
			Rationale:      "A sprint that ends with a plan becomes a habit instead of a memory.",
			ContentProduct: "Draft and schedule two posts for next week. Note here what they cover.",
			ContentService: "Draft and schedule two posts for next week. Note here what they cover."},
	})

	authority := models.Challenge{
		Slug:         "authority-builder",
		Name:         "Authority Builder",
		Category:     "credibility",
		Difficulty:   "advanced",
		DailyMinutes: 40,
		ProOnly:      true,
		RewardPoints: 100,
	}
	if err := db.Create(&authority).Error; err != nil {
		log.Error("seed: challenge", "error", err)
		return
	}
	authorityWeek := models.ChallengeDuration{ChallengeID: authority.ID, Days: 7, Label: "One week"}
	if err := db.Create(&authorityWeek).Error; err != nil {
		log.Error("seed: duration", "error", err)
		return
	}
	seedTasks(db, log, authorityWeek.ID, []models.ChallengeTask{
		{DayNumber: 1, Title: "Pick your proof", CompletionType: models.TaskCompletionText,
			Rationale:      "Authority starts with one result you can defend in public.",
			ContentProduct: "Pick your single best customer result and write down the before and after numbers.",
			ContentService: "Pick your single best client outcome and write down the before and after."},
		{DayNumber: 2, Title: "Draft the case study", CompletionType: models.TaskCompletionCheck,
			Rationale:      "A case study answers the question every prospect is silently asking.",
			ContentProduct: "Draft a one-page case study: the problem, what your product changed, the numbers.",
			ContentService: "Draft a one-page case study: the situation, what you did, what changed."},
		{DayNumber: 3, Title: "Get the quote", CompletionType: models.TaskCompletionCheck,
			Rationale:      "Their words carry the credibility yours can't.",
			ContentProduct: "Ask the featured customer for a quote and permission to use their name.",
			ContentService: "Ask the featured client for a quote and permission to use their name."},
		{DayNumber: 4, Title: "Publish it", CompletionType: models.TaskCompletionCheck,
			Rationale:      "Unpublished proof persuades nobody.",
			ContentProduct: "Publish the case study where prospects will find it and link it from your bio.",
			ContentService: "Publish the case study on your site and link it from your proposals."},
		{DayNumber: 5, Title: "Pitch one stage", CompletionType: models.TaskCompletionText,
			Rationale:      "Borrowed audiences are the fastest route to being seen as the expert.",
			ContentProduct: "Pitch one podcast, newsletter or event on the story behind your result. Note who you pitched.",
			ContentService: "Pitch one podcast, newsletter or event on the lesson behind your result. Note who you pitched."},
		{DayNumber: 6, Title: "Teach the method", CompletionType: models.TaskCompletionCheck, Optional: true,
			Rationale:      "Teaching what you did separates authorities from advertisers.",
			ContentProduct: "Post a short breakdown of how the result happened, step by step.",
			ContentService: "Post a short breakdown of your approach, step by step."},
		{DayNumber: 7, Title: "Systemize the ask", CompletionType: models.TaskCompletionCheck,
			Rationale:      "Proof should accumulate on its own after this week.",
			ContentProduct: "Add a review request to your post-purchase flow so proof keeps arriving.",
			ContentService: "Add a testimonial request to your project close-out so proof keeps arriving."},
	})

	log.Info("seeded starter challenges", "challenges", 2)
}

func seedTasks(db *gorm.DB, log *logger.Logger, durationID uint, tasks []models.ChallengeTask) {
	for _, t := range tasks {
		t.DurationID = durationID
		if err := db.Create(&t).Error; err != nil {
			log.Error("seed: task", "error", err)
			return
		}
	}
}
