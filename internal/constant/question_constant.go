package constant

// QuestionOption is one selectable answer for a choice question.
type QuestionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is one step of the fixed questionnaire flow. Message may contain
// {placeholder} tokens interpolated from branding and earlier answers.
type Question struct {
	Id          string           `json:"id"`
	Type        string           `json:"type"`
	Message     string           `json:"message"`
	Placeholder string           `json:"placeholder,omitempty"`
	Options     []QuestionOption `json:"options,omitempty"`
}

// SurveyQuestions is the fixed step sequence. The conjoint step is last; the
// session completes once its rounds are exhausted and the step advances past it.
var SurveyQuestions = []Question{
	{
		Id:      "welcome",
		Type:    "info",
		Message: "Hi! I'm {assistant_name}, the AI assistant for {company_name}. I'll ask you a few quick questions about the kind of roles and employers you're looking for, which should take about three minutes. Based on your answers, I'll be able to help identify roles that will be well suited to what you are looking for. Let's get started.",
	},
	{
		Id:          "email",
		Type:        "text",
		Message:     "Please confirm your email address.",
		Placeholder: "Enter your email address",
	},
	{
		Id:          "name",
		Type:        "text",
		Message:     "Great! What's your name?",
		Placeholder: "Enter your full name",
	},
	{
		Id:          "zip_code",
		Type:        "text",
		Message:     "And your ZIP code?",
		Placeholder: "Enter your ZIP code",
	},
	{
		Id:          "position_type",
		Type:        "text",
		Message:     "What kind of position are you looking for? (e.g. Marketing Manager in tech)",
		Placeholder: "Describe the position you're seeking",
	},
	{
		Id:      "work_preference",
		Type:    "choice",
		Message: "How would you ideally like to work?",
		Options: []QuestionOption{
			{Value: "remote", Label: "Remote"},
			{Value: "hybrid", Label: "Hybrid"},
			{Value: "in_person", Label: "In-person"},
			{Value: "no_preference", Label: "No strong preference"},
		},
	},
	{
		Id:      "salary_range",
		Type:    "choice",
		Message: "What salary range are you targeting?",
		Options: []QuestionOption{
			{Value: "below_50k", Label: "Below $50,000"},
			{Value: "50k_75k", Label: "$50,000 - $75,000"},
			{Value: "75k_100k", Label: "$75,000 - $100,000"},
			{Value: "100k_150k", Label: "$100,000 - $150,000"},
			{Value: "above_150k", Label: "$150,000+"},
			{Value: "flexible", Label: "I'm flexible"},
		},
	},
	{
		Id:      "conjoint",
		Type:    "conjoint",
		Message: "Now I'd like to understand your job preferences better. Which company would you be more likely to apply to?",
	},
}

// ConjointStepId is the questionnaire step that hosts the pairwise rounds.
const ConjointStepId = "conjoint"
