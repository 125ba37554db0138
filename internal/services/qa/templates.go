package qa

import (
	"fmt"
	"strings"

	"saral-seva-backend/internal/models"
)

// Intent is the template branch selected from the question text.
type Intent string

const (
	IntentEligibility Intent = "eligibility"
	IntentApplication Intent = "application"
	IntentBenefit     Intent = "benefit"
	IntentGeneral     Intent = "general"
)

// Language selects the answer template variant. It is an explicit parameter;
// DetectLanguage exists only as a heuristic for callers that omit it.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

// ParseLanguage maps a language tag to a supported Language, defaulting to
// English.
func ParseLanguage(tag string) Language {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "hi", "hindi":
		return LanguageHindi
	default:
		return LanguageEnglish
	}
}

// DetectLanguage guesses the question language by scanning for Devanagari
// script characters. This is a heuristic, not a guarantee: romanized Hindi
// comes back as English.
func DetectLanguage(question string) Language {
	for _, r := range question {
		if r >= 0x0900 && r <= 0x097F {
			return LanguageHindi
		}
	}
	return LanguageEnglish
}

// Keyword classes for intent dispatch, checked in precedence order:
// eligibility, application, benefit, then general.
var (
	applicationTerms = []string{"apply", "application", "process", "how do i", "how to", "form", "आवेदन", "कैसे"}
	benefitTerms     = []string{"benefit", "amount", "money", "payment", "लाभ", "राशि", "पैसा", "कितना"}
	hindiEligTerms   = []string{"पात्र", "पात्रता", "योग्य"}
)

// DetectIntent classifies the question into a template branch.
func DetectIntent(question string) Intent {
	q := strings.ToLower(question)
	switch {
	case containsAny(q, eligibilityTerms) || containsAny(q, hindiEligTerms):
		return IntentEligibility
	case containsAny(q, applicationTerms):
		return IntentApplication
	case containsAny(q, benefitTerms):
		return IntentBenefit
	default:
		return IntentGeneral
	}
}

// phrases holds every composer string as a keyed resource (key × language),
// so template text lives in one table instead of being branched inline.
var phrases = map[string]map[Language]string{
	"no_match": {
		LanguageEnglish: "I could not find a relevant government scheme for your question. Please try rephrasing it or mention the scheme name directly.",
		LanguageHindi:   "आपके प्रश्न के लिए कोई प्रासंगिक सरकारी योजना नहीं मिली। कृपया प्रश्न दोबारा लिखें या योजना का नाम बताएं।",
	},
	"eligibility_intro": {
		LanguageEnglish: "**%s** — eligibility criteria:",
		LanguageHindi:   "**%s** — पात्रता मानदंड:",
	},
	"congratulations": {
		LanguageEnglish: "🎉 Congratulations! Based on your profile, you meet all the eligibility criteria for this scheme.",
		LanguageHindi:   "🎉 बधाई हो! आपकी प्रोफ़ाइल के आधार पर आप इस योजना के सभी पात्रता मानदंड पूरे करते हैं।",
	},
	"unmet_intro": {
		LanguageEnglish: "You do not currently meet the following requirements:",
		LanguageHindi:   "आप वर्तमान में निम्नलिखित आवश्यकताएँ पूरी नहीं करते:",
	},
	"application_intro": {
		LanguageEnglish: "**%s** — how to apply:",
		LanguageHindi:   "**%s** — आवेदन कैसे करें:",
	},
	"apply_online": {
		LanguageEnglish: "- You can apply **online**.",
		LanguageHindi:   "- आप **ऑनलाइन** आवेदन कर सकते हैं।",
	},
	"apply_offline": {
		LanguageEnglish: "- You can apply **offline** at the designated office.",
		LanguageHindi:   "- आप निर्दिष्ट कार्यालय में **ऑफ़लाइन** आवेदन कर सकते हैं।",
	},
	"apply_fee": {
		LanguageEnglish: "- Application fee: ₹%s",
		LanguageHindi:   "- आवेदन शुल्क: ₹%s",
	},
	"apply_free": {
		LanguageEnglish: "- There is no application fee.",
		LanguageHindi:   "- कोई आवेदन शुल्क नहीं है।",
	},
	"apply_steps": {
		LanguageEnglish: "Steps:",
		LanguageHindi:   "चरण:",
	},
	"documents_intro": {
		LanguageEnglish: "Documents required:",
		LanguageHindi:   "आवश्यक दस्तावेज़:",
	},
	"benefit_intro": {
		LanguageEnglish: "**%s** — benefits:",
		LanguageHindi:   "**%s** — लाभ:",
	},
	"benefit_amount": {
		LanguageEnglish: "- Benefit amount: ₹%s",
		LanguageHindi:   "- लाभ राशि: ₹%s",
	},
	"benefit_amount_range": {
		LanguageEnglish: "- Benefit amount: ₹%s to ₹%s",
		LanguageHindi:   "- लाभ राशि: ₹%s से ₹%s",
	},
	"benefit_income_share": {
		LanguageEnglish: "- This benefit equals %s of your annual income.",
		LanguageHindi:   "- यह लाभ आपकी वार्षिक आय का %s है।",
	},
	"benefit_per_month": {
		LanguageEnglish: "- You would receive ₹%s per month.",
		LanguageHindi:   "- आपको ₹%s प्रति माह मिलेंगे।",
	},
	"benefit_per_year": {
		LanguageEnglish: "- You would receive ₹%s per year.",
		LanguageHindi:   "- आपको ₹%s प्रति वर्ष मिलेंगे।",
	},
	"general_intro": {
		LanguageEnglish: "**%s**",
		LanguageHindi:   "**%s**",
	},
	"general_department": {
		LanguageEnglish: "- Department: %s",
		LanguageHindi:   "- विभाग: %s",
	},
	"general_level": {
		LanguageEnglish: "- Level: %s government scheme",
		LanguageHindi:   "- स्तर: %s सरकार की योजना",
	},
	"related_schemes": {
		LanguageEnglish: "Other schemes you may find relevant:",
		LanguageHindi:   "अन्य योजनाएँ जो आपके लिए प्रासंगिक हो सकती हैं:",
	},
}

// criterionLabels localizes the per-criterion lines of the eligibility
// template.
var criterionLabels = map[models.Criterion]map[Language]string{
	models.CriterionAge:           {LanguageEnglish: "Age requirement", LanguageHindi: "आयु आवश्यकता"},
	models.CriterionIncome:        {LanguageEnglish: "Income limit", LanguageHindi: "आय सीमा"},
	models.CriterionCategory:      {LanguageEnglish: "Social category", LanguageHindi: "सामाजिक श्रेणी"},
	models.CriterionState:         {LanguageEnglish: "State of residence", LanguageHindi: "निवास राज्य"},
	models.CriterionOccupation:    {LanguageEnglish: "Occupation", LanguageHindi: "व्यवसाय"},
	models.CriterionEducation:     {LanguageEnglish: "Education level", LanguageHindi: "शिक्षा स्तर"},
	models.CriterionWomen:         {LanguageEnglish: "Women-only scheme", LanguageHindi: "केवल महिलाओं के लिए योजना"},
	models.CriterionDisability:    {LanguageEnglish: "For persons with disabilities", LanguageHindi: "दिव्यांगजनों के लिए"},
	models.CriterionSeniorCitizen: {LanguageEnglish: "Senior citizens only", LanguageHindi: "केवल वरिष्ठ नागरिकों के लिए"},
	models.CriterionMinority:      {LanguageEnglish: "Minority communities only", LanguageHindi: "केवल अल्पसंख्यक समुदायों के लिए"},
}

// phrase renders a keyed template resource in the given language. Every
// composer string goes through this one interpolation point.
func phrase(key string, lang Language, args ...interface{}) string {
	variants, ok := phrases[key]
	if !ok {
		return ""
	}
	text, ok := variants[lang]
	if !ok {
		text = variants[LanguageEnglish]
	}
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}

// criterionLabel returns the localized label for a criterion.
func criterionLabel(c models.Criterion, lang Language) string {
	variants, ok := criterionLabels[c]
	if !ok {
		return string(c)
	}
	if label, ok := variants[lang]; ok {
		return label
	}
	return variants[LanguageEnglish]
}
