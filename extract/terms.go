package extract

// knownFindings is the recognition vocabulary for the rule-based extractor.
// Terms are matched against lowercased notes on word boundaries, in order,
// keeping the first hit per term.
var knownFindings = []string{
	// Symptoms
	"fever", "cough", "dyspnea", "shortness of breath", "chest pain",
	"pleuritic chest pain", "wheezing", "hemoptysis", "sputum",
	"orthopnea", "paroxysmal nocturnal dyspnea", "palpitations",
	"edema", "leg swelling", "lower extremity edema", "fatigue",
	"weight loss", "weight gain", "nausea", "vomiting", "diarrhea",
	"abdominal pain", "headache", "dizziness", "syncope", "confusion",
	"altered mental status", "diaphoresis", "night sweats",
	"polyuria", "polydipsia", "blurred vision",
	"anosmia", "ageusia", "myalgia", "joint pain", "back pain",
	"rash", "pruritus", "dysuria", "hematuria", "oliguria",
	"anorexia", "tachycardia", "tachypnea", "hypotension",
	"hypertension", "hypoxemia", "hypoxia", "crackles", "rales",
	"jugular venous distension", "murmur", "gallop",
	"hemiparesis", "aphasia", "ataxia", "vertigo", "diplopia",
	// Risk factors / demographics
	"smoking", "smoker", "diabetes", "diabetic", "hypertensive",
	"obese", "obesity", "alcohol", "sedentary",
	"immunosuppressed", "immunocompromised",
	"male", "female", "elderly",
}
