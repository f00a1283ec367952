// Copyright 2025 Clinsight Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package differential

import "github.com/clinsight/clinsight/core"

// DefaultCatalog returns the built-in condition catalog. Declaration order
// is significant: conditions with equal scores rank in this order.
func DefaultCatalog() []core.Condition {
	return defaultCatalog
}

var defaultCatalog = []core.Condition{
	{
		Name: "Community-Acquired Pneumonia (CAP)",
		Keywords: []string{"fever", "cough", "dyspnea", "shortness of breath",
			"pleuritic chest pain", "sputum", "tachypnea",
			"tachycardia", "crackles", "rales"},
		Description:    "Infection of the lung parenchyma presenting with respiratory symptoms and systemic inflammation.",
		SourceAffinity: "pneumonia",
	},
	{
		Name: "Acute Heart Failure / Decompensated Heart Failure",
		Keywords: []string{"dyspnea", "shortness of breath", "orthopnea",
			"paroxysmal nocturnal dyspnea", "edema",
			"lower extremity edema", "leg swelling", "fatigue",
			"crackles", "rales", "jugular venous distension",
			"gallop", "tachycardia", "weight gain"},
		Description:    "Inability of the heart to pump adequately, causing fluid overload and congestion.",
		SourceAffinity: "heart_failure",
	},
	{
		Name: "Acute Coronary Syndrome (ACS)",
		Keywords: []string{"chest pain", "diaphoresis", "nausea", "dyspnea",
			"shortness of breath", "palpitations", "syncope",
			"tachycardia", "hypertension", "hypotension",
			"diabetes", "diabetic", "smoking", "smoker"},
		Description:    "Spectrum including unstable angina, NSTEMI, and STEMI due to coronary artery occlusion.",
		SourceAffinity: "acute_coronary",
	},
	{
		Name: "COPD Exacerbation",
		Keywords: []string{"cough", "dyspnea", "shortness of breath", "wheezing",
			"sputum", "smoking", "smoker", "tachypnea",
			"hypoxemia", "hypoxia"},
		Description:    "Acute worsening of COPD symptoms beyond normal day-to-day variation.",
		SourceAffinity: "copd",
	},
	{
		Name: "Asthma Exacerbation",
		Keywords: []string{"wheezing", "cough", "dyspnea", "shortness of breath",
			"chest tightness", "tachypnea", "tachycardia",
			"hypoxemia"},
		Description:    "Acute worsening of airway inflammation and bronchospasm.",
		SourceAffinity: "asthma",
	},
	{
		Name: "Pulmonary Embolism (PE)",
		Keywords: []string{"dyspnea", "shortness of breath", "pleuritic chest pain",
			"chest pain", "tachycardia", "tachypnea", "hemoptysis",
			"hypoxemia", "hypoxia", "syncope", "hypotension",
			"leg swelling", "edema"},
		Description:    "Obstruction of pulmonary vasculature by thrombus, typically from DVT.",
		SourceAffinity: "pulmonary_embolism",
	},
	{
		Name: "Sepsis",
		Keywords: []string{"fever", "tachycardia", "tachypnea", "hypotension",
			"confusion", "altered mental status", "dyspnea",
			"shortness of breath", "cough", "dysuria",
			"abdominal pain", "hypoxemia"},
		Description:    "Life-threatening organ dysfunction from dysregulated host response to infection.",
		SourceAffinity: "sepsis",
	},
	{
		Name: "Acute Ischemic Stroke",
		Keywords: []string{"hemiparesis", "aphasia", "confusion",
			"altered mental status", "headache", "dizziness",
			"vertigo", "ataxia", "diplopia", "hypertension",
			"hypertensive", "diabetes", "diabetic"},
		Description:    "Acute cerebrovascular occlusion causing neurological deficits.",
		SourceAffinity: "stroke",
	},
	{
		Name: "Type 2 Diabetes – Acute Complications",
		Keywords: []string{"polyuria", "polydipsia", "weight loss", "fatigue",
			"blurred vision", "nausea", "vomiting", "confusion",
			"diabetes", "diabetic", "obese", "obesity"},
		Description:    "Hyperglycemic emergencies (DKA/HHS) or symptomatic uncontrolled diabetes.",
		SourceAffinity: "diabetes",
	},
	{
		Name: "COVID-19",
		Keywords: []string{"fever", "cough", "fatigue", "myalgia", "headache",
			"anosmia", "ageusia", "dyspnea", "shortness of breath",
			"hypoxemia", "hypoxia", "diarrhea"},
		Description:    "SARS-CoV-2 infection ranging from mild to critical illness.",
		SourceAffinity: "covid",
	},
}
