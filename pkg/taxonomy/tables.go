package taxonomy

// The tables below are built once and never mutated at runtime. Entry order
// is load-bearing: reordering changes tie-break and first-hit outcomes for
// existing corpora.

// Sectors maps industry keywords to a sector label. Matched with MatchBest:
// the sector with the most distinct keyword hits wins, earliest declared on
// ties.
var Sectors = &Taxonomy{
	Name:    "sector",
	Default: "General",
	Entries: []Entry{
		{Label: "Automotive", Keywords: []string{"car", "vehicle", "driver", "automotive", "driving", "autonomous"}},
		{Label: "Healthcare", Keywords: []string{"health", "medical", "patient", "clinical", "diagnosis", "treatment", "hospital"}},
		{Label: "Financial", Keywords: []string{"bank", "finance", "credit", "loan", "mortgage", "payment", "insurance"}},
		{Label: "Education", Keywords: []string{"education", "student", "learning", "school", "university", "academic"}},
		{Label: "Law Enforcement", Keywords: []string{"police", "law enforcement", "crime", "investigation", "surveillance"}},
		{Label: "Employment", Keywords: []string{"recruitment", "hiring", "employment", "hr", "candidate", "job"}},
		{Label: "Critical Infrastructure", Keywords: []string{"infrastructure", "energy", "water", "electricity", "utility"}},
		{Label: "Border Control", Keywords: []string{"border", "migration", "asylum", "immigration", "customs"}},
		{Label: "Justice", Keywords: []string{"court", "justice", "legal", "judicial", "litigation"}},
	},
}

// BiometricCategories detects whether any biometric modality is mentioned.
// Matched with MatchFirst; an empty result label means no biometrics.
var BiometricCategories = &Taxonomy{
	Name: "biometric_category",
	Entries: []Entry{
		{Label: "facial recognition", Keywords: []string{"facial recognition", "face recognition", "face detection", "facial identification"}},
		{Label: "fingerprint", Keywords: []string{"fingerprint", "fingerprint scan", "fingerprint recognition"}},
		{Label: "emotion recognition", Keywords: []string{"emotion recognition", "emotion detection", "emotional state", "sentiment analysis"}},
		{Label: "voice biometric", Keywords: []string{"voice recognition", "speaker identification", "voice biometric"}},
		{Label: "iris scan", Keywords: []string{"iris scan", "iris recognition", "retinal scan"}},
		{Label: "gait recognition", Keywords: []string{"gait", "walking pattern"}},
		{Label: "behavioral biometric", Keywords: []string{"keystroke", "mouse movement", "behavioral biometric"}},
	},
}

// BiometricPurposes is the priority list scanned once biometric involvement
// is established. The scan is independent of which modality matched: a
// corpus mentioning "fingerprint" in one span and "identify" in another is
// labeled purpose "identification" with no link between the spans verified.
var BiometricPurposes = &Taxonomy{
	Name: "biometric_purpose",
	Entries: []Entry{
		{Label: "identification", Keywords: []string{"identification", "identify"}},
		{Label: "emotion recognition", Keywords: []string{"emotion", "sentiment"}},
		{Label: "categorisation", Keywords: []string{"categorization", "categorisation"}},
		{Label: "authentication", Keywords: []string{"verification", "authenticate"}},
	},
}

// DecisionRoles classifies the system's role in decision making. Matched
// with MatchFirst, defaulting to Informational.
var DecisionRoles = &Taxonomy{
	Name:    "decision_role",
	Default: "Informational",
	Entries: []Entry{
		{Label: "Decision-making", Keywords: []string{"decide", "decision", "approve", "reject", "determine", "evaluate", "assess", "score", "rate"}},
		{Label: "Assistive/Recommendatory", Keywords: []string{"recommend", "suggest", "assist", "advise", "guide", "help"}},
		{Label: "Fully Automated Decision", Keywords: []string{"automated decision", "automatic decision", "without human intervention"}},
		{Label: "Informational", Keywords: []string{"inform", "display", "show", "present", "visualize"}},
	},
}

// RiskContexts enumerates the Annex III high-risk application contexts.
// Matched with MatchAll: every matching context is recorded.
var RiskContexts = &Taxonomy{
	Name: "high_risk_context",
	Entries: []Entry{
		{Label: "Safety-critical environment", Keywords: []string{"safety", "critical", "emergency", "life-threatening"}},
		{Label: "Vehicle operation", Keywords: []string{"vehicle", "car", "driver", "driving", "autonomous vehicle", "self-driving"}},
		{Label: "Medical decision", Keywords: []string{"diagnosis", "treatment", "medical decision", "clinical decision", "patient care"}},
		{Label: "Financial decision", Keywords: []string{"credit", "loan", "financial decision", "creditworthiness", "credit score"}},
		{Label: "Law enforcement", Keywords: []string{"law enforcement", "police", "crime", "investigation", "predictive policing"}},
		{Label: "Employment decision", Keywords: []string{"recruitment", "hiring", "employment decision", "candidate selection", "performance evaluation"}},
		{Label: "Educational assessment", Keywords: []string{"exam", "grade", "admission", "educational assessment", "student evaluation"}},
		{Label: "Border control", Keywords: []string{"border", "migration", "asylum", "visa", "immigration"}},
		{Label: "Justice administration", Keywords: []string{"court", "judge", "judicial", "legal proceeding", "evidence"}},
		{Label: "Essential services access", Keywords: []string{"public benefit", "social service", "essential service", "welfare"}},
		{Label: "Critical infrastructure", Keywords: []string{"power grid", "water supply", "transportation system", "energy infrastructure"}},
	},
}

// DataTypes enumerates categories of data the system processes. Matched with
// MatchAll.
var DataTypes = &Taxonomy{
	Name: "data_processed",
	Entries: []Entry{
		{Label: "Personal data", Keywords: []string{"personal", "user data", "individual data"}},
		{Label: "Location data", Keywords: []string{"location", "navigation", "gps", "geolocation"}},
		{Label: "Biometric data", Keywords: []string{"biometric", "facial", "fingerprint", "iris", "voice print"}},
		{Label: "Voice/Audio data", Keywords: []string{"voice", "speech", "audio", "conversation", "recording"}},
		{Label: "Video/Image data", Keywords: []string{"video", "camera", "image", "photograph", "visual"}},
		{Label: "Financial data", Keywords: []string{"financial", "transaction", "payment", "banking", "credit card"}},
		{Label: "Health data", Keywords: []string{"health", "medical", "clinical", "patient record", "diagnosis"}},
		{Label: "Behavioral data", Keywords: []string{"behavior", "behaviour", "pattern", "habit", "activity"}},
		{Label: "Sensitive attributes", Keywords: []string{"race", "ethnicity", "religion", "political", "sexual orientation", "health status"}},
	},
}

// DeploymentContexts classifies where the system is deployed. Matched with
// MatchFirst, defaulting to general commercial use.
var DeploymentContexts = &Taxonomy{
	Name:    "deployment_context",
	Default: "General commercial use",
	Entries: []Entry{
		{Label: "In-vehicle system", Keywords: []string{"vehicle", "car", "automotive", "in-car"}},
		{Label: "Healthcare facility", Keywords: []string{"hospital", "clinic", "medical facility", "healthcare"}},
		{Label: "Workplace", Keywords: []string{"workplace", "office", "work environment", "employee"}},
		{Label: "Public space", Keywords: []string{"public", "street", "outdoor", "public area"}},
		{Label: "Educational institution", Keywords: []string{"school", "university", "classroom", "campus"}},
		{Label: "Border crossing", Keywords: []string{"border", "airport", "customs", "immigration"}},
		{Label: "Law enforcement", Keywords: []string{"police station", "law enforcement", "investigation"}},
		{Label: "Court/Legal", Keywords: []string{"court", "courthouse", "legal proceeding"}},
		{Label: "Online service", Keywords: []string{"online", "web", "app", "digital", "cloud"}},
		{Label: "Critical infrastructure", Keywords: []string{"power plant", "water treatment", "infrastructure"}},
	},
}

// UserBases classifies the primary user population. Matched with MatchFirst,
// defaulting to the general public.
var UserBases = &Taxonomy{
	Name:    "user_base",
	Default: "General public",
	Entries: []Entry{
		{Label: "Vehicle drivers and passengers", Keywords: []string{"driver", "passenger", "vehicle occupant"}},
		{Label: "Patients and healthcare providers", Keywords: []string{"patient", "doctor", "nurse", "clinician", "healthcare provider"}},
		{Label: "General consumers", Keywords: []string{"customer", "consumer", "user", "client"}},
		{Label: "Employees and workers", Keywords: []string{"employee", "worker", "staff", "personnel"}},
		{Label: "Students and educators", Keywords: []string{"student", "teacher", "educator", "learner"}},
		{Label: "Law enforcement officers", Keywords: []string{"police", "officer", "law enforcement"}},
		{Label: "Border control agents", Keywords: []string{"border agent", "customs officer", "immigration officer"}},
		{Label: "Judges and legal professionals", Keywords: []string{"judge", "lawyer", "attorney", "legal professional"}},
		{Label: "General public", Keywords: []string{"public", "citizen", "resident", "population"}},
	},
}
