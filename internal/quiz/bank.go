package quiz

// Question bank. Questions are static data compiled into the binary;
// ids stay stable across releases because stored results reference them.

var questionBank = map[string]map[string][]Question{
	"vocabulary": {
		"beginner": {
			{
				ID:            "vocab_001",
				Question:      "What does 'Muraho' mean in English?",
				Options:       []string{"Hello", "Goodbye", "Thank you", "Please"},
				CorrectAnswer: 0,
				Explanation:   "'Muraho' is a common greeting meaning 'Hello' in Kinyarwanda.",
			},
			{
				ID:            "vocab_002",
				Question:      "How do you say 'Thank you' in Kinyarwanda?",
				Options:       []string{"Murakoze", "Muraho", "Murakomeye", "Mwaramutse"},
				CorrectAnswer: 0,
				Explanation:   "'Murakoze' is the standard way to say 'Thank you' in Kinyarwanda.",
			},
			{
				ID:            "vocab_003",
				Question:      "What is the Kinyarwanda word for 'water'?",
				Options:       []string{"Ubuki", "Amazi", "Amata", "Ikawa"},
				CorrectAnswer: 1,
				Explanation:   "'Amazi' means water in Kinyarwanda.",
			},
			{
				ID:            "vocab_004",
				Question:      "How do you say 'Good morning' in Kinyarwanda?",
				Options:       []string{"Mwiriwe", "Mwaramutse", "Ijoro ryiza", "Umunsi mwiza"},
				CorrectAnswer: 1,
				Explanation:   "'Mwaramutse' is used to greet someone in the morning.",
			},
			{
				ID:            "vocab_005",
				Question:      "What does 'Amakuru' mean?",
				Options:       []string{"Food", "News/How are things", "School", "Money"},
				CorrectAnswer: 1,
				Explanation:   "'Amakuru' means 'news' or is used to ask 'how are things?'",
			},
			{
				ID:            "vocab_006",
				Question:      "What is the Kinyarwanda word for 'book'?",
				Options:       []string{"Igitabo", "Ikaramu", "Ikawa", "Igikoni"},
				CorrectAnswer: 0,
				Explanation:   "'Igitabo' means book in Kinyarwanda.",
			},
			{
				ID:            "vocab_007",
				Question:      "How do you say 'house' in Kinyarwanda?",
				Options:       []string{"Inzu", "Ishuri", "Isoko", "Ikigo"},
				CorrectAnswer: 0,
				Explanation:   "'Inzu' means house or home in Kinyarwanda.",
			},
		},
		"intermediate": {
			{
				ID:            "vocab_101",
				Question:      "What does 'Umuryango' mean?",
				Options:       []string{"Village", "Family", "Friend", "Neighbor"},
				CorrectAnswer: 1,
				Explanation:   "'Umuryango' means family in Kinyarwanda.",
			},
			{
				ID:            "vocab_102",
				Question:      "How do you say 'I have five children' in Kinyarwanda?",
				Options:       []string{"Mfite abaana batanu", "Ndashaka abaana", "Abaana ni beza", "Mfite inzu nini"},
				CorrectAnswer: 0,
				Explanation:   "'Mfite abaana batanu' means 'I have five children'.",
			},
			{
				ID:            "vocab_103",
				Question:      "What is 'Imibare'?",
				Options:       []string{"Letters", "Numbers", "Colors", "Animals"},
				CorrectAnswer: 1,
				Explanation:   "'Imibare' means numbers in Kinyarwanda.",
			},
		},
		"advanced": {
			{
				ID:            "vocab_201",
				Question:      "What does 'Ururimi' mean?",
				Options:       []string{"Language/Tongue", "Culture", "Country", "History"},
				CorrectAnswer: 0,
				Explanation:   "'Ururimi' means language or tongue in Kinyarwanda.",
			},
			{
				ID:            "vocab_202",
				Question:      "What does 'Gerageza kuvuga' mean?",
				Options:       []string{"Stop talking", "Try to say", "Listen carefully", "Write it down"},
				CorrectAnswer: 1,
				Explanation:   "'Gerageza kuvuga' means 'try to say' and is used to prompt pronunciation practice.",
			},
		},
	},
	"grammar": {
		"beginner": {
			{
				ID:            "gram_001",
				Question:      "In Kinyarwanda, nouns are grouped into:",
				Options:       []string{"Genders", "Noun classes", "Cases", "Tenses"},
				CorrectAnswer: 1,
				Explanation:   "Kinyarwanda is a Bantu language and organizes nouns into noun classes.",
			},
			{
				ID:            "gram_002",
				Question:      "The prefix 'aba-' in 'abaana' (children) marks:",
				Options:       []string{"Past tense", "Plural people", "A question", "Possession"},
				CorrectAnswer: 1,
				Explanation:   "'aba-' is the class-2 plural prefix used for people.",
			},
			{
				ID:            "gram_003",
				Question:      "Which word order does a basic Kinyarwanda sentence follow?",
				Options:       []string{"Subject-Verb-Object", "Verb-Subject-Object", "Object-Verb-Subject", "Free order"},
				CorrectAnswer: 0,
				Explanation:   "Basic Kinyarwanda sentences follow subject-verb-object order.",
			},
		},
		"intermediate": {
			{
				ID:            "gram_101",
				Question:      "In 'Mfite' (I have), the 'M-' marks:",
				Options:       []string{"The object", "The first-person subject", "Negation", "Future tense"},
				CorrectAnswer: 1,
				Explanation:   "The subject prefix 'n-/m-' marks the first person singular.",
			},
		},
		"advanced": {
			{
				ID:            "gram_201",
				Question:      "Kinyarwanda verbs agree with their subject through:",
				Options:       []string{"Suffixes only", "A subject prefix", "Word order alone", "Separate pronouns"},
				CorrectAnswer: 1,
				Explanation:   "Agreement is expressed with a subject prefix attached to the verb stem.",
			},
		},
	},
	"culture": {
		"beginner": {
			{
				ID:            "cult_001",
				Question:      "Kinyarwanda is the national language of which country?",
				Options:       []string{"Kenya", "Rwanda", "Tanzania", "Uganda"},
				CorrectAnswer: 1,
				Explanation:   "Kinyarwanda is the national language of Rwanda.",
			},
			{
				ID:            "cult_002",
				Question:      "'Mwaramutse' is used at which time of day?",
				Options:       []string{"Morning", "Afternoon", "Evening", "Night"},
				CorrectAnswer: 0,
				Explanation:   "'Mwaramutse' is the morning greeting; 'Mwiriwe' is used later in the day.",
			},
		},
		"intermediate": {
			{
				ID:            "cult_101",
				Question:      "'Umuganda' refers to:",
				Options:       []string{"A wedding ceremony", "Monthly community work", "A harvest festival", "A traditional dance"},
				CorrectAnswer: 1,
				Explanation:   "'Umuganda' is the monthly community-work day held across Rwanda.",
			},
		},
		"advanced": {
			{
				ID:            "cult_201",
				Question:      "Traditional Rwandan dance is called:",
				Options:       []string{"Intore", "Ingoma", "Umushagiriro", "All of these"},
				CorrectAnswer: 3,
				Explanation:   "Intore, Ingoma and Umushagiriro are all parts of traditional Rwandan dance.",
			},
		},
	},
}
