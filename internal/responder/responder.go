package responder

import "strings"

// Reply is a canned bilingual response. Translation is empty when the
// matched rule carries none.
type Reply struct {
	Text        string
	Translation string
}

type rule struct {
	triggers    []string
	response    string
	translation string
}

type group struct {
	name  string
	rules []rule
}

// Responder maps inbound text to a canned Kinyarwanda-learning response.
// The table is built once and never mutated.
type Responder struct {
	groups   []group
	fallback Reply
}

// New builds the responder with the standard lesson table. Groups are
// scanned in declared order and the first matching trigger wins, so rule
// placement is load-bearing.
func New() *Responder {
	return &Responder{
		groups: []group{
			{
				name: "greetings",
				rules: []rule{
					{
						triggers:    []string{"muraho", "mwaramutse", "mwiriwe", "hello", "hi"},
						response:    "Mwaramutse! Witwa nde? Ndashaka kugufasha kwiga Ikinyarwanda! 🇷🇼",
						translation: "Good morning! What's your name? I want to help you learn Kinyarwanda!",
					},
				},
			},
			{
				name: "basics",
				rules: []rule{
					{
						triggers:    []string{"amakuru", "bite", "how are you"},
						response:    "Ni meza, murakoze! Wowe ni gute? Ikinyarwanda ni ururimi rwiza cyane!",
						translation: "I'm fine, thank you! How about you? Kinyarwanda is a very beautiful language!",
					},
					{
						triggers:    []string{"murakoze", "asante", "thank you"},
						response:    "Ntacyo banze! Komeza kwiga! Ubu reka tubane ibindi magambo y'ingenzi.",
						translation: "You're welcome! Keep learning! Now let's learn other important words.",
					},
				},
			},
			{
				name: "lessons",
				rules: []rule{
					{
						triggers: []string{"family", "umuryango", "familia"},
						response: "Umuryango (Family):\n• Papa - Father\n• Mama - Mother\n• Mwana - Child\n• Mukuru - Elder\n• Muto - Younger\n\n" +
							"Gerageza kuvuga: \"Umuryango wanjye ni mwiza\" (My family is good)",
						translation: "Family vocabulary with pronunciation practice",
					},
					{
						triggers: []string{"numbers", "imibare", "numero"},
						response: "Imibare (Numbers):\n• 1 - rimwe\n• 2 - kabiri\n• 3 - gatatu\n• 4 - kane\n• 5 - gatanu\n\n" +
							"Gerageza kuvuga: \"Mfite abaana batanu\" (I have five children)",
						translation: "Numbers 1-5 with example sentence",
					},
				},
			},
			{
				name: "help",
				rules: []rule{
					{
						triggers: []string{"help", "ubufasha", "ayuda"},
						response: "Nabafasha gute mu kwiga Ikinyarwanda? 🤔\n\n📚 Vuga \"lessons\" - Amasomo\n👨‍👩‍👧‍👦 Vuga \"family\" - Umuryango\n" +
							"🔢 Vuga \"numbers\" - Imibare\n🗣️ Vuga \"pronunciation\" - Imvugo\n\nCyangwa usabe icyari cyose ukunda!",
						translation: "How can I help you learn Kinyarwanda? Say \"lessons\", \"family\", \"numbers\", \"pronunciation\", or ask anything!",
					},
				},
			},
		},
		fallback: Reply{
			Text:        "Ndashaka kugufasha kwiga Ikinyarwanda! Vuga \"help\" kugira ngo ubone uko nawe nshobora kugufasha.",
			Translation: "I want to help you learn Kinyarwanda! Say \"help\" to see how I can assist you.",
		},
	}
}

// Respond returns the reply for the first rule whose any trigger is a
// case-insensitive substring of the input. No ranking, no scoring; ties
// break purely by table order. Always returns a value.
func (r *Responder) Respond(input string) Reply {
	text := strings.ToLower(input)

	for _, g := range r.groups {
		for _, rl := range g.rules {
			for _, trigger := range rl.triggers {
				if strings.Contains(text, trigger) {
					return Reply{Text: rl.response, Translation: rl.translation}
				}
			}
		}
	}

	return r.fallback
}
