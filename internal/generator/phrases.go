package generator

// Phrase pools for the simulated STT output, per language. The mix of Czech,
// Slovak and English mirrors the markets the demo dataset pretends to cover.

var czechPhrases = []string{
	"Dobrý den", "Jak vám mohu pomoci?", "Rozumím vašemu problému",
	"Moment prosím", "Podívám se na to", "Mám tady vaše údaje",
	"Děkuji za pochopení", "Je to vyřešeno", "Můžu vám ještě s něčím pomoci?",
	"Nashledanou", "Omlouvám se za komplikace", "Zkontrolujte prosím",
	"Máte nějaké další dotazy?", "Rád vám pomohu", "Nechte mi chvíli",
	"Ano, to je správně", "Bohužel to není možné", "Zkusíme to vyřešit",
}

var slovakPhrases = []string{
	"Dobrý deň", "Ako vám môžem pomôcť?", "Rozumiem vášmu problému",
	"Moment prosím", "Pozriem sa na to", "Mám tu vaše údaje",
	"Ďakujem za pochopenie", "Je to vyriešené", "Môžem vám ešte s niečím pomôcť?",
	"Dovidenia", "Ospravedlňujem sa za komplikácie", "Skontrolujte prosím",
	"Máte nejaké ďalšie otázky?", "Rád vám pomôžem", "Nechajte mi chvíľu",
}

var englishPhrases = []string{
	"Good day", "How can I help you?", "I understand your issue",
	"One moment please", "Let me check that", "I have your information here",
	"Thank you for your patience", "It's resolved", "Can I help with anything else?",
	"Goodbye", "I apologize for the inconvenience", "Please verify",
	"Do you have any other questions?", "I'm happy to help", "Give me a moment",
}

var customerPhrasesCS = []string{
	"Volám kvůli faktúře", "Nemůžu se přihlásit", "To nefunguje",
	"Chtěl bych se zeptat", "Kdy to bude opraveno?", "Nerozumím tomu",
	"Děkuji", "To je výborné", "Konečně", "Je to složité",
	"Můžete mi vysvětlit?", "Co mám dělat?", "Potřebuji pomoc",
}

var customerPhrasesSK = []string{
	"Volám kvôli faktúre", "Nemôžem sa prihlásiť", "To nefunguje",
	"Chcel by som sa opýtať", "Kedy to bude opravené?", "Nerozumiem tomu",
	"Ďakujem", "To je výborné", "Konečne", "Je to zložité",
}

var customerPhrasesEN = []string{
	"I'm calling about my bill", "I can't log in", "It's not working",
	"I'd like to ask", "When will this be fixed?", "I don't understand",
	"Thank you", "That's great", "Finally", "This is complicated",
}

var firstNamesCS = []string{"Jan", "Petra", "Martin", "Kateřina", "Tomáš", "Jana", "Lukáš", "Markéta"}

var lastNamesCS = []string{"Novák", "Svobodová", "Dvořák", "Černá", "Procházka", "Kučerová"}

// phrasePools returns (agent, customer) pools for a language code.
func phrasePools(language string) ([]string, []string) {
	switch language {
	case "cs":
		return czechPhrases, customerPhrasesCS
	case "sk":
		return slovakPhrases, customerPhrasesSK
	default:
		return englishPhrases, customerPhrasesEN
	}
}
