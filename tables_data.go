package slugify

// Built-in special-mapping tables. Keys are code-point sequences, values
// are their ASCII replacements. The data is process-wide and read-only.
var (
	// Cyrillic covers the Russian letters whose canonical decomposition
	// yields no Latin base letter.
	Cyrillic = NewTable("cyrillic",
		Mapping{"Ю", "U"},
		Mapping{"Щ", "Sch"},
		Mapping{"У", "Y"},
		Mapping{"Х", "H"},
		Mapping{"Я", "Ya"},
		Mapping{"Ё", "E"},
		Mapping{"ё", "e"},
		Mapping{"я", "ya"},
		Mapping{"х", "h"},
		Mapping{"у", "y"},
		Mapping{"щ", "sch"},
		Mapping{"ю", "u"},
	)

	// German expands umlauts to their two-letter forms instead of the
	// plain base letter the normalizer would produce ("ü" -> "ue", not "u").
	German = NewTable("german",
		Mapping{"Ü", "Ue"},
		Mapping{"Ö", "Oe"},
		Mapping{"Ä", "Ae"},
		Mapping{"ä", "ae"},
		Mapping{"ö", "oe"},
		Mapping{"ü", "ue"},
	)

	// Greek covers the upsilon, chi and xi families. The first key is a
	// two-code-point sequence (U+03AB U+0301) and must win over the
	// plain "Ϋ" key; table lookup is longest-match-first for exactly
	// this reason.
	Greek = NewTable("greek",
		Mapping{"Ϋ́", "Y"}, // Ϋ with combining acute
		Mapping{"Ϋ", "Y"},       // Ϋ
		Mapping{"Ύ", "Y"},
		Mapping{"Υ", "Y"},
		Mapping{"Χ", "Ch"},
		Mapping{"χ", "ch"},
		Mapping{"Ξ", "X"},
		Mapping{"ϒ", "Y"},
		Mapping{"υ", "y"},
		Mapping{"ύ", "y"},
		Mapping{"ϋ", "y"},
		Mapping{"ΰ", "y"},
	)

	// Symbols maps emoji and common symbols to short ASCII names. The
	// normalizer consults it when TransliterateIcons is enabled; it can
	// also be applied explicitly like any other table. Keys with a
	// variation selector ("❤️") precede their base character so the full
	// sequence is consumed in one match.
	Symbols = NewTable("symbols",
		Mapping{"❤️", "love"},
		Mapping{"❤", "love"},
		Mapping{"♥", "love"},
		Mapping{"💕", "love"},
		Mapping{"😍", "love"},
		Mapping{"⭐", "star"},
		Mapping{"★", "star"},
		Mapping{"☆", "star"},
		Mapping{"✨", "sparkles"},
		Mapping{"☀", "sun"},
		Mapping{"☁", "cloud"},
		Mapping{"☂", "umbrella"},
		Mapping{"⚡", "zap"},
		Mapping{"🔥", "fire"},
		Mapping{"🚀", "rocket"},
		Mapping{"✓", "check"},
		Mapping{"✔", "check"},
		Mapping{"✗", "x"},
		Mapping{"✘", "x"},
		Mapping{"∞", "infinity"},
		Mapping{"°", "deg"},
		Mapping{"©", "c"},
		Mapping{"®", "r"},
		Mapping{"€", "eur"},
		Mapping{"£", "gbp"},
		Mapping{"¥", "jpy"},
		Mapping{"₿", "btc"},
		Mapping{"😀", "smile"},
		Mapping{"😁", "smile"},
		Mapping{"🙂", "smile"},
		Mapping{"😂", "joy"},
		Mapping{"😉", "wink"},
		Mapping{"👍", "thumbsup"},
		Mapping{"👎", "thumbsdown"},
		Mapping{"💯", "100"},
		Mapping{"🎉", "tada"},
		Mapping{"🌍", "earth"},
		Mapping{"🌎", "earth"},
		Mapping{"🌏", "earth"},
		Mapping{"🤖", "robot"},
		Mapping{"🐱", "cat"},
		Mapping{"🐶", "dog"},
		Mapping{"☕", "coffee"},
		Mapping{"🍕", "pizza"},
		Mapping{"⚽", "soccer"},
		Mapping{"🎸", "guitar"},
		Mapping{"💡", "idea"},
		Mapping{"🔒", "lock"},
		Mapping{"🔑", "key"},
		Mapping{"💰", "money"},
		Mapping{"📚", "books"},
		Mapping{"📈", "chart"},
	)
)
