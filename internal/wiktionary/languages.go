package wiktionary

import (
	"encoding/json"
	"fmt"
)

// Language identifies the language of a language section by its lowercase
// code. The zero value means "no language".
type Language string

const (
	LanguageNone Language = ""
	LanguageDe   Language = "de"
	LanguageEn   Language = "en"
)

// LanguageFromName returns the language whose German name is exactly name.
func LanguageFromName(name string) (Language, bool) {
	l, ok := languageNames[name]
	return l, ok
}

// Valid reports whether l is a known language code.
func (l Language) Valid() bool {
	_, ok := knownLanguages[l]
	return ok
}

func (l *Language) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s != "" && !Language(s).Valid() {
		return fmt.Errorf("unknown language %q", s)
	}
	*l = Language(s)
	return nil
}

var knownLanguages = func() map[Language]struct{} {
	m := make(map[Language]struct{}, len(languageNames))
	for _, l := range languageNames {
		m[l] = struct{}{}
	}
	return m
}()

var languageNames = map[string]Language{
	"(Neu-)Awarisch":            "av",
	"(Neu-)Griechisch":          "el",
	"(Schottisch-)Gälisch":      "gd",
	"Abchasisch":                "ab",
	"Afar":                      "aa",
	"Afrikaans":                 "af",
	"Akan":                      "ak",
	"Albanisch":                 "sq",
	"Altkirchenslawisch":        "cu",
	"Amharisch":                 "am",
	"Anishinabe":                "oj",
	"Arabisch":                  "ar",
	"Aragonesisch":              "an",
	"Aramäisch":                 "arc",
	"Armenisch":                 "hy",
	"Aserbaidschanisch":         "az",
	"Assamesisch/Assami":        "as",
	"Avestisch":                 "ae",
	"Aymara":                    "ay",
	"Bambara":                   "bm",
	"Banyumasan":                "by",
	"Baschkirisch":              "ba",
	"Baskisch":                  "eu",
	"Bengalisch":                "bn",
	"Bihari":                    "bh",
	"Birmanisch":                "my",
	"Bislama":                   "bi",
	"Bokmål":                    "nb",
	"Bosnisch":                  "bs",
	"Bretonisch":                "br",
	"Bulgarisch":                "bg",
	"Chamorro":                  "ch",
	"Chichewa":                  "ny",
	"Chinesisch":                "zh",
	"Cree":                      "cr",
	"Deutsch":                   "de",
	"Dhivehi":                   "dv",
	"Dzongkha":                  "dz",
	"Dänisch":                   "da",
	"Englisch":                  "en",
	"Esperanto":                 "eo",
	"Estnisch":                  "et",
	"Ewe":                       "ee",
	"Fidschi":                   "fj",
	"Finnisch":                  "fi",
	"Französisch":               "fr",
	"Friesisch":                 "fy",
	"Fula":                      "ff",
	"Färöisch":                  "fo",
	"Galicisch":                 "gl",
	"Ganda":                     "lg",
	"Georgisch":                 "ka",
	"Guaraní":                   "gn",
	"Gujarati":                  "gu",
	"Haitianisch":               "ht",
	"Hausa":                     "ha",
	"Hebräisch":                 "he",
	"Herero":                    "hz",
	"Hindi":                     "hi",
	"Hiri Motu":                 "ho",
	"Indonesisch":               "id",
	"Interlingua":               "ia",
	"Interlingue":               "ie",
	"Inuktitut":                 "iu",
	"Inupiaq":                   "ik",
	"Irisch":                    "ga",
	"Isländisch":                "is",
	"Italienisch":               "it",
	"Japanisch":                 "ja",
	"Javanisch":                 "jv",
	"Jiddisch":                  "yi",
	"Kalaallisut; Grönländisch": "kl",
	"Kannada":                   "kn",
	"Kanuri":                    "kr",
	"Kasachisch":                "kk",
	"Kaschmirisch":              "ks",
	"Katalanisch":               "ca",
	"Khmer":                     "km",
	"Kikuyu":                    "ki",
	"Kiluba (Luba-Katanga)":     "lu",
	"Kinyarwanda":               "rw",
	"Kirgisisch":                "ky",
	"Kirundi":                   "rn",
	"Komi":                      "kv",
	"Kongo, Kikongo":            "kg",
	"Koreanisch":                "ko",
	"Kornisch":                  "kw",
	"Korsisch":                  "co",
	"Kroatisch":                 "hr",
	"Kuanyama":                  "kj",
	"Kurdisch":                  "ku",
	"Laotisch":                  "lo",
	"Lateinisch":                "la",
	"Lettisch":                  "lv",
	"Limburgisch":               "li",
	"Lingala":                   "ln",
	"Litauisch":                 "lt",
	"Luxemburgisch":             "lb",
	"Madagassisch":              "mg",
	"Malaiisch":                 "ms",
	"Malayalam":                 "ml",
	"Maltesisch":                "mt",
	"Manx":                      "gv",
	"Maori":                     "mi",
	"Marathi":                   "mr",
	"Marshallesisch":            "mh",
	"Mazedonisch":               "mk",
	"Mongolisch":                "mn",
	"Nauruisch":                 "na",
	"Navajo":                    "nv",
	"Ndonga":                    "ng",
	"Nepalesisch":               "ne",
	"Niederländisch":            "nl",
	"Nord-Ndebele":              "nd",
	"Norwegisch":                "no",
	"Nynorsk (Neunorwegisch)":   "nn",
	"Okzitanisch":               "oc",
	"Oriya":                     "or",
	"Oromo":                     "om",
	"Ossetisch":                 "os",
	"Pali":                      "pi",
	"Pandschabi":                "pa",
	"Paschtu":                   "ps",
	"Persisch":                  "fa",
	"Polnisch":                  "pl",
	"Portugiesisch":             "pt",
	"Quechua":                   "qu",
	"Rumänisch":                 "ro",
	"Russisch":                  "ru",
	"Rätoromanisch":             "rm",
	"Samisch":                   "se",
	"Samoanisch":                "sm",
	"Sango":                     "sg",
	"Sanskrit":                  "sa",
	"Sardisch":                  "sc",
	"Schwedisch":                "sv",
	"Serbisch":                  "sr",
	"Sesotho":                   "st",
	"Setswana":                  "tn",
	"Shona":                     "sn",
	"Sindhi":                    "sd",
	"Singhalesisch":             "si",
	"Siswati":                   "ss",
	"Slowakisch":                "sk",
	"Slowenisch":                "sl",
	"Somali":                    "so",
	"Spanisch":                  "es",
	"Sundanesisch":              "su",
	"Swahili":                   "sw",
	"Süd-Ndebele":               "nr",
	"Tadschikisch":              "tg",
	"Tagalog":                   "tl",
	"Tahitianisch":              "ty",
	"Tamilisch":                 "ta",
	"Tatarisch":                 "tt",
	"Telugu":                    "te",
	"Thailändisch":              "th",
	"Tibetisch":                 "bo",
	"Tigrinya":                  "ti",
	"Tongaisch":                 "to",
	"Tschechisch":               "cs",
	"Tschetschenisch":           "ce",
	"Tschuwaschisch":            "cv",
	"Tsonga":                    "ts",
	"Turkmenisch":               "tk",
	"Twi":                       "tw",
	"Türkisch":                  "tr",
	"Uigurisch":                 "ug",
	"Ukrainisch":                "uk",
	"Ungarisch":                 "hu",
	"Urdu":                      "ur",
	"Usbekisch":                 "uz",
	"Venda":                     "ve",
	"Vietnamesisch":             "vi",
	"Volapük":                   "vo",
	"Walisisch":                 "cy",
	"Wallonisch":                "wa",
	"Weißrussisch":              "be",
	"Wolof":                     "wo",
	"Yi":                        "ii",
	"Yoruba":                    "yo",
	"Zhuang":                    "za",
	"isiXhosa":                  "xh",
	"isiZulu":                   "zu",
}
