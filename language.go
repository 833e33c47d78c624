package translatable

import (
	"sort"

	"golang.org/x/text/language"
)

// Language is a two-letter ISO 639-1 code that is known to the catalog.
// The zero value is not a valid language; obtain one through ParseLanguage.
type Language struct {
	code string
}

// ParseLanguage validates code against the catalog. The match is exact and
// case-sensitive: "es" is valid, "ES" and "es-ES" are not.
func ParseLanguage(code string) (Language, error) {
	if _, ok := catalog[code]; !ok {
		return Language{}, &InvalidLanguageError{Code: code}
	}
	return Language{code: code}, nil
}

// MustParseLanguage is like ParseLanguage but panics on unknown codes.
// Intended for package-level variables and tests.
func MustParseLanguage(code string) Language {
	lang, err := ParseLanguage(code)
	if err != nil {
		panic(err)
	}
	return lang
}

// Code returns the two-letter code, e.g. "en".
func (l Language) Code() string { return l.code }

// Name returns the English name of the language.
func (l Language) Name() string { return catalog[l.code] }

// IsZero reports whether l was never validated.
func (l Language) IsZero() bool { return l.code == "" }

func (l Language) String() string { return l.code }

// Tag converts l into an x/text language tag.
func (l Language) Tag() language.Tag {
	return language.Make(l.code)
}

// MarshalText implements encoding.TextMarshaler.
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.code), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, validating the code.
func (l *Language) UnmarshalText(text []byte) error {
	lang, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = lang
	return nil
}

// Languages returns every language in the catalog ordered by code.
func Languages() []Language {
	out := make([]Language, 0, len(catalog))
	for code := range catalog {
		out = append(out, Language{code: code})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].code < out[j].code })
	return out
}

// MatchAcceptLanguage picks the first language of an HTTP Accept-Language
// header, in preference order, whose base language is in the catalog.
func MatchAcceptLanguage(header string) (Language, bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return Language{}, false
	}
	for _, tag := range tags {
		base, conf := tag.Base()
		if conf != language.Exact {
			continue
		}
		if lang, err := ParseLanguage(base.String()); err == nil {
			return lang, true
		}
	}
	return Language{}, false
}

// catalog maps ISO 639-1 codes to English names.
var catalog = map[string]string{
	"aa": "Afar",
	"ab": "Abkhazian",
	"ae": "Avestan",
	"af": "Afrikaans",
	"ak": "Akan",
	"am": "Amharic",
	"an": "Aragonese",
	"ar": "Arabic",
	"as": "Assamese",
	"av": "Avaric",
	"ay": "Aymara",
	"az": "Azerbaijani",
	"ba": "Bashkir",
	"be": "Belarusian",
	"bg": "Bulgarian",
	"bh": "Bihari languages",
	"bi": "Bislama",
	"bm": "Bambara",
	"bn": "Bengali",
	"bo": "Tibetan",
	"br": "Breton",
	"bs": "Bosnian",
	"ca": "Catalan",
	"ce": "Chechen",
	"ch": "Chamorro",
	"co": "Corsican",
	"cr": "Cree",
	"cs": "Czech",
	"cu": "Church Slavic",
	"cv": "Chuvash",
	"cy": "Welsh",
	"da": "Danish",
	"de": "German",
	"dv": "Divehi",
	"dz": "Dzongkha",
	"ee": "Ewe",
	"el": "Greek",
	"en": "English",
	"eo": "Esperanto",
	"es": "Spanish",
	"et": "Estonian",
	"eu": "Basque",
	"fa": "Persian",
	"ff": "Fulah",
	"fi": "Finnish",
	"fj": "Fijian",
	"fo": "Faroese",
	"fr": "French",
	"fy": "Western Frisian",
	"ga": "Irish",
	"gd": "Gaelic",
	"gl": "Galician",
	"gn": "Guarani",
	"gu": "Gujarati",
	"gv": "Manx",
	"ha": "Hausa",
	"he": "Hebrew",
	"hi": "Hindi",
	"ho": "Hiri Motu",
	"hr": "Croatian",
	"ht": "Haitian",
	"hu": "Hungarian",
	"hy": "Armenian",
	"hz": "Herero",
	"ia": "Interlingua",
	"id": "Indonesian",
	"ie": "Interlingue",
	"ig": "Igbo",
	"ii": "Sichuan Yi",
	"ik": "Inupiaq",
	"io": "Ido",
	"is": "Icelandic",
	"it": "Italian",
	"iu": "Inuktitut",
	"ja": "Japanese",
	"jv": "Javanese",
	"ka": "Georgian",
	"kg": "Kongo",
	"ki": "Kikuyu",
	"kj": "Kuanyama",
	"kk": "Kazakh",
	"kl": "Kalaallisut",
	"km": "Central Khmer",
	"kn": "Kannada",
	"ko": "Korean",
	"kr": "Kanuri",
	"ks": "Kashmiri",
	"ku": "Kurdish",
	"kv": "Komi",
	"kw": "Cornish",
	"ky": "Kirghiz",
	"la": "Latin",
	"lb": "Luxembourgish",
	"lg": "Ganda",
	"li": "Limburgan",
	"ln": "Lingala",
	"lo": "Lao",
	"lt": "Lithuanian",
	"lu": "Luba-Katanga",
	"lv": "Latvian",
	"mg": "Malagasy",
	"mh": "Marshallese",
	"mi": "Maori",
	"mk": "Macedonian",
	"ml": "Malayalam",
	"mn": "Mongolian",
	"mr": "Marathi",
	"ms": "Malay",
	"mt": "Maltese",
	"my": "Burmese",
	"na": "Nauru",
	"nb": "Norwegian Bokmål",
	"nd": "North Ndebele",
	"ne": "Nepali",
	"ng": "Ndonga",
	"nl": "Dutch",
	"nn": "Norwegian Nynorsk",
	"no": "Norwegian",
	"nr": "South Ndebele",
	"nv": "Navajo",
	"ny": "Chichewa",
	"oc": "Occitan",
	"oj": "Ojibwa",
	"om": "Oromo",
	"or": "Oriya",
	"os": "Ossetian",
	"pa": "Punjabi",
	"pi": "Pali",
	"pl": "Polish",
	"ps": "Pashto",
	"pt": "Portuguese",
	"qu": "Quechua",
	"rm": "Romansh",
	"rn": "Rundi",
	"ro": "Romanian",
	"ru": "Russian",
	"rw": "Kinyarwanda",
	"sa": "Sanskrit",
	"sc": "Sardinian",
	"sd": "Sindhi",
	"se": "Northern Sami",
	"sg": "Sango",
	"si": "Sinhala",
	"sk": "Slovak",
	"sl": "Slovenian",
	"sm": "Samoan",
	"sn": "Shona",
	"so": "Somali",
	"sq": "Albanian",
	"sr": "Serbian",
	"ss": "Swati",
	"st": "Southern Sotho",
	"su": "Sundanese",
	"sv": "Swedish",
	"sw": "Swahili",
	"ta": "Tamil",
	"te": "Telugu",
	"tg": "Tajik",
	"th": "Thai",
	"ti": "Tigrinya",
	"tk": "Turkmen",
	"tl": "Tagalog",
	"tn": "Tswana",
	"to": "Tonga",
	"tr": "Turkish",
	"ts": "Tsonga",
	"tt": "Tatar",
	"tw": "Twi",
	"ty": "Tahitian",
	"ug": "Uighur",
	"uk": "Ukrainian",
	"ur": "Urdu",
	"uz": "Uzbek",
	"ve": "Venda",
	"vi": "Vietnamese",
	"vo": "Volapük",
	"wa": "Walloon",
	"wo": "Wolof",
	"xh": "Xhosa",
	"yi": "Yiddish",
	"yo": "Yoruba",
	"za": "Zhuang",
	"zh": "Chinese",
	"zu": "Zulu",
}
