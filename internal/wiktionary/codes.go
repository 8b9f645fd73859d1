package wiktionary

// languageAdjectiveCodes are the codes whose dotted templates, for example
// {{de.}}, name a language as an adjective.
var languageAdjectiveCodes = map[string]struct{}{
	"ahd": {}, "amer": {}, "ang": {}, "ar": {}, "brit": {}, "cy": {}, "da": {}, "de": {}, "dum": {}, "el": {},
	"en": {}, "es": {}, "fa": {}, "fr": {}, "fro": {}, "frühnhd": {}, "ga": {}, "gem": {}, "gmh": {}, "gml": {},
	"goh": {}, "got": {}, "grc": {}, "hy": {}, "ine": {}, "is": {}, "it": {}, "lat": {}, "lt": {}, "md": {},
	"mhd": {}, "mlat": {}, "mlg": {}, "nds": {}, "nhd": {}, "nl": {}, "no": {}, "non": {}, "nordd": {}, "ofs": {},
	"osx": {}, "owen": {}, "pt": {}, "ru": {}, "schweiz": {}, "spätlat": {}, "sv": {}, "süddt": {}, "th": {}, "tr": {},
	"wen": {}, "österr": {},
}

// languageCodes are the templates that name a language as a noun.
var languageCodes = map[string]struct{}{
	"KA": {}, "MHA": {}, "aa": {}, "ab": {}, "abq": {}, "ace": {}, "ady": {}, "ae": {}, "aeb": {}, "af": {},
	"agf": {}, "agj": {}, "aie": {}, "ain": {}, "ajp": {}, "ak": {}, "akg": {}, "akk": {}, "akz": {}, "ale": {},
	"alp": {}, "als": {}, "alt": {}, "am": {}, "amk": {}, "amu": {}, "an": {}, "ang": {}, "apc": {}, "apw": {},
	"ar": {}, "arc": {}, "arn": {}, "arq": {}, "arw": {}, "ary": {}, "arz": {}, "as": {}, "ast": {}, "aua": {},
	"av": {}, "ay": {}, "ayl": {}, "az": {}, "azb": {}, "azj": {}, "ba": {}, "baa": {}, "bal": {}, "ban": {},
	"bar": {}, "bat": {}, "bbc": {}, "bci": {}, "bcl": {}, "bcm": {}, "be": {}, "bem": {}, "ber": {}, "bg": {},
	"bgc": {}, "bh": {}, "bhw": {}, "bi": {}, "bjn": {}, "bla": {}, "bm": {}, "bmg": {}, "bn": {}, "bnd": {},
	"bo": {}, "bpy": {}, "br": {}, "bs": {}, "bty": {}, "bua": {}, "bug": {}, "bxr": {}, "bzg": {}, "ca": {},
	"ccc": {}, "cdo": {}, "ce": {}, "ceb": {}, "cel": {}, "ch": {}, "chc": {}, "chm": {}, "cho": {}, "chp": {},
	"chr": {}, "chy": {}, "cjs": {}, "ckb": {}, "ckt": {}, "cnx": {}, "co": {}, "com": {}, "cop": {}, "cr": {},
	"crh": {}, "cro": {}, "crs": {}, "cs": {}, "csb": {}, "cu": {}, "cv": {}, "cy": {}, "da": {}, "ddn": {},
	"de": {}, "dhv": {}, "diq": {}, "dje": {}, "dlm": {}, "dng": {}, "dob": {}, "dsb": {}, "dum": {}, "dv": {},
	"dz": {}, "ee": {}, "egy": {}, "el": {}, "eml": {}, "en": {}, "enm": {}, "eo": {}, "erk": {}, "es": {},
	"et": {}, "eu": {}, "ext": {}, "fa": {}, "ff": {}, "fi": {}, "fj": {}, "fng": {}, "fo": {}, "fon": {},
	"fr": {}, "frk": {}, "frm": {}, "fro": {}, "frp": {}, "frr": {}, "frs": {}, "fry": {}, "fur": {}, "fy": {},
	"ga": {}, "gag": {}, "gan": {}, "gay": {}, "gcf": {}, "gd": {}, "gdq": {}, "gem": {}, "gez": {}, "gha": {},
	"gil": {}, "gl": {}, "glk": {}, "gmh": {}, "gml": {}, "gmw": {}, "gmy": {}, "gn": {}, "gnc": {}, "goh": {},
	"got": {}, "gr": {}, "grc": {}, "gsw": {}, "gu": {}, "gv": {}, "ha": {}, "hac": {}, "hak": {}, "haw": {},
	"he": {}, "hi": {}, "hif": {}, "hit": {}, "ho": {}, "hop": {}, "hr": {}, "hsb": {}, "ht": {}, "hu": {},
	"hy": {}, "hz": {}, "ia": {}, "iba": {}, "id": {}, "ie": {}, "ig": {}, "ii": {}, "ik": {}, "ilo": {},
	"ine": {}, "inh": {}, "io": {}, "is": {}, "ist": {}, "it": {}, "itk": {}, "itl": {}, "iu": {}, "izh": {},
	"ja": {}, "jbo": {}, "jrb": {}, "jv": {}, "ka": {}, "kaa": {}, "kab": {}, "kam": {}, "kaw": {}, "kbd": {},
	"kca": {}, "kdr": {}, "kg": {}, "khb": {}, "ki": {}, "kj": {}, "kjh": {}, "kk": {}, "kl": {}, "kla": {},
	"km": {}, "kmr": {}, "kn": {}, "ko": {}, "koi": {}, "kok": {}, "kos": {}, "kr": {}, "krc": {}, "krl": {},
	"ks": {}, "ksh": {}, "ku": {}, "kum": {}, "kv": {}, "kw": {}, "ky": {}, "kyh": {}, "la": {}, "lad": {},
	"lb": {}, "lbe": {}, "ldn": {}, "lep": {}, "lez": {}, "lg": {}, "li": {}, "lij": {}, "liv": {}, "lld": {},
	"llp": {}, "lmo": {}, "ln": {}, "lo": {}, "lou": {}, "loz": {}, "lt": {}, "ltg": {}, "lud": {}, "lus": {},
	"lv": {}, "lzz": {}, "mad": {}, "mak": {}, "mas": {}, "mdf": {}, "mfe": {}, "mg": {}, "mga": {}, "mh": {},
	"mhr": {}, "mi": {}, "mic": {}, "min": {}, "mk": {}, "ml": {}, "mn": {}, "mnc": {}, "mnk": {}, "mns": {},
	"mo": {}, "moh": {}, "mr": {}, "mrj": {}, "ms": {}, "mt": {}, "mus": {}, "mwl": {}, "my": {}, "myn": {},
	"myv": {}, "mzn": {}, "na": {}, "nah": {}, "nan": {}, "nap": {}, "naq": {}, "nb": {}, "nde": {}, "nds": {},
	"ne": {}, "new": {}, "nez": {}, "ng": {}, "ngo": {}, "nhn": {}, "nic": {}, "niu": {}, "nl": {}, "nld": {},
	"nmn": {}, "nn": {}, "no": {}, "nog": {}, "non": {}, "nov": {}, "nr": {}, "nrf": {}, "nso": {}, "nv": {},
	"ny": {}, "nyn": {}, "obt": {}, "oc": {}, "oco": {}, "odt": {}, "ofs": {}, "oj": {}, "om": {}, "ood": {},
	"or": {}, "orv": {}, "os": {}, "osc": {}, "osx": {}, "ota": {}, "owl": {}, "pa": {}, "pag": {}, "pal": {},
	"pam": {}, "pap": {}, "pcd": {}, "pdc": {}, "pdt": {}, "peo": {}, "pfl": {}, "pgn": {}, "phn": {}, "pi": {},
	"pih": {}, "pis": {}, "pl": {}, "pms": {}, "pnb": {}, "pnt": {}, "pox": {}, "pra": {}, "prg": {}, "pro": {},
	"prs": {}, "ps": {}, "pt": {}, "qka": {}, "qts": {}, "qu": {}, "raj": {}, "rap": {}, "rhg": {}, "rif": {},
	"rm": {}, "rmq": {}, "rmr": {}, "rmy": {}, "rn": {}, "ro": {}, "rom": {}, "ru": {}, "rue": {}, "rup": {},
	"rw": {}, "sa": {}, "sah": {}, "sas": {}, "sc": {}, "scn": {}, "sco": {}, "sd": {}, "se": {}, "sg": {},
	"sga": {}, "sgs": {}, "sgw": {}, "sh": {}, "shh": {}, "shi": {}, "shv": {}, "si": {}, "simple": {}, "sjn": {},
	"sk": {}, "sl": {}, "sla": {}, "sli": {}, "sm": {}, "smi": {}, "smn": {}, "sn": {}, "snk": {}, "so": {},
	"spx": {}, "sq": {}, "sqr": {}, "sqt": {}, "sr": {}, "src": {}, "srn": {}, "sro": {}, "srr": {}, "ss": {},
	"st": {}, "stq": {}, "su": {}, "suw": {}, "sux": {}, "sv": {}, "sva": {}, "sw": {}, "swb": {}, "swg": {},
	"syr": {}, "szl": {}, "ta": {}, "tay": {}, "te": {}, "tet": {}, "tg": {}, "th": {}, "ti": {}, "tig": {},
	"tk": {}, "tkl": {}, "tl": {}, "tlh": {}, "tmh": {}, "tn": {}, "tnq": {}, "to": {}, "tokipona": {}, "tox": {},
	"tpi": {}, "tpn": {}, "tpw": {}, "tr": {}, "trv": {}, "ts": {}, "tt": {}, "tum": {}, "tvk": {}, "tvl": {},
	"tw": {}, "txb": {}, "txh": {}, "ty": {}, "tyv": {}, "tzl": {}, "tzm": {}, "udm": {}, "ug": {}, "uga": {},
	"uk": {}, "umc": {}, "ur": {}, "uum": {}, "uz": {}, "ve": {}, "vec": {}, "vep": {}, "vi": {}, "vls": {},
	"vmf": {}, "vo": {}, "vot": {}, "vro": {}, "wa": {}, "war": {}, "wen": {}, "wep": {}, "wlm": {}, "wo": {},
	"wuu": {}, "wym": {}, "xaa": {}, "xal": {}, "xcl": {}, "xfa": {}, "xh": {}, "xhu": {}, "xlc": {}, "xld": {},
	"xlu": {}, "xmf": {}, "xmn": {}, "xno": {}, "xum": {}, "xur": {}, "xve": {}, "yi": {}, "yo": {}, "yua": {},
	"yue": {}, "za": {}, "zbw": {}, "zea": {}, "zen": {}, "zh": {}, "zh-cn": {}, "zh-tw": {}, "zu": {}, "zza": {},
}

// simpleMarkers are parameterless templates that map to a fixed element.
var simpleMarkers = map[string]FlowingType{
	"Komp.": FlowingComparative,
	"Part.": FlowingPastParticiple,
	"Pl.":   FlowingPlural,
	"Pl.1":  FlowingPlural1,
	"Pl.2":  FlowingPlural2,
	"Pl.3":  FlowingPlural3,
	"Pl.4":  FlowingPlural4,
	"Prät.": FlowingPreterite,
	"Sup.":  FlowingSuperlative,
	"kPl.":  FlowingNoPlural,
}
