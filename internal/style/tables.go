package style

// Genres maps genre names.
var Genres = NewTable("genre", map[string]string{
	"pop":               "pop",
	"rock":              "rock",
	"pop rock":          "pop rock",
	"eletrônica":        "electronic",
	"música eletrônica": "electronic",
	"eletrônico":        "electronic",
	"rap":               "rap",
	"hip hop":           "hip-hop",
	"trap":              "trap",
	"funk":              "brazilian funk",
	"funk carioca":      "baile funk",
	"samba":             "samba",
	"pagode":            "pagode",
	"bossa nova":        "bossa nova",
	"mpb":               "mpb, brazilian popular music",
	"sertanejo":         "sertanejo, brazilian country",
	"forró":             "forro",
	"piseiro":           "piseiro",
	"axé":               "axe",
	"gospel":            "gospel",
	"reggae":            "reggae",
	"jazz":              "jazz",
	"blues":             "blues",
	"clássica":          "classical",
	"música clássica":   "classical",
	"balada":            "ballad",
	"romântica":         "romantic ballad",
	"indie":             "indie",
	"metal":             "metal",
	"lo-fi":             "lo-fi",
})

// Emotions maps emotion words.
var Emotions = NewTable("emotion", map[string]string{
	"saudade":    "melancholic",
	"melancolia": "melancholic",
	"tristeza":   "sad",
	"alegria":    "joyful",
	"felicidade": "happy",
	"amor":       "romantic",
	"romance":    "romantic",
	"paixão":     "passionate",
	"raiva":      "angry",
	"esperança":  "hopeful",
	"nostalgia":  "nostalgic",
	"euforia":    "euphoric",
	"calma":      "calm",
	"paz":        "peaceful",
	"medo":       "dark",
	"coragem":    "empowering",
	"superação":  "triumphant",
	"solidão":    "lonely",
	"desejo":     "sensual",
	"gratidão":   "uplifting",
	"ansiedade":  "tense",
	"fé":         "spiritual",
})

// Voices maps the voice type enum.
var Voices = NewTable("voice", map[string]string{
	"feminina":     "female vocals",
	"masculina":    "male vocals",
	"dueto":        "duet vocals",
	"infantil":     "child vocals",
	"coral":        "choir vocals",
	"andrógina":    "androgynous vocals",
	"instrumental": "no vocals, instrumental",
})

// Formations maps the voice formation enum.
var Formations = NewTable("formation", map[string]string{
	"solo":  "solo",
	"dueto": "duet",
	"trio":  "trio",
	"banda": "full band",
	"coral": "choir",
	"grupo": "vocal group",
})

// Tempos maps the tempo enum.
var Tempos = NewTable("tempo", map[string]string{
	"lento":        "slow",
	"médio":        "mid-tempo",
	"moderado":     "moderate",
	"rápido":       "fast",
	"muito rápido": "uptempo, high energy",
	"variável":     "dynamic tempo",
})

// Instruments maps instrument names.
var Instruments = NewTable("instrument", map[string]string{
	"violão":       "acoustic guitar",
	"guitarra":     "electric guitar",
	"bateria":      "drums",
	"baixo":        "bass",
	"teclado":      "keys",
	"piano":        "piano",
	"sanfona":      "accordion",
	"acordeão":     "accordion",
	"zabumba":      "zabumba",
	"triângulo":    "triangle",
	"violino":      "violin",
	"cordas":       "strings",
	"metais":       "brass",
	"sintetizador": "synth",
	"flauta":       "flute",
	"saxofone":     "saxophone",
	"cavaquinho":   "cavaquinho",
	"percussão":    "percussion",
	"pandeiro":     "pandeiro",
	"808":          "808 bass",
	"beat":         "beat",
})
