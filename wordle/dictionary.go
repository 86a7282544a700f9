package wordle

// sortedDictionary is the bundled reference word list: sorted, unique,
// five letters each.
var sortedDictionary = []string{
	"abide", "about", "above", "abuse", "actor", "acute", "adapt", "admit",
	"adopt", "adult", "agent", "agree", "ahead", "alarm", "album", "alert",
	"alike", "alive", "allow", "alone", "along", "alter", "amber", "amble",
	"among", "angel", "anger", "angle", "angry", "apart", "apple", "apply",
	"arena", "argue", "arise", "armor", "arose", "array", "arrow", "aside",
	"asset", "atone", "audio", "audit", "avoid", "awake", "award", "aware",
	"badge", "baker", "basic", "basin", "beach", "began", "begin", "being",
	"below", "bench", "birth", "black", "blade", "blame", "blank", "blast",
	"blaze", "bleak", "blend", "bless", "blind", "block", "blood", "board",
	"boast", "bonus", "boost", "booth", "bound", "brain", "brake", "brand",
	"brave", "bread", "break", "breed", "brick", "bride", "brief", "bring",
	"broad", "broke", "brown", "brush", "build", "built", "cabin", "cable",
	"camel", "canal", "candy", "cargo", "carry", "carve", "catch", "cause",
	"chain", "chair", "chalk", "charm", "chart", "chase", "cheap", "check",
	"cheer", "chess", "chest", "chief", "child", "chill", "choir", "chose",
	"cider", "cigar", "civil", "claim", "clamp", "clash", "class", "clean",
	"clear", "clerk", "click", "cliff", "climb", "clock", "close", "cloth",
	"cloud", "coach", "coast", "color", "comet", "coral", "couch", "could",
	"count", "court", "cover", "crack", "craft", "crane", "crash", "crate",
	"crazy", "cream", "crime", "crisp", "cross", "crowd", "crown", "crude",
	"cruel", "crush", "curve", "cycle", "daily", "dance", "dealt", "death",
	"debut", "decay", "delay", "dense", "depth", "diary", "dirty", "donor",
	"doubt", "dozen", "draft", "drain", "drama", "dream", "dress", "drift",
	"drill", "drink", "drive", "drove", "dying", "eager", "early", "earth",
	"eight", "elbow", "elder", "elect", "empty", "enemy", "enjoy", "enter",
	"entry", "equal", "error", "essay", "event", "every", "exact", "exist",
	"extra", "faith", "false", "fancy", "fatal", "fault", "favor", "feast",
	"fence", "fever", "fiber", "field", "fifth", "fifty", "fight", "final",
	"first", "flame", "flash", "fleet", "flesh", "float", "flood", "floor",
	"flour", "fluid", "focal", "focus", "force", "forge", "forth", "forty",
	"forum", "found", "frame", "fraud", "fresh", "front", "frost", "fruit",
	"fully", "funny", "gauge", "ghost", "giant", "given", "glass", "globe",
	"glory", "glove", "going", "grace", "grade", "grain", "grand", "grant",
	"grape", "grasp", "grass", "grave", "great", "green", "greet", "grief",
	"grill", "gross", "group", "grove", "grown", "guard", "guess", "guest",
	"guide", "habit", "happy", "harsh", "haste", "heart", "heavy", "hello",
	"hence", "heron", "horse", "hotel", "house", "human", "humor", "ideal",
	"image", "imply", "index", "inner", "input", "irate", "issue", "ivory",
	"joint", "judge", "juice", "knife", "knock", "known", "label", "labor",
	"large", "laser", "later", "laugh", "layer", "learn", "lease", "least",
	"leave", "legal", "lemon", "level", "light", "limit", "liver", "local",
	"logic", "loose", "lower", "loyal", "lucky", "lunch", "magic", "major",
	"maker", "maple", "march", "match", "mayor", "medal", "media", "mercy",
	"merge", "merit", "metal", "meter", "might", "minor", "minus", "mixed",
	"model", "money", "month", "moral", "motor", "mount", "mouse", "mouth",
	"movie", "music", "naval", "nerve", "never", "newly", "night", "noble",
	"noise", "north", "novel", "nurse", "ocean", "offer", "often", "olive",
	"onion", "opera", "orbit", "order", "organ", "other", "ought", "outer",
	"owner", "paint", "panel", "paper", "party", "pause", "peace", "pearl",
	"penny", "petal", "phase", "phone", "photo", "piano", "piece", "pilot",
	"pitch", "place", "plain", "plane", "plant", "plate", "plaza", "point",
	"pound", "power", "press", "price", "pride", "prime", "print", "prior",
	"prize", "proof", "proud", "prove", "pulse", "pupil", "queen", "quick",
	"quiet", "quite", "radar", "radio", "raise", "rally", "ranch", "range",
	"rapid", "ratio", "reach", "react", "ready", "realm", "rebel", "refer",
	"reign", "relax", "reply", "rider", "ridge", "rifle", "right", "rigid",
	"risky", "rival", "river", "robot", "rocky", "roman", "rough", "round",
	"route", "royal", "rural", "salad", "scale", "scene", "scope", "score",
	"screw", "sense", "serve", "seven", "shade", "shake", "shall", "shape",
	"share", "sharp", "sheep", "sheet", "shelf", "shell", "shift", "shine",
	"shirt", "shock", "shoot", "shore", "short", "shout", "sight", "silly",
	"since", "sixty", "skill", "slate", "sleep", "slice", "slide", "slope",
	"small", "smart", "smile", "smoke", "snake", "solar", "solid", "solve",
	"sorry", "sound", "south", "space", "spare", "spark", "speak", "speed",
	"spend", "spice", "spine", "split", "spoke", "sport", "squad", "staff",
	"stage", "stain", "stake", "stand", "stare", "start", "state", "steam",
	"steel", "steep", "steer", "stick", "still", "stock", "stone", "stood",
	"store", "storm", "story", "stove", "strip", "study", "style", "sugar",
	"suite", "sunny", "super", "sweet", "swing", "sword", "table", "taken",
	"taste", "teach", "tempo", "tenth", "thank", "theme", "there", "thick",
	"thing", "think", "third", "those", "three", "throw", "tiger", "tight",
	"timer", "title", "toast", "today", "token", "total", "touch", "tough",
	"tower", "toxic", "trace", "track", "trade", "trail", "train", "trait",
	"trash", "treat", "trend", "trial", "tribe", "trick", "tried", "troop",
	"truck", "truly", "trunk", "trust", "truth", "twice", "under", "union",
	"unite", "unity", "until", "upper", "upset", "urban", "usage", "usual",
	"valid", "value", "vapor", "verse", "video", "vigor", "virus", "visit",
	"vital", "vivid", "vocal", "voice", "voter", "wagon", "waste", "watch",
	"water", "weigh", "wheat", "wheel", "where", "which", "while", "white",
	"whole", "whose", "woman", "world", "worry", "worse", "worst", "would",
	"wound", "wrist", "write", "wrong", "yield", "young", "youth",
}

// SortedDictionary returns the bundled word list in sorted order.
func SortedDictionary() []string {
	return sortedDictionary
}
