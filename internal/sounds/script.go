package sounds

// BeeScript is one slot's generated assets: the narration text spoken by
// the TTS engine and the fundamental frequency of its synthesized buzz.
// The [[slnc N]] tags are pause markup understood by the macOS `say`
// engine; other engines read past them harmlessly.
type BeeScript struct {
	Key       string
	Label     string
	BuzzHz    float64
	Narration string
}

// Scripts lists the eight mural bees in slot order.
var Scripts = []BeeScript{
	{"bee1", "Honeybee", 230,
		"Honeybees are famous for making honey from flower nectar. [[slnc 700]] " +
			"They live together in large hives with one queen and thousands of workers. [[slnc 700]] " +
			"You can find them in gardens, orchards, and meadows all over the world."},
	{"bee2", "Bumblebee", 150,
		"Bumblebees are big, fuzzy bees with a deep buzzing sound. [[slnc 700]] " +
			"They shiver their flight muscles to stay warm, so they can fly on cool days. [[slnc 700]] " +
			"They nest in small holes in the ground, often in old mouse burrows."},
	{"bee3", "Carpenter bee", 170,
		"Carpenter bees are large bees that drill round tunnels into wood. [[slnc 700]] " +
			"They do not eat the wood, they only build their nests inside it. [[slnc 700]] " +
			"Look for them around fences, decks, and dead branches in warm places."},
	{"bee4", "Mason bee", 260,
		"Mason bees build their nests from mud, like tiny bricklayers. [[slnc 700]] " +
			"They are gentle bees that almost never sting. [[slnc 700]] " +
			"Gardeners love them because one mason bee can pollinate as much as a hundred honeybees."},
	{"bee5", "Leafcutter bee", 280,
		"Leafcutter bees cut neat circles out of leaves with their jaws. [[slnc 700]] " +
			"They roll the leaf pieces into little tubes to line their nests. [[slnc 700]] " +
			"You can spot their work as round holes along the edges of rose leaves."},
	{"bee6", "Sweat bee", 320,
		"Sweat bees are small bees that sometimes land on people to sip sweat. [[slnc 700]] " +
			"Many of them shine in beautiful metallic green and blue colors. [[slnc 700]] " +
			"They nest in bare soil in gardens, fields, and along paths."},
	{"bee7", "Mining bee", 200,
		"Mining bees dig little tunnels in the ground to lay their eggs. [[slnc 700]] " +
			"Each female digs her own burrow, but many like to dig close together. [[slnc 700]] " +
			"In spring you can see their small mounds of earth on lawns and sandy banks."},
	{"bee8", "Cuckoo bee", 350,
		"Cuckoo bees sneak their eggs into the nests of other bees. [[slnc 700]] " +
			"Because other bees gather food for their young, cuckoo bees carry no pollen baskets. [[slnc 700]] " +
			"They can be found wherever their host bees live, quietly waiting nearby."},
}

// Quiz system clips generated alongside the narrations.
const (
	QuizWelcomeText = "Welcome to the Bee Quiz. [[slnc 700]] " +
		"We will play different bee sounds. [[slnc 700]] " +
		"You will get ten seconds to find the correct bee for the sound you hear. [[slnc 700]] " +
		"Press and hold the Quiz button for two seconds if you are ready to go. [[slnc 900]] " +
		"To abort the quiz at any time press the ABORT button. [[slnc 900]]"

	QuizReadyText    = "Great. Let's start the quiz.[[slnc 900]]"
	CorrectText      = "That is correct."
	IncorrectText    = "That is not correct."
	QuizCompleteText = "Quiz complete. Thanks for playing."
	QuizAbortText    = "Quiz aborted."
)
