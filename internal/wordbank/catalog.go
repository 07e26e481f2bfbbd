package wordbank

import "spellbound/internal/models"

// entry builds a catalog word; length is always derived from the text.
func entry(id, text string, grade models.GradeLevel, syllables int, patterns []string, sight bool, difficulty int, definition, example string) models.Word {
	return models.Word{
		ID:              id,
		Text:            text,
		Grade:           grade,
		Length:          len(text),
		Syllables:       syllables,
		PhonicsPatterns: patterns,
		IsSightWord:     sight,
		Difficulty:      difficulty,
		Definition:      definition,
		ExampleSentence: example,
	}
}

// catalog is the built-in K-5 word list. Each grade carries twelve words
// spanning the phonics patterns used by the sampling filters.
var catalog = []models.Word{
	// Kindergarten
	entry("k1", "cat", models.GradeK, 1, []string{"CVC"}, false, 1, "A small furry pet", "The cat sat on the mat."),
	entry("k2", "dog", models.GradeK, 1, []string{"CVC"}, false, 1, "A pet that barks", "The dog likes to run."),
	entry("k3", "the", models.GradeK, 1, []string{"digraphs"}, true, 1, "Used before nouns", "The sun is bright."),
	entry("k4", "and", models.GradeK, 1, []string{"blends"}, true, 1, "Connects words together", "Mom and dad love me."),
	entry("k5", "sun", models.GradeK, 1, []string{"CVC"}, false, 1, "The star that gives us light", "The sun is yellow."),
	entry("k6", "hat", models.GradeK, 1, []string{"CVC"}, false, 1, "Something you wear on your head", "I have a red hat."),
	entry("k7", "bed", models.GradeK, 1, []string{"CVC"}, false, 1, "Where you sleep", "My bed is cozy."),
	entry("k8", "red", models.GradeK, 1, []string{"CVC"}, false, 1, "A color like apples", "The apple is red."),
	entry("k9", "big", models.GradeK, 1, []string{"CVC"}, false, 1, "Large in size", "The elephant is big."),
	entry("k10", "run", models.GradeK, 1, []string{"CVC"}, false, 1, "To move fast", "I like to run fast."),
	entry("k11", "see", models.GradeK, 1, []string{"vowel-teams"}, true, 1, "To look at", "I see a bird."),
	entry("k12", "mom", models.GradeK, 1, []string{"CVC"}, false, 1, "Your mother", "My mom is kind."),

	// Grade 1
	entry("1-1", "ship", models.Grade1, 1, []string{"digraphs"}, false, 2, "A large boat", "The ship sails on the sea."),
	entry("1-2", "chip", models.Grade1, 1, []string{"digraphs"}, false, 2, "A small piece", "I ate a chip."),
	entry("1-3", "this", models.Grade1, 1, []string{"digraphs"}, true, 2, "Points to something", "This is my book."),
	entry("1-4", "that", models.Grade1, 1, []string{"digraphs"}, true, 2, "Points to something far", "That is a tree."),
	entry("1-5", "clap", models.Grade1, 1, []string{"blends"}, false, 2, "To hit hands together", "Clap your hands!"),
	entry("1-6", "stop", models.Grade1, 1, []string{"blends"}, false, 2, "To not move", "Stop at the sign."),
	entry("1-7", "from", models.Grade1, 1, []string{"blends"}, true, 2, "Starting point", "I am from here."),
	entry("1-8", "play", models.Grade1, 1, []string{"vowel-teams"}, false, 2, "To have fun", "Let us play a game."),
	entry("1-9", "like", models.Grade1, 1, []string{"silent-e"}, true, 2, "To enjoy something", "I like ice cream."),
	entry("1-10", "make", models.Grade1, 1, []string{"silent-e"}, false, 2, "To create something", "I will make a cake."),
	entry("1-11", "came", models.Grade1, 1, []string{"silent-e"}, false, 2, "Arrived", "She came to visit."),
	entry("1-12", "home", models.Grade1, 1, []string{"silent-e"}, false, 2, "Where you live", "I love my home."),

	// Grade 2
	entry("2-1", "about", models.Grade2, 2, []string{"vowel-teams"}, true, 2, "Concerning something", "Tell me about your day."),
	entry("2-2", "black", models.Grade2, 1, []string{"blends"}, false, 2, "A dark color", "The cat is black."),
	entry("2-3", "brown", models.Grade2, 1, []string{"blends"}, false, 2, "Color of chocolate", "The dog is brown."),
	entry("2-4", "clean", models.Grade2, 1, []string{"vowel-teams", "blends"}, false, 2, "Not dirty", "Keep your room clean."),
	entry("2-5", "every", models.Grade2, 3, []string{"vowel-teams"}, true, 3, "All of something", "I brush my teeth every day."),
	entry("2-6", "green", models.Grade2, 1, []string{"vowel-teams", "blends"}, false, 2, "Color of grass", "The grass is green."),
	entry("2-7", "happy", models.Grade2, 2, []string{"CVC"}, false, 2, "Feeling joy", "I am so happy today!"),
	entry("2-8", "party", models.Grade2, 2, []string{"r-controlled"}, false, 3, "A celebration", "We had a birthday party."),
	entry("2-9", "sleep", models.Grade2, 1, []string{"vowel-teams", "blends"}, false, 2, "To rest at night", "I need to sleep."),
	entry("2-10", "water", models.Grade2, 2, []string{"r-controlled"}, false, 3, "What we drink", "I drink water every day."),
	entry("2-11", "under", models.Grade2, 2, []string{"r-controlled"}, false, 3, "Below something", "The ball is under the table."),
	entry("2-12", "which", models.Grade2, 1, []string{"digraphs"}, true, 3, "Asking about choices", "Which one do you want?"),

	// Grade 3
	entry("3-1", "animal", models.Grade3, 3, []string{"CVC"}, false, 3, "A living creature", "My favorite animal is a dog."),
	entry("3-2", "answer", models.Grade3, 2, []string{"blends"}, false, 3, "A reply to a question", "I know the answer!"),
	entry("3-3", "beautiful", models.Grade3, 4, []string{"vowel-teams"}, false, 4, "Very pretty", "The sunset is beautiful."),
	entry("3-4", "because", models.Grade3, 2, []string{"vowel-teams"}, true, 3, "For the reason that", "I am happy because I won!"),
	entry("3-5", "different", models.Grade3, 3, []string{"blends"}, false, 4, "Not the same", "We are all different."),
	entry("3-6", "favorite", models.Grade3, 3, []string{"silent-e"}, false, 3, "Most liked", "Pizza is my favorite food."),
	entry("3-7", "friend", models.Grade3, 1, []string{"blends", "vowel-teams"}, false, 3, "Someone you like", "You are my best friend."),
	entry("3-8", "important", models.Grade3, 3, []string{"blends"}, false, 4, "Very meaningful", "School is important."),
	entry("3-9", "learned", models.Grade3, 1, []string{"r-controlled", "vowel-teams"}, false, 3, "Got knowledge", "I learned to spell!"),
	entry("3-10", "probably", models.Grade3, 3, []string{"blends"}, false, 4, "Most likely", "It will probably rain."),
	entry("3-11", "together", models.Grade3, 3, []string{"digraphs"}, false, 3, "With each other", "We play together."),
	entry("3-12", "usually", models.Grade3, 4, []string{"vowel-teams"}, false, 4, "Most of the time", "I usually wake up early."),

	// Grade 4
	entry("4-1", "adventure", models.Grade4, 3, []string{"blends"}, false, 4, "An exciting journey", "We went on an adventure."),
	entry("4-2", "although", models.Grade4, 2, []string{"digraphs", "vowel-teams"}, false, 4, "Even though", "Although it rained, we played."),
	entry("4-3", "beginning", models.Grade4, 3, []string{"blends"}, false, 4, "The start", "This is just the beginning."),
	entry("4-4", "calendar", models.Grade4, 3, []string{"r-controlled"}, false, 4, "Shows days and months", "Check the calendar for the date."),
	entry("4-5", "discover", models.Grade4, 3, []string{"blends", "r-controlled"}, false, 4, "To find out", "Let us discover new things."),
	entry("4-6", "especially", models.Grade4, 4, []string{"blends"}, false, 5, "Particularly", "I love animals, especially dogs."),
	entry("4-7", "knowledge", models.Grade4, 2, []string{"digraphs", "silent-e"}, false, 5, "What you know", "Reading gives us knowledge."),
	entry("4-8", "paragraph", models.Grade4, 3, []string{"digraphs", "blends"}, false, 4, "A group of sentences", "Write a paragraph about dogs."),
	entry("4-9", "separate", models.Grade4, 3, []string{"silent-e"}, false, 4, "To divide apart", "Separate the colors."),
	entry("4-10", "through", models.Grade4, 1, []string{"digraphs", "vowel-teams"}, true, 4, "From one end to another", "Walk through the door."),
	entry("4-11", "vocabulary", models.Grade4, 5, []string{"blends"}, false, 5, "Words you know", "Build your vocabulary!"),
	entry("4-12", "whether", models.Grade4, 2, []string{"digraphs"}, false, 4, "If one thing or another", "I wonder whether it will snow."),

	// Grade 5
	entry("5-1", "accomplish", models.Grade5, 3, []string{"blends"}, false, 5, "To achieve", "You can accomplish anything."),
	entry("5-2", "appreciate", models.Grade5, 4, []string{"blends", "silent-e"}, false, 5, "To be thankful for", "I appreciate your help."),
	entry("5-3", "catastrophe", models.Grade5, 4, []string{"digraphs"}, false, 5, "A disaster", "The storm was a catastrophe."),
	entry("5-4", "conscience", models.Grade5, 2, []string{"blends", "silent-e"}, false, 5, "Sense of right and wrong", "Let your conscience guide you."),
	entry("5-5", "embarrass", models.Grade5, 3, []string{"blends"}, false, 5, "To make uncomfortable", "Do not embarrass yourself."),
	entry("5-6", "exaggerate", models.Grade5, 4, []string{"blends", "silent-e"}, false, 5, "To overstate", "Do not exaggerate the story."),
	entry("5-7", "guarantee", models.Grade5, 3, []string{"vowel-teams"}, false, 5, "A promise", "I guarantee you will love it."),
	entry("5-8", "independent", models.Grade5, 4, []string{"blends", "prefixes"}, false, 5, "On your own", "Be an independent thinker."),
	entry("5-9", "mischievous", models.Grade5, 3, []string{"blends", "suffixes"}, false, 5, "Playfully naughty", "The mischievous cat hid my socks."),
	entry("5-10", "necessary", models.Grade5, 4, []string{"blends"}, false, 5, "Needed", "Water is necessary for life."),
	entry("5-11", "recommend", models.Grade5, 3, []string{"blends"}, false, 5, "To suggest", "I recommend this book."),
	entry("5-12", "thoroughly", models.Grade5, 3, []string{"digraphs", "suffixes"}, false, 5, "Completely", "Clean your room thoroughly."),
}
