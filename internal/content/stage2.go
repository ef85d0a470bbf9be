package content

// Stage2 is the Slumberwood Path: if statements as multiple choice.
func Stage2() Stage {
	return Stage{
		ID:    2,
		Name:  "Slumberwood Path",
		Emoji: "🌿",
		Intro: `A little deeper in lies the Slumberwood Path.
The trees sway back and forth, as if they can't decide whether to go or stay.

Here you'll practice the if spell.
It's the fork-in-the-road magic that changes what happens depending on a condition.
Pick the answer that looks right out of the three choices.`,
		ClearLine: "Minaria: You really understand the magic of changing course on a condition now. That's wonderful.",
		Questions: []Question{
			{
				Text: "Which code comes closest to 'if it is night, show Good night'?",
				Choices: []string{
					"if is_night:\n    print(\"Good night\")",
					"print(\"Good night\")\nif is_night",
					"is_night = print(\"Good night\")",
				},
				CorrectIndex: 0,
				Hint:         "The if line ends with a colon, and the line below it is indented.",
				Explain:      "Write if condition: and put the action to run, like print, indented on the next line.",
				Monster: Monster{
					Name:  "Flag Firefly",
					Emoji: "✨",
					Desc:  "A firefly that could glow but keeps wondering whether now is the right time. Write the night-time condition for it, like if is_night:, and it lights up with confidence.",
				},
			},
			{
				Text: "You want to show 'Eat lunch' only when is_hungry is True. Which code is right?",
				Choices: []string{
					"if is_hungry == True:\n    print(\"Eat lunch\")",
					"if is_hungry = True:\n    print(\"Eat lunch\")",
					"if \"is_hungry\":\n    print(\"Eat lunch\")",
				},
				CorrectIndex: 0,
				Hint:         "== asks 'are the two sides equal?'. It means something different from =.",
				Explain:      "Writing if is_hungry == True: runs the body only while is_hungry is True.",
				Monster: Monster{
					Name:  "True Bear & False Rabbit",
					Emoji: "🐻",
					Desc:  "A bear who loves True and a rabbit who loves False. When the condition is True, the bear comes out looking delighted.",
				},
			},
			{
				Text: "You want to show 'Great!' only when score is 80 or higher. Which code is correct?",
				Choices: []string{
					"if score > 80:\n    print(\"Great!\")",
					"if score >= 80:\n    print(\"Great!\")",
					"if 80 <= score:\nprint(\"Great!\")",
				},
				CorrectIndex: 1,
				Hint:         "If exactly 80 points should count too, use >=.",
				Explain:      "With if score >= 80: the message 'Great!' appears for scores of 80 and above.",
				Monster: Monster{
					Name:  "Door Guardian",
					Emoji: "🚪",
					Desc:  "A doorkeeper who only lets through those who meet the condition. Write it like score >= 80 and it faithfully lets the hard workers pass.",
				},
			},
		},
	}
}
