package content

// Stage3 is the Tower of Turning Loops: for statements as multiple choice.
func Stage3() Stage {
	return Stage{
		ID:    3,
		Name:  "Tower of Turning Loops",
		Emoji: "🌀",
		Intro: `This is the Tower of Turning Loops, where everyone ends up circling the same staircase.
Teach the lost bug monsters how many times to repeat with the for spell.

Pick the code that looks right out of the three choices.`,
		ClearLine: "Minaria: You've even mastered the magic of repetition. Truly amazing. That's all the basic spells taken care of.",
		Questions: []Question{
			{
				Text: "You want to show the numbers 1 through 3 in order. Which code is the most straightforward?",
				Choices: []string{
					"for i in range(1, 4):\n    print(i)",
					"for i in [1..3]:\n    print(i)",
					"for i in range(3):\nprint(i+1)",
				},
				CorrectIndex: 0,
				Hint:         "The shape is range(start, one past the end). For 1 through 3, that's range(1, 4).",
				Explain:      "With for i in range(1, 4): the loop runs with i set to 1, 2, then 3.",
				Monster: Monster{
					Name:  "Loop Slime",
					Emoji: "🌀",
					Desc:  "A slime going round and round the same staircase. Help it climb one step at a time with the for i in range(1, 4): loop.",
				},
			},
			{
				Text: "fruits = [\"apple\", \"banana\"] and you want to show each one. Which code is right?",
				Choices: []string{
					"for fruit in fruits:\n    print(fruit)",
					"for fruits in fruit:\n    print(fruit)",
					"for i in range(fruits):\n    print(fruits[i])",
				},
				CorrectIndex: 0,
				Hint:         "To take items out of a list one by one, the shape for item in list: works.",
				Explain:      "With for fruit in fruits: each item of fruits is taken out in turn and placed in fruit.",
				Monster: Monster{
					Name:  "List Caterpillar",
					Emoji: "🐛",
					Desc:  "A caterpillar made of apple and banana segments. Count its segments one by one with the for fruit in fruits: loop and it relaxes.",
				},
			},
			{
				Text: "You want to show 'Hello' exactly 3 times. Which code is the clearest?",
				Choices: []string{
					"for i in range(3):\n    print(\"Hello\")",
					"for i in range(1, 3):\n    print(\"Hello\")",
					"for \"Hello\" in range(3):\n    print(\"Hello\")",
				},
				CorrectIndex: 0,
				Hint:         "range(3) goes round 3 times: 0, 1, 2. Handy when you just want a number of repeats.",
				Explain:      "With for i in range(3): the loop runs 3 times, and print(\"Hello\") runs each time.",
				Monster: Monster{
					Name:  "Count Clock",
					Emoji: "⏰",
					Desc:  "A clock monster that loves counting its own turns. Ring it exactly 3 times with the for i in range(3): loop.",
				},
			},
		},
	}
}
