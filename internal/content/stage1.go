package content

// Stage1 is Poyon Meadow: print and variables, taught in a
// copy-the-sample, pick-the-answer, write-it-again loop.
func Stage1() Stage {
	return Stage{
		ID:    1,
		Name:  "Poyon Meadow",
		Emoji: "🌱",
		Intro: `Here is Poyon Meadow, the gateway to the Cocomoa Kingdom.
The ground is soft and bouncy, so even first-time adventurers can walk safely.

You'll practice the gentlest spells of all here: print and variables.
Each spell goes copy it, choose it, then write it again on your own.

Skills you'll earn in this stage:
  1. print: show what's happening on the screen
  2. variables: keep a value in a box and reuse it later
  3. math plus print: show the result of a calculation`,
		ClearLine: "Minaria: You took the very first step. I'm so proud of you. Take the next stage at your own pace, okay?",
		Questions: []Question{
			{
				LessonIntro: `Minaria:
"First, let's practice the spell that makes the computer say hello.
This spell is called print.
For example, if you write

    print("Hello, world!")

the screen will say Hello, world! for you."`,
				CopySample: `print("Hello, world!")`,
				Text:       "Which spell makes the computer say 'Hello, world!'?",
				Choices: []string{
					`hello = "world"`,
					`print("Hello, world!")`,
					`show("Hello, world!")`,
				},
				CorrectIndex:  1,
				RewritePrompt: "Using the same shape, write the spell that says 'Good job!' this time.",
				RewriteAnswer: `print("Good job!")`,
				Hint:          "When you want to show something on screen, put the text inside print( ).",
				Explain:       `In Python, you show text on the screen with print("text").`,
				Monster: Monster{
					Name:  "Print Slime",
					Emoji: "🐣",
					Desc:  "A slime that wants to talk but doesn't know which spell to use, so it just mumbles. Cast print() to let the words in its heart out onto the screen and it calms right down.",
				},
			},
			{
				LessonIntro: `Minaria:
"Next is the container spell.
The computer keeps little boxes where it can store numbers and words.
These boxes are called variables.

For example,

    name = "Minaria"

means 'put "Minaria" into the box called name'."`,
				CopySample: `name = "Minaria"`,
				Text:       "Which is the correct spell to put the text 'Minaria' into the variable name?",
				Choices: []string{
					`name == "Minaria"`,
					`name = "Minaria"`,
					`"Minaria" = name`,
				},
				CorrectIndex: 1,
				RewritePrompt: `Now try a name you like.
It could be "Cocomoa", or your own name.
Write the code that puts that name into the box called name.`,
				RewriteAnswer: `name = "Cocomoa"`,
				Hint:          "= means 'put the thing on the right into the box on the left'.",
				Explain:       `To store a value in a variable, use a single = like name = "Minaria", not ==.`,
				Monster: Monster{
					Name:  "Name Chick",
					Emoji: "🐥",
					Desc:  "A fluffy chick that keeps forgetting its own name. Give it a name with the = spell, like name = \"Minaria\", and it perks right up.",
				},
			},
			{
				LessonIntro: `Minaria:
"The last one is the calculate-then-say spell.
For example, if you write

    print(3 + 5)

it works out 3+5 and says the result, 8, on the screen."`,
				CopySample: `print(3 + 5)`,
				Text:       "Which code adds the numbers 3 and 5 and shows the result?",
				Choices: []string{
					`print("3 + 5")`,
					`3 + 5 print`,
					`print(3 + 5)`,
				},
				CorrectIndex:  2,
				RewritePrompt: "Next, write the code that adds 2 and 4 and shows the result. Remember the shape from before.",
				RewriteAnswer: `print(2 + 4)`,
				Hint:          "Try putting the calculation itself inside the print( ) parentheses.",
				Explain:       `Write the expression directly inside print, like print(3 + 5), and the result 8 is shown.`,
				Monster: Monster{
					Name:  "Sum Cloud",
					Emoji: "☁️",
					Desc:  "A cloud monster that loves gathering number clouds. Bundle its clouds together with print(3 + 5) and it breaks into a fluffy smile.",
				},
			},
		},
	}
}
