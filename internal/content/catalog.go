package content

// The built-in catalog. Content is written for rural learners in grades
// 6-10; each module pairs a short reading passage with a quiz.
var modules = []Module{
	{
		ID:       "math-1",
		Title:    "Basic Math",
		Subtitle: "Ready to start",
		Subject:  "Mathematics",
		Grade:    "6",
		XPReward: 100,
		Content: []string{
			"Arithmetic is the foundation of science. It helps us count our harvest, calculate our trade, and build our homes.",
			"Addition is the act of combining two or more amounts together to get a total sum.",
			"Subtraction helps us understand difference, such as how many seeds we have left after planting.",
			"Mastering these basics will unlock more complex modules in engineering and finance.",
		},
		BasicContent: []string{
			"Arithmetic is using numbers every day.",
			"Addition is putting two groups together. Like 2 apples and 3 apples make 5 apples.",
			"Subtraction is taking things away. If you have 5 apples and eat 2, you have 3 left.",
			"Learning this helps you in the market and at home.",
		},
		Questions: []Question{
			{
				ID:           "math-1-q1",
				Text:         "Musa has 15 maize cobs and buys 27 more. How many does he have in total?",
				Options:      []string{"32", "42", "45", "39"},
				CorrectIndex: 1,
				Tier:         TierStandard,
			},
			{
				ID:           "math-1-q2",
				Text:         "If you have 12 seeds and 4 pots, how many seeds go in each pot equally?",
				Options:      []string{"2", "3", "4", "6"},
				CorrectIndex: 1,
				Tier:         TierStandard,
			},
			{
				ID:           "math-1-q3",
				Text:         "What is 8 + 5?",
				Options:      []string{"12", "13", "14"},
				CorrectIndex: 1,
				Tier:         TierEasy,
			},
			{
				ID:           "math-1-q4",
				Text:         "A trader sells 7 sacks at 320 shillings each. How much does she earn?",
				Options:      []string{"2240", "2170", "2320", "2140"},
				CorrectIndex: 0,
				Tier:         TierExpert,
			},
		},
	},
	{
		ID:       "agri-1",
		Title:    "Healthy Soil",
		Subtitle: "The heart of the farm",
		Subject:  "Agriculture",
		Grade:    "6",
		XPReward: 150,
		Content: []string{
			"Soil is a living ecosystem. Healthy soil produces stronger crops that can resist pests and droughts.",
			"Crop rotation is the practice of planting different crops in the same area across sequences of seasons.",
			"This prevents soil exhaustion and breaks the cycle of pests that target specific plants.",
			"Using compost adds nutrients naturally back into the ground without harsh chemicals.",
		},
		BasicContent: []string{
			"Good soil makes big plants.",
			"Do not plant the same thing in the same spot every year.",
			"Switching crops keeps the dirt strong.",
			"Compost is food for your plants. It is natural and cheap.",
		},
		Questions: []Question{
			{
				ID:           "agri-1-q1",
				Text:         "Why should we rotate our crops every season?",
				Options:      []string{"To make it look nice", "To keep the soil strong", "To save water"},
				CorrectIndex: 1,
				Tier:         TierStandard,
			},
			{
				ID:           "agri-1-q2",
				Text:         "What is a natural way to feed your plants?",
				Options:      []string{"Chemical spray", "Compost", "Sand"},
				CorrectIndex: 1,
				Tier:         TierStandard,
			},
		},
	},
	{
		ID:       "sci-1",
		Title:    "Water and Weather",
		Subtitle: "Reading the sky",
		Subject:  "Science",
		Grade:    "7",
		XPReward: 150,
		Content: []string{
			"Water moves in a cycle: it evaporates from lakes and fields, forms clouds, and falls again as rain.",
			"Farmers read clouds to plan planting. Dark, low clouds usually mean rain is close.",
			"Collecting rainwater in tanks during the wet season keeps gardens alive through the dry months.",
			"Boiling or filtering water before drinking protects the whole family from sickness.",
		},
		BasicContent: []string{
			"Water goes up from lakes and comes back as rain.",
			"Dark low clouds mean rain soon.",
			"Save rain in tanks for dry times.",
			"Boil water before you drink it.",
		},
		Questions: []Question{
			{
				ID:           "sci-1-q1",
				Text:         "What do dark, low clouds usually mean?",
				Options:      []string{"A dry day", "Rain is close", "Strong sun"},
				CorrectIndex: 1,
				Tier:         TierEasy,
			},
			{
				ID:           "sci-1-q2",
				Text:         "Why do we collect rainwater in tanks?",
				Options:      []string{"To watch the level", "To use it in dry months", "To cool the house"},
				CorrectIndex: 1,
				Tier:         TierStandard,
			},
			{
				ID:           "sci-1-q3",
				Text:         "Which step makes drinking water safe?",
				Options:      []string{"Stirring it", "Boiling it", "Keeping it in the sun for an hour", "Adding salt"},
				CorrectIndex: 1,
				Tier:         TierStandard,
			},
			{
				ID:           "sci-1-q4",
				Text:         "A tank holds 1200 litres and the family uses 40 litres a day. How long does a full tank last?",
				Options:      []string{"25 days", "30 days", "35 days", "40 days"},
				CorrectIndex: 1,
				Tier:         TierExpert,
			},
		},
	},
}
