package catalog

// Default returns the stock five-question feedback catalog: four rating
// questions and one free-text question. All questions are optional.
func Default() *Catalog {
	c, err := New([]Question{
		{
			ID:     1,
			Type:   TypeRating,
			Prompt: "How would you rate your overall experience with our service?",
			Scale:  5,
			ScaleLabels: map[int]string{
				1: "Very Poor",
				5: "Excellent",
			},
		},
		{
			ID:     2,
			Type:   TypeRating,
			Prompt: "How satisfied are you with the quality of our products?",
			Scale:  5,
			ScaleLabels: map[int]string{
				1: "Very Dissatisfied",
				5: "Very Satisfied",
			},
		},
		{
			ID:     3,
			Type:   TypeRating,
			Prompt: "How likely are you to recommend us to a friend or colleague?",
			Scale:  10,
			ScaleLabels: map[int]string{
				1:  "Not at all likely",
				10: "Extremely likely",
			},
		},
		{
			ID:     4,
			Type:   TypeRating,
			Prompt: "How would you rate the friendliness of our staff?",
			Scale:  5,
			ScaleLabels: map[int]string{
				1: "Very Unfriendly",
				5: "Very Friendly",
			},
		},
		{
			ID:          5,
			Type:        TypeText,
			Prompt:      "Please share any additional feedback or suggestions for improvement:",
			Placeholder: "Your feedback helps us improve our service...",
			MaxLength:   500,
		},
	})
	if err != nil {
		// the stock catalog is statically valid
		panic(err)
	}
	return c
}
