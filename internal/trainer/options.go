package trainer

// ChoiceOption is one multiple-choice entry shown in flashcard mode.
// Exactly one option per question has Correct set.
type ChoiceOption struct {
	Text    string
	Correct bool
}

// prepareChoices builds the option list for a flashcard question: the
// target's translation plus up to 5 distractor translations drawn from the
// rest of the session items, shuffled. With a small pool the list shrinks,
// down to a single option when no distractors exist.
func (t *Trainer) prepareChoices(target string, targetTranslation string) []ChoiceOption {
	var distractorPool []weightedItem
	for _, candidate := range t.sessionItems() {
		if candidate.item.Term != target {
			distractorPool = append(distractorPool, candidate)
		}
	}

	t.rng.Shuffle(len(distractorPool), func(i, j int) {
		distractorPool[i], distractorPool[j] = distractorPool[j], distractorPool[i]
	})
	if len(distractorPool) > 5 {
		distractorPool = distractorPool[:5]
	}

	options := make([]ChoiceOption, 0, len(distractorPool)+1)
	options = append(options, ChoiceOption{Text: targetTranslation, Correct: true})
	for _, distractor := range distractorPool {
		options = append(options, ChoiceOption{Text: distractor.item.Translation})
	}

	t.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
