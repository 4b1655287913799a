package trainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionKey_String(t *testing.T) {
	key := SessionKey{Language: "es", Level: "A1", Category: "animals"}
	assert.Equal(t, "es_A1_animals", key.String())
}

func TestDoneSet(t *testing.T) {
	key := SessionKey{Language: "es", Level: "A1", Category: "animals"}
	other := SessionKey{Language: "es", Level: "A2", Category: "animals"}

	d := make(doneSet)
	assert.False(t, d.contains(key, "gato"))

	d.mark(key, "gato")
	assert.True(t, d.contains(key, "gato"))
	assert.False(t, d.contains(key, "perro"))
	assert.False(t, d.contains(other, "gato"), "done-sets are scoped per session key")

	d.clear(key)
	assert.False(t, d.contains(key, "gato"))
}

func TestTrainer_BuildPool(t *testing.T) {
	tr := newTestTrainer(t, testItems()...)

	t.Run("write pool excludes done terms", func(t *testing.T) {
		assert.Equal(t, 3, len(tr.buildPool(ModeWrite)))
		tr.writeDone.mark(tr.key, "gato")
		assert.Equal(t, 2, len(tr.buildPool(ModeWrite)))
		tr.writeDone.clear(tr.key)
	})

	t.Run("hard pool holds only missed terms", func(t *testing.T) {
		assert.Empty(t, tr.buildPool(ModeHard))

		tr.hardWords["perro"] = 2
		pool := tr.buildPool(ModeHard)
		assert.Equal(t, 1, len(pool))
		assert.Equal(t, "perro", pool[0].item.Term)

		tr.hardDone.mark(tr.key, "perro")
		assert.Empty(t, tr.buildPool(ModeHard))
		tr.hardDone.clear(tr.key)
		delete(tr.hardWords, "perro")
	})

	t.Run("flashcard pool honors the retry subset", func(t *testing.T) {
		tr.flashRepeat = map[string]bool{"pan": true}
		pool := tr.buildPool(ModeFlashcard)
		assert.Equal(t, 1, len(pool))
		assert.Equal(t, "pan", pool[0].item.Term)

		tr.flashDone.mark(tr.key, "pan")
		assert.Empty(t, tr.buildPool(ModeFlashcard))
		tr.flashRepeat = nil
		tr.flashDone.clear(tr.key)
	})

	t.Run("pool weights follow mastery", func(t *testing.T) {
		tr.mastery.Grade("gato", true)
		for _, candidate := range tr.buildPool(ModeWrite) {
			if candidate.item.Term == "gato" {
				assert.Equal(t, 4, candidate.weight)
			} else {
				assert.Equal(t, 5, candidate.weight)
			}
		}
	})
}

func TestTrainer_SessionItems_FilterByKey(t *testing.T) {
	tr := newTestTrainer(t, testItems()...)

	tr.key.Category = "animals"
	assert.Equal(t, 2, len(tr.sessionItems()))

	tr.key.Level = "A2"
	assert.Empty(t, tr.sessionItems())
}
