package timeline

import (
	"errors"

	"github.com/rs/xid"
)

// ErrNoteNotFound is returned when a note id is unknown.
var ErrNoteNotFound = errors.New("note not found")

// A Note is a user annotation attached to one range of a lane.
type Note struct {
	ID            string `json:"id"`
	TimelineModel int    `json:"timeline_model"`
	TimelineIndex int    `json:"timeline_index"`
	TypeID        int    `json:"type_id"`
	Text          string `json:"text"`
}

// Notes is the ordered collection of annotations. TimelineModel refers to
// the stable lane id, not the display position of the lane.
type Notes struct {
	notes []Note
}

// NewNotes creates an empty collection.
func NewNotes() *Notes {
	return &Notes{}
}

// Add appends a note and returns its id.
func (n *Notes) Add(modelID, index, typeID int, text string) string {
	id := xid.New().String()

	n.notes = append(n.notes, Note{
		ID:            id,
		TimelineModel: modelID,
		TimelineIndex: index,
		TypeID:        typeID,
		Text:          text,
	})

	return id
}

// Update replaces the text of a note. Empty text removes the note.
func (n *Notes) Update(id, text string) error {
	i := n.find(id)
	if i < 0 {
		return ErrNoteNotFound
	}

	if text == "" {
		n.removeAt(i)
		return nil
	}

	n.notes[i].Text = text

	return nil
}

// Remove deletes a note and tells if it existed.
func (n *Notes) Remove(id string) bool {
	i := n.find(id)
	if i < 0 {
		return false
	}

	n.removeAt(i)

	return true
}

func (n *Notes) removeAt(i int) {
	n.notes = append(n.notes[:i], n.notes[i+1:]...)
}

func (n *Notes) find(id string) int {
	for i, note := range n.notes {
		if note.ID == id {
			return i
		}
	}

	return -1
}

// ByID returns the note with the given id.
func (n *Notes) ByID(id string) (Note, bool) {
	i := n.find(id)
	if i < 0 {
		return Note{}, false
	}

	return n.notes[i], true
}

// Get returns the note attached to a range.
func (n *Notes) Get(modelID, index int) (Note, bool) {
	for _, note := range n.notes {
		if note.TimelineModel == modelID && note.TimelineIndex == index {
			return note, true
		}
	}

	return Note{}, false
}

// ByTimelineModel returns the notes of one lane in insertion order.
func (n *Notes) ByTimelineModel(modelID int) []Note {
	var out []Note

	for _, note := range n.notes {
		if note.TimelineModel == modelID {
			out = append(out, note)
		}
	}

	return out
}

// At returns the note at position i.
func (n *Notes) At(i int) Note { return n.notes[i] }

// All returns a copy of all notes.
func (n *Notes) All() []Note {
	return append([]Note(nil), n.notes...)
}

// Count returns the number of notes.
func (n *Notes) Count() int { return len(n.notes) }

// Clear removes all notes.
func (n *Notes) Clear() { n.notes = nil }

// Restore re-resolves every note after the lanes were reloaded. The lookup
// returns the type of the range at (modelID, index), or false if there is no
// such range. Notes whose range vanished or changed type get index -1.
func (n *Notes) Restore(lookup func(modelID, index int) (typeID int, ok bool)) {
	for i := range n.notes {
		note := &n.notes[i]
		if note.TimelineIndex < 0 {
			continue
		}

		typeID, ok := lookup(note.TimelineModel, note.TimelineIndex)
		if !ok || typeID != note.TypeID {
			note.TimelineIndex = -1
		}
	}
}
