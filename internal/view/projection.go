// Package view turns contact records into the view-models the form surfaces draw.
package view

import "github.com/givers/contacts/internal/model"

// Placeholder is shown instead of a list when there is nothing to display.
const Placeholder = "No submissions yet. Your messages will appear here."

// Card is one rendered contact. Position is the record's index in the full
// store, not in the filtered list, so edit and delete act on the right record.
type Card struct {
	Position  int    `json:"position"  yaml:"position"`
	ID        int64  `json:"id"        yaml:"id"`
	Date      string `json:"date"      yaml:"date"`
	Name      string `json:"name"      yaml:"name"`
	Email     string `json:"email"     yaml:"email"`
	Phone     string `json:"phone"     yaml:"phone"`
	Message   string `json:"message"   yaml:"message"`
	EmailSent bool   `json:"emailSent" yaml:"emailSent"`
}

// ListView is the rendered contact list.
type ListView struct {
	Empty       bool   `json:"empty"                 yaml:"empty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Cards       []Card `json:"cards,omitempty"       yaml:"cards,omitempty"`
}

// Project renders shown, a subsequence of all, mapping each record back to its
// position in all by id. Records of shown that are missing from all are dropped.
func Project(all, shown []model.ContactRecord) ListView {
	positions := make(map[int64]int, len(all))
	for i, rec := range all {
		positions[rec.ID] = i
	}

	cards := make([]Card, 0, len(shown))
	for _, rec := range shown {
		pos, ok := positions[rec.ID]
		if !ok {
			continue
		}
		cards = append(cards, Card{
			Position:  pos,
			ID:        rec.ID,
			Date:      rec.Date,
			Name:      rec.Name,
			Email:     rec.Email,
			Phone:     rec.Phone,
			Message:   rec.Message,
			EmailSent: rec.EmailSent,
		})
	}

	if len(cards) == 0 {
		return ListView{Empty: true, Placeholder: Placeholder}
	}
	return ListView{Cards: cards}
}
