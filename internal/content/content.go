package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies which carousel a card belongs to.
type Kind string

const (
	KindDYK   Kind = "dyk"
	KindFlash Kind = "flash"
)

// ActivationContext is the context string sent to the activation service for
// cards of this kind.
func (k Kind) ActivationContext() string {
	switch k {
	case KindFlash:
		return "flash_card"
	default:
		return "dyk_card"
	}
}

// Item is one paged card.
type Item struct {
	ID             string
	Kind           Kind
	Heading        string
	Content        string
	ImageURL       string
	CauseAndEffect *CauseAndEffect
	Citation       *Citation
	Activation     *Activation
}

// CauseAndEffect is the two-box banner shown on Did-You-Know cards.
type CauseAndEffect struct {
	Cause  string `json:"cause"`
	Effect string `json:"effect"`
}

// Citation credits the source of a card.
type Citation struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

// Activation holds the parameters for an ask-follow-up request.
type Activation struct {
	Context string
	Topic   string
}

// CanActivate reports whether the item supports ask-follow-up.
func (i Item) CanActivate() bool {
	return i.Activation != nil
}

// Set is the decoded response of the personalization endpoint.
type Set struct {
	DYKCards   []Item
	FlashCards []Item
}

// Select returns the list a screen of the given kind displays.
func (s Set) Select(kind Kind) []Item {
	if kind == KindFlash {
		return s.FlashCards
	}
	return s.DYKCards
}

type setResponse struct {
	DYKCards   []cardResponse `json:"dyk_cards"`
	FlashCards []cardResponse `json:"flash_cards"`
}

type cardResponse struct {
	ID             cardID          `json:"id"`
	Heading        string          `json:"heading"`
	Content        string          `json:"content"`
	ImageURL       string          `json:"image_url"`
	CauseAndEffect *CauseAndEffect `json:"cause_and_effect"`
	Citation       *Citation       `json:"citation"`
	TinuActivation *struct {
		Parameters struct {
			Topic string `json:"topic"`
		} `json:"parameters"`
	} `json:"tinu_activation"`
}

// cardID accepts both string and numeric ids.
type cardID string

func (c *cardID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = cardID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("card id: %w", err)
	}
	*c = cardID(n.String())
	return nil
}

func (r setResponse) toSet(imageBase string) (Set, error) {
	dyk, err := convertCards(KindDYK, r.DYKCards, imageBase)
	if err != nil {
		return Set{}, err
	}
	flash, err := convertCards(KindFlash, r.FlashCards, imageBase)
	if err != nil {
		return Set{}, err
	}
	return Set{DYKCards: dyk, FlashCards: flash}, nil
}

func convertCards(kind Kind, cards []cardResponse, imageBase string) ([]Item, error) {
	if len(cards) == 0 {
		return nil, nil
	}
	seen := make(map[string]bool, len(cards))
	items := make([]Item, 0, len(cards))
	for idx, card := range cards {
		id := strings.TrimSpace(string(card.ID))
		if id == "" {
			id = fmt.Sprintf("%s-%d", kind, idx+1)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate %s card id %q", kind, id)
		}
		seen[id] = true
		item := Item{
			ID:             id,
			Kind:           kind,
			Heading:        strings.TrimSpace(card.Heading),
			Content:        strings.TrimSpace(card.Content),
			ImageURL:       ResolveImageURL(imageBase, card.ImageURL),
			CauseAndEffect: card.CauseAndEffect,
			Citation:       card.Citation,
		}
		if card.TinuActivation != nil {
			item.Activation = &Activation{
				Context: kind.ActivationContext(),
				Topic:   card.TinuActivation.Parameters.Topic,
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// ResolveImageURL prefixes relative paths with base and keeps absolute URLs.
func ResolveImageURL(base, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "http") {
		return raw
	}
	base = strings.TrimRight(base, "/")
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return base + raw
}
