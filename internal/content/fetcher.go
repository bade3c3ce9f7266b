// Package content loads the Did-You-Know and flash card lists from the
// personalization endpoint.
package content

import (
	"context"
	"fmt"

	"github.com/csheth/tinypal/internal/api"
	"github.com/csheth/tinypal/internal/errors"
)

const answersPath = "/p13n_answers"

// Fetcher supplies the card lists. A single attempt is made per call.
type Fetcher interface {
	Fetch(ctx context.Context) (Set, error)
}

// Profile identifies the parent and child the cards are personalized for.
type Profile struct {
	ModuleID  string     `json:"module_id"`
	ParentID  string     `json:"parent_id"`
	ChildID   string     `json:"child_id"`
	Responses []Response `json:"responses"`
}

// Response is one questionnaire answer sent with the request.
type Response struct {
	QuestionID        string   `json:"question_id"`
	SelectedChoiceIDs []string `json:"selected_choice_ids"`
	OpenResponseText  string   `json:"open_response_text"`
	Timestamp         string   `json:"timestamp"`
}

// HTTPFetcher posts the profile to the service.
type HTTPFetcher struct {
	client    *api.Client
	profile   Profile
	imageBase string
}

// NewHTTPFetcher returns a Fetcher backed by client. Relative image URLs are
// resolved against imageBase, or the client's base URL when empty.
func NewHTTPFetcher(client *api.Client, profile Profile, imageBase string) *HTTPFetcher {
	if imageBase == "" {
		imageBase = client.BaseURL()
	}
	if profile.Responses == nil {
		profile.Responses = []Response{}
	}
	return &HTTPFetcher{client: client, profile: profile, imageBase: imageBase}
}

func (f *HTTPFetcher) Fetch(ctx context.Context) (Set, error) {
	const op errors.Op = "content.Fetch"
	var resp setResponse
	if err := f.client.PostJSON(ctx, answersPath, f.profile, &resp); err != nil {
		return Set{}, fmt.Errorf("fetch cards: %w", err)
	}
	set, err := resp.toSet(f.imageBase)
	if err != nil {
		return Set{}, errors.E(op, errors.KindDecode, err)
	}
	return set, nil
}
