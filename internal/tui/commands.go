package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/tinypal/internal/content"
	"github.com/csheth/tinypal/internal/overlay"
	"github.com/csheth/tinypal/internal/tinu"
)

// jobTimeout bounds a job when the client has no timeout of its own.
const jobTimeout = 2 * time.Minute

type cardsResultMsg struct {
	token int
	kind  content.Kind
	items []content.Item
	err   error
}

type activationResultMsg struct {
	ticket overlay.Ticket
	result tinu.Result
}

func fetchCardsJob(fetcher content.Fetcher, token int, kind content.Kind) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, jobTimeout)
		defer cancel()
		set, err := fetcher.Fetch(ctx)
		if err != nil {
			return cardsResultMsg{token: token, kind: kind, err: err}, err
		}
		return cardsResultMsg{token: token, kind: kind, items: set.Select(kind)}, nil
	}
}

func activateJob(service tinu.Service, ticket overlay.Ticket) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, jobTimeout)
		defer cancel()
		result := service.Activate(ctx, ticket.Context, ticket.Topic)
		var err error
		if result.Err != nil {
			err = result.Err
		}
		return activationResultMsg{ticket: ticket, result: result}, err
	}
}
