// Package tinu requests follow-up enrichment ("Ask Tinu") for a card topic.
package tinu

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/csheth/tinypal/internal/api"
	"github.com/csheth/tinypal/internal/errors"
)

const activatePath = "/activate_tinu"

// DefaultGlyph is shown for chips whose icon carries no text glyph.
const DefaultGlyph = "😊"

// ErrorKind classifies why an activation failed.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrMissingParameters
	ErrNetworkUnavailable
	ErrServer
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMissingParameters:
		return "MissingParameters"
	case ErrNetworkUnavailable:
		return "NetworkUnavailable"
	case ErrServer:
		return "ServerError"
	default:
		return "Unknown"
	}
}

// Failure describes a failed activation. Status is set for ErrServer.
type Failure struct {
	Kind   ErrorKind
	Status int
	Cause  error
}

func (f *Failure) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %v", f.Kind, f.Cause)
	}
	if f.Kind == ErrServer {
		return fmt.Sprintf("%s{status:%d}", f.Kind, f.Status)
	}
	return f.Kind.String()
}

func (f *Failure) Unwrap() error { return f.Cause }

// Message is the text shown next to the retry affordance.
func (f *Failure) Message() string {
	switch f.Kind {
	case ErrMissingParameters:
		return "Missing context or topic"
	case ErrNetworkUnavailable:
		return "Network error. Please check your internet connection and try again."
	case ErrServer:
		return fmt.Sprintf("Server error: %d. Please try again later.", f.Status)
	default:
		return "Failed to load Tinu data. Please try again."
	}
}

// Classify maps a transport error to a Failure.
func Classify(err error) *Failure {
	if err == nil {
		return nil
	}
	var failure *Failure
	if errors.As(err, &failure) {
		return failure
	}
	switch errors.GetKind(err) {
	case errors.KindNetwork, errors.KindTimeout:
		return &Failure{Kind: ErrNetworkUnavailable, Cause: err}
	case errors.KindServer:
		return &Failure{Kind: ErrServer, Status: errors.StatusOf(err), Cause: err}
	default:
		return &Failure{Kind: ErrUnknown, Cause: err}
	}
}

// Card is a supplementary script card.
type Card struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Chip is a suggested follow-up.
type Chip struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Glyph string `json:"-"`
}

// Payload is the enrichment content of a ready overlay. Every field may be
// empty, in which case that section renders nothing.
type Payload struct {
	Cards        []Card `json:"cards"`
	ContextInfo  string `json:"context_info"`
	ContextLabel string `json:"context_label"`
	Chips        []Chip `json:"chips"`
}

// Empty reports whether no section has content.
func (p Payload) Empty() bool {
	return len(p.Cards) == 0 && strings.TrimSpace(p.ContextInfo) == "" && len(p.Chips) == 0
}

// Result is the outcome of one activation: exactly one of Payload or Err.
type Result struct {
	Payload Payload
	Err     *Failure
}

// OK reports whether the activation succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Succeeded and Failed build Results.
func Succeeded(p Payload) Result { return Result{Payload: p} }

func Failed(f *Failure) Result { return Result{Err: f} }

// Service activates Tinu for a (context, topic) pair. Implementations never
// return transport errors directly; the outcome is always a Result.
type Service interface {
	Activate(ctx context.Context, activationContext, topic string) Result
}

// Identity is the fixed part of every activation request.
type Identity struct {
	ChildID  string
	ModuleID string
}

type activateRequest struct {
	ChildID  string `json:"child_id"`
	Context  string `json:"context"`
	ModuleID string `json:"module_id"`
	Topic    string `json:"topic"`
}

// HTTPService is the Service backed by the TinyPal API.
type HTTPService struct {
	client   *api.Client
	identity Identity
}

// NewHTTPService returns a Service posting through client.
func NewHTTPService(client *api.Client, identity Identity) *HTTPService {
	return &HTTPService{client: client, identity: identity}
}

func (s *HTTPService) Activate(ctx context.Context, activationContext, topic string) Result {
	req := activateRequest{
		ChildID:  s.identity.ChildID,
		Context:  activationContext,
		ModuleID: s.identity.ModuleID,
		Topic:    topic,
	}
	var payload Payload
	if err := s.client.PostJSON(ctx, activatePath, req, &payload); err != nil {
		return Failed(Classify(err))
	}
	for i := range payload.Chips {
		payload.Chips[i].Glyph = ChipGlyph(payload.Chips[i].Icon)
	}
	return Succeeded(payload)
}

var glyphPattern = regexp.MustCompile(`>([^<>]*)</text>`)

// ChipGlyph extracts the emoji from an SVG <text> icon.
func ChipGlyph(icon string) string {
	if m := glyphPattern.FindStringSubmatch(icon); len(m) > 1 && strings.TrimSpace(m[1]) != "" {
		return m[1]
	}
	return DefaultGlyph
}
