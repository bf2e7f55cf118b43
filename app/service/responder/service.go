package responder

import (
	"learnbot/app/service/memory"

	"github.com/samber/do"
)

const FallbackResponse = "I'm not sure how to respond to that. Can you teach me?"

// Source tells which table produced a response.
type Source string

const (
	SourceLearned  Source = "learned"
	SourceBuiltin  Source = "builtin"
	SourceFallback Source = "fallback"
)

var builtinResponses = map[string]string{
	"hello":             "Hi there! How can I help you?",
	"how are you":       "I'm just a program, but I'm functioning as expected!",
	"what is your name": "I'm a simple chatbot. What's yours?",
	"bye":               "Goodbye! Have a great day!",
	"thanks":            "You're welcome!",
}

// Exchange is a single input/response pair.
type Exchange struct {
	Input    string
	Response string
	Source   Source
}

func (e Exchange) IsFallback() bool {
	return e.Source == SourceFallback
}

type Service struct {
	builtin map[string]string
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		builtin: Builtin(),
	}, nil
}

// Builtin returns a copy of the built-in response table.
func Builtin() map[string]string {
	result := make(map[string]string, len(builtinResponses))
	for k, v := range builtinResponses {
		result[k] = v
	}

	return result
}

// Resolve looks input up in learned first, then in builtin.
// The second result is false when neither has it and FallbackResponse is returned.
func Resolve(input string, learned *memory.Memory, builtin map[string]string) (string, bool) {
	response, source := lookup(memory.Normalize(input), learned, builtin)
	return response, source != SourceFallback
}

func (s *Service) Respond(input string, learned *memory.Memory) Exchange {
	key := memory.Normalize(input)
	response, source := lookup(key, learned, s.builtin)

	return Exchange{
		Input:    key,
		Response: response,
		Source:   source,
	}
}

func lookup(key string, learned *memory.Memory, builtin map[string]string) (string, Source) {
	if response, ok := learned.Get(key); ok {
		return response, SourceLearned
	}

	if response, ok := builtin[key]; ok {
		return response, SourceBuiltin
	}

	return FallbackResponse, SourceFallback
}
