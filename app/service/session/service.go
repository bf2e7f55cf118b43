package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"learnbot/app/client/console"
	"learnbot/app/config"
	"learnbot/app/service/memory"
	"learnbot/app/service/responder"
	"learnbot/app/util/mylog"

	"github.com/google/uuid"
	"github.com/samber/do"
)

const (
	speakerPrefix = "Chatbot: "
	greeting      = "Hi! I'm a simple chatbot. Type '%s' to quit."
	farewell      = "Goodbye!"
	acknowledge   = "Got it! I'll remember that."
	inputPrompt   = "You: "
	teachPrompt   = "You can teach me by typing the correct response: "
)

// ErrInputClosed is returned by Run when input ends before the exit keyword.
var ErrInputClosed = errors.New("input closed")

type Store interface {
	Load() (*memory.Memory, error)
	Save(m *memory.Memory) error
}

type Console interface {
	Prompt(prompt string) (string, error)
	Say(text string) error
}

type Service struct {
	store        Store
	console      Console
	responderSvc *responder.Service
	exitKeyword  string
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return NewService(
		do.MustInvoke[*memory.Service](di),
		do.MustInvoke[*console.Client](di),
		do.MustInvoke[*responder.Service](di),
		cfg.Session.ExitKeyword,
	), nil
}

func NewService(store Store, con Console, responderSvc *responder.Service, exitKeyword string) *Service {
	return &Service{
		store:        store,
		console:      con,
		responderSvc: responderSvc,
		exitKeyword:  memory.Normalize(exitKeyword),
	}
}

// Run drives one session until the exit keyword is entered.
// Learned responses are written to the store exactly once, on exit.
func (s *Service) Run(ctx context.Context) error {
	logger := slog.With("session", uuid.NewString())

	if err := s.say(fmt.Sprintf(greeting, s.exitKeyword)); err != nil {
		return err
	}

	learned, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load memory: %w", err)
	}

	logger.Info("Session started", "learned_count", learned.Len())

	state := StateRunning
	var pending string

	for state != StateTerminated {
		if err = ctx.Err(); err != nil {
			return err
		}

		switch state {
		case StateRunning:
			state, pending, err = s.handleInput(logger, learned)
		case StateTeaching:
			state, err = s.teach(logger, learned, pending)
		}

		if err != nil {
			logger.Warn("Session aborted", "state", state, "error", err)
			return err
		}
	}

	if err = s.store.Save(learned); err != nil {
		return fmt.Errorf("failed to save memory: %w", err)
	}

	logger.Info("Session finished", "learned_count", learned.Len())

	return s.say(farewell)
}

func (s *Service) handleInput(logger *slog.Logger, learned *memory.Memory) (State, string, error) {
	line, err := s.read(inputPrompt)
	if err != nil {
		return StateRunning, "", err
	}

	input := memory.Normalize(line)
	if input == s.exitKeyword {
		return StateTerminated, "", nil
	}

	exchange := s.responderSvc.Respond(input, learned)

	logger.Debug("Exchange",
		"input", exchange.Input,
		"response", exchange.Response,
		"source", exchange.Source,
	)

	if err = s.say(exchange.Response); err != nil {
		return StateRunning, "", err
	}

	if exchange.IsFallback() {
		return StateTeaching, exchange.Input, nil
	}

	return StateRunning, "", nil
}

func (s *Service) teach(logger *slog.Logger, learned *memory.Memory, input string) (State, error) {
	line, err := s.read(teachPrompt)
	if err != nil {
		return StateTeaching, err
	}

	response := strings.TrimSpace(line)
	learned.Set(input, response)

	logger.Info("Learned new response",
		"input", input,
		"response", response,
		mylog.TelegramKey, true,
	)

	if err = s.say(acknowledge); err != nil {
		return StateTeaching, err
	}

	return StateRunning, nil
}

func (s *Service) read(prompt string) (string, error) {
	line, err := s.console.Prompt(prompt)
	if errors.Is(err, io.EOF) {
		return "", ErrInputClosed
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return line, nil
}

func (s *Service) say(text string) error {
	return s.console.Say(speakerPrefix + text)
}
