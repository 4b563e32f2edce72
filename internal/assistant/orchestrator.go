// Package assistant drives the storefront conversation: it owns the message
// log, turns trigger events into completion requests and folds the replies
// back into a single transcript.
package assistant

import (
	"context"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"spec-assistant/internal/chat"
	"spec-assistant/internal/prompt"
	"spec-assistant/internal/storage"
)

// ErrorReply is what the shopper sees when the completion service fails.
// Failures never abort the conversation; the next trigger works as usual.
const ErrorReply = "Error: Unable to get response."

// Trigger names the event kind that started a turn.
type Trigger string

const (
	TriggerSubmit    Trigger = "submit"
	TriggerSelection Trigger = "selection"
	TriggerFollowUp  Trigger = "followup"
)

// Completer is the call contract of the explanation service.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Subject is the most recently explained specification. It is replaced on
// every selection and read, not consumed, by follow-ups.
type Subject struct {
	Title   string
	Details string
}

type Orchestrator struct {
	store     *chat.Store
	completer Completer
	recorder  storage.Recorder

	mu        sync.Mutex
	subject   *Subject
	lastInput string

	inflight atomic.Int64
}

// New creates an orchestrator over an empty conversation. recorder may be
// nil; recording is best-effort either way.
func New(completer Completer, recorder storage.Recorder) *Orchestrator {
	return &Orchestrator{
		store:     chat.NewStore(),
		completer: completer,
		recorder:  recorder,
	}
}

// SubmitText handles a free-text question. The text goes to the service
// as-is, without any templating. Blank input is a no-op: nothing is
// appended and the returned channel is already closed.
func (o *Orchestrator) SubmitText(ctx context.Context, text string) <-chan struct{} {
	text = strings.TrimSpace(text)
	if text == "" {
		return closedChan()
	}
	o.mu.Lock()
	o.lastInput = text
	o.mu.Unlock()
	return o.runTurn(ctx, TriggerSubmit, text)
}

// SelectSpec handles a specification being picked in the catalog. The new
// subject replaces any prior one regardless of in-flight requests.
func (o *Orchestrator) SelectSpec(ctx context.Context, subject Subject) <-chan struct{} {
	o.mu.Lock()
	s := subject
	o.subject = &s
	o.mu.Unlock()
	return o.runTurn(ctx, TriggerSelection, prompt.Explain(subject.Title, subject.Details))
}

// SelectFollowUp handles a canned refinement request against the current
// subject. Without a live subject it falls back to the last free-text
// input, then to a placeholder; it never fails for lack of context.
func (o *Orchestrator) SelectFollowUp(ctx context.Context, action prompt.FollowUpAction) <-chan struct{} {
	subject := o.currentSubject()
	return o.runTurn(ctx, TriggerFollowUp, prompt.Build(subject.Title, subject.Details, action))
}

func (o *Orchestrator) currentSubject() Subject {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.subject != nil {
		return *o.subject
	}
	if o.lastInput != "" {
		return Subject{Title: "the current topic", Details: o.lastInput}
	}
	return Subject{Title: "the current spec", Details: "the specification currently shown on the page"}
}

// runTurn appends the user message, then resolves the completion call in
// its own goroutine. Each turn is keyed by its own invocation, so
// overlapping turns cannot overwrite each other; the only ordering
// guarantee across turns is that each user message precedes its own reply.
func (o *Orchestrator) runTurn(ctx context.Context, trigger Trigger, request string) <-chan struct{} {
	o.store.Append(chat.NewMessage(chat.SenderUser, request))
	o.inflight.Add(1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer o.inflight.Add(-1)

		reply, err := o.completer.Complete(ctx, request)
		failed := err != nil
		if failed {
			log.Printf("completion failed (%s): %v", trigger, err)
			reply = ErrorReply
		}
		o.store.Append(chat.NewMessage(chat.SenderBot, reply))
		o.record(trigger, request, reply, failed)
	}()
	return done
}

func (o *Orchestrator) record(trigger Trigger, request, reply string, failed bool) {
	if o.recorder == nil {
		return
	}
	turn := storage.Turn{
		Trigger:   string(trigger),
		Prompt:    request,
		Reply:     reply,
		Failed:    failed,
		Timestamp: time.Now().UTC(),
	}
	if err := o.recorder.AppendTurn(turn); err != nil {
		log.Printf("failed to record turn: %v", err)
	}
}

// Messages returns the transcript in insertion order.
func (o *Orchestrator) Messages() []chat.Message {
	return o.store.List()
}

// AwaitingResponse reports whether any completion call is outstanding.
func (o *Orchestrator) AwaitingResponse() bool {
	return o.inflight.Load() > 0
}

// ClearConversation empties the transcript. The subject context survives,
// and replies of still-in-flight requests append to the fresh log once
// they resolve.
func (o *Orchestrator) ClearConversation() {
	o.store.Clear()
}

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
